package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/provider/mocks"
)

func TestRegistry(t *testing.T) {
	rss := &mocks.AdapterMock{TypeFunc: func() domain.ProviderType { return domain.ProviderRSS }}
	va := &mocks.AdapterMock{TypeFunc: func() domain.ProviderType { return domain.ProviderVideoA }}
	reg := NewRegistry(rss, va)

	a, err := reg.Get(domain.ProviderRSS)
	require.NoError(t, err)
	assert.Same(t, rss, a)

	_, err = reg.Get(domain.ProviderPodcast)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedProvider))

	assert.Equal(t, []domain.ProviderType{domain.ProviderRSS, domain.ProviderVideoA}, reg.Types())
}

func TestNewDefaultRegistry(t *testing.T) {
	reg := NewDefaultRegistry(Options{Timeout: time.Second})
	assert.ElementsMatch(t, domain.ProviderTypes, reg.Types())
}

func TestHTTPClient_Classification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		header    map[string]string
		rateLimit bool
		code      int
	}{
		{name: "429 is rate limit", status: http.StatusTooManyRequests, header: map[string]string{"Retry-After": "30"}, rateLimit: true},
		{name: "500 is provider error", status: http.StatusInternalServerError, code: 500},
		{name: "404 is provider error", status: http.StatusNotFound, code: 404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("oops"))
			}))
			defer ts.Close()

			c := newHTTPClient(time.Second, "test-agent")
			var dest map[string]any
			err := c.getJSON(context.Background(), domain.ProviderRSS, ts.URL, nil, nil, &dest)
			require.Error(t, err)
			assert.Equal(t, tt.rateLimit, errors.Is(err, domain.ErrRateLimited))
			if tt.rateLimit {
				assert.Contains(t, err.Error(), "retry after 30")
				return
			}
			var perr *domain.ProviderError
			require.True(t, errors.As(err, &perr))
			var se *statusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.code, se.Code)
			assert.Equal(t, "oops", se.Body)
		})
	}

	t.Run("timeout is provider error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()
		c := newHTTPClient(50*time.Millisecond, "")
		_, err := c.get(context.Background(), domain.ProviderVideoB, ts.URL, nil, nil)
		var perr *domain.ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, domain.ProviderVideoB, perr.Provider)
	})

	t.Run("bad json is provider error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte("{bad"))
		}))
		defer ts.Close()
		c := newHTTPClient(time.Second, "test-agent")
		var dest map[string]any
		err := c.getJSON(context.Background(), domain.ProviderVideoA, ts.URL, nil, nil, &dest)
		var perr *domain.ProviderError
		require.True(t, errors.As(err, &perr))
	})
}

func TestHTTPClient_PlainText(t *testing.T) {
	c := newHTTPClient(time.Second, "")
	assert.Equal(t, "Hello world & friends", c.plainText("<p>Hello <b>world</b></p>\n\n &amp; friends"))
	assert.Equal(t, "", c.plainText(""))
	assert.Equal(t, "no script", c.plainText("no <script>alert(1)</script>script"))
}
