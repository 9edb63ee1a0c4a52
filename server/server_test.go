package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/server/mocks"
)

type testDeps struct {
	cfg       *mocks.ConfigProviderMock
	svc       *mocks.ServiceMock
	feed      *mocks.FeedProviderMock
	renderer  *mocks.FeedRendererMock
	scheduler *mocks.SchedulerMock
}

func newTestServer(t *testing.T) (*Server, *testDeps) {
	t.Helper()
	deps := &testDeps{
		cfg: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
			GetCronSecretFunc:   func() string { return "cron-secret" },
		},
		svc:       &mocks.ServiceMock{},
		feed:      &mocks.FeedProviderMock{},
		renderer:  &mocks.FeedRendererMock{},
		scheduler: &mocks.SchedulerMock{},
	}
	srv := New(Params{Config: deps.cfg, Service: deps.svc, Feed: deps.feed, Renderer: deps.renderer,
		Scheduler: deps.scheduler, Version: "test"})
	return srv, deps
}

// do sends request through the router as user u1
func do(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set(userHeader, "u1")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}

func TestServer_New(t *testing.T) {
	srv := New(Params{Config: &mocks.ConfigProviderMock{}, Version: "1.0.0"})
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv := New(Params{Config: cfg, Version: "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec,noctx // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StatusHandler(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
	assert.Contains(t, resp, "time")
}

func TestServer_UserMiddleware(t *testing.T) {
	srv, deps := newTestServer(t)
	deps.feed.GetUserFeedFunc = func(ctx context.Context, userID string) ([]domain.FeedItem, error) {
		return nil, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, deps.feed.GetUserFeedCalls())

	rec = do(srv, http.MethodGet, "/api/v1/feed", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, deps.feed.GetUserFeedCalls(), 1)
	assert.Equal(t, "u1", deps.feed.GetUserFeedCalls()[0].UserID)
}

func TestServer_CronFetch(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		header   string
		schedErr error
		wantCode int
		wantRuns int
	}{
		{name: "valid secret", secret: "s1", header: "s1", wantCode: http.StatusOK, wantRuns: 1},
		{name: "wrong secret", secret: "s1", header: "bad", wantCode: http.StatusUnauthorized},
		{name: "missing secret", secret: "s1", wantCode: http.StatusUnauthorized},
		{name: "disabled", secret: "", header: "", wantCode: http.StatusForbidden},
		{name: "run failed", secret: "s1", header: "s1", schedErr: errors.New("db down"),
			wantCode: http.StatusInternalServerError, wantRuns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, deps := newTestServer(t)
			deps.cfg.GetCronSecretFunc = func() string { return tt.secret }
			deps.scheduler.UpdateNowFunc = func(ctx context.Context) (domain.BatchStats, error) {
				return domain.BatchStats{RunID: "r1", TotalSources: 3, SuccessCount: 3}, tt.schedErr
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/cron/fetch", http.NoBody)
			if tt.header != "" {
				req.Header.Set(cronHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			srv.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Len(t, deps.scheduler.UpdateNowCalls(), tt.wantRuns)
			if tt.wantCode == http.StatusOK {
				var stats domain.BatchStats
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
				assert.Equal(t, "r1", stats.RunID)
				assert.Equal(t, 3, stats.SuccessCount)
			}
		})
	}
}

func TestRenderServiceError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantField string
		wantMsg   string
	}{
		{name: "validation", err: fmt.Errorf("wrap: %w", &domain.ValidationError{Field: "name", Message: "is empty"}),
			wantCode: http.StatusBadRequest, wantField: "name", wantMsg: "is empty"},
		{name: "not found", err: fmt.Errorf("source 5: %w", domain.ErrNotFound),
			wantCode: http.StatusNotFound, wantMsg: "source 5: not found"},
		{name: "unsupported provider", err: fmt.Errorf("X: %w", domain.ErrUnsupportedProvider),
			wantCode: http.StatusBadRequest, wantMsg: "X: unsupported provider"},
		{name: "rate limited", err: &domain.RateLimitError{Provider: domain.ProviderVideoA},
			wantCode: http.StatusTooManyRequests, wantMsg: "provider VIDEO_PLATFORM_A: rate limited"},
		{name: "internal", err: errors.New("sql: connection refused"),
			wantCode: http.StatusInternalServerError, wantMsg: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
			renderServiceError(rec, req, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp["error"])
			assert.Equal(t, tt.wantField, resp["field"])
		})
	}
}
