package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/feedmix/pkg/domain"
)

// maxErrBody limits how much of an error response is read for diagnostics
const maxErrBody = 4096

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,es;q=0.8",
	"en-US,en;q=0.9,de;q=0.8",
}

// statusError is a non-2xx response not classified as rate limit
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Body)
}

// statusClassifier lets an adapter turn a provider specific non-2xx response into a rate limit.
// Returning nil falls back to the default classification.
type statusClassifier func(status int, body []byte) error

// httpClient is shared by all adapters, it applies the timeout and classifies error responses
type httpClient struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

func newHTTPClient(timeout time.Duration, userAgent string) *httpClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if userAgent == "" {
		userAgent = "feedmix/1.0"
	}
	return &httpClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// get performs GET request and returns the body of a 2xx response. Caller closes the body.
func (c *httpClient) get(ctx context.Context, p domain.ProviderType, url string, headers map[string]string,
	classify statusClassifier) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &domain.ProviderError{Provider: p, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: p, Err: fmt.Errorf("request: %w", err)}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))

	if resp.StatusCode == http.StatusTooManyRequests {
		msg := "too many requests"
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			msg += ", retry after " + ra
		}
		return nil, &domain.RateLimitError{Provider: p, Message: msg}
	}
	if classify != nil {
		if cerr := classify(resp.StatusCode, body); cerr != nil {
			return nil, cerr
		}
	}
	return nil, &domain.ProviderError{Provider: p, Err: &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}}
}

// getJSON performs GET request and decodes JSON response into dest
func (c *httpClient) getJSON(ctx context.Context, p domain.ProviderType, url string, headers map[string]string,
	classify statusClassifier, dest any) error {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Accept"]; !ok {
		headers["Accept"] = "application/json"
	}
	body, err := c.get(ctx, p, url, headers, classify)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return &domain.ProviderError{Provider: p, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// getFeed performs GET request for an RSS/Atom document with browser-like headers
func (c *httpClient) getFeed(ctx context.Context, p domain.ProviderType, url string) (io.ReadCloser, error) {
	headers := map[string]string{
		"Accept":          "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5",
		"Cache-Control":   "no-cache",
		"Accept-Language": acceptLanguages[rand.Intn(len(acceptLanguages))], //nolint:gosec // header variation only
	}
	return c.get(ctx, p, url, headers, nil)
}

// plainText strips markup and collapses whitespace
func (c *httpClient) plainText(s string) string {
	if s == "" {
		return ""
	}
	clean := html.UnescapeString(c.sanitizer.Sanitize(s))
	return strings.Join(strings.Fields(clean), " ")
}
