package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultTimeout bounds a single probe from request start to response headers.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies the checker to the probed sites.
	DefaultUserAgent = "Mozilla/5.0 (compatible; FriendsHealthCheck/1.0)"
)

// connection pooling limits; a run never has more than one batch in flight
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultMaxConnsPerHost     = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// Client performs single bounded-time HTTP checks.
//
// Client never follows redirects: a 3xx response is the outcome of the check,
// not a hop on the way to one. Timeouts are applied per request via context
// rather than as a global client timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// Option configures a [Client].
type Option func(*Client)

// WithUserAgent overrides the User-Agent header sent with every probe.
// An empty value keeps [DefaultUserAgent].
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout overrides the per-probe deadline. Non-positive values keep
// [DefaultTimeout].
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client's
// CheckRedirect is forced to stop at the first response.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		cp.CheckRedirect = noFollow
		c.httpClient = &cp
	}
}

// NewClient creates a probe [Client].
//
// Connection pooling configuration:
//   - MaxIdleConns: 100 total idle connections
//   - MaxIdleConnsPerHost: 10 idle connections per host
//   - MaxConnsPerHost: 10 concurrent connections per host
//   - IdleConnTimeout: 60 seconds before closing idle connections
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			// no default timeout - the deadline is owned by each Check call
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
			CheckRedirect: noFollow,
		},
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errDeadline marks expiry of the per-check timeout set by [Client.Check].
var errDeadline = errors.New("check deadline exceeded")

// Timeout returns the per-probe deadline.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Check issues exactly one GET against target.URL and classifies the outcome.
//
// Check never returns an error; transport failures, deadlines and unexpected
// status codes are all reported through the returned [Result].
func (c *Client) Check(ctx context.Context, target Target) Result {
	ctx, cancel := context.WithTimeoutCause(ctx, c.timeout, errDeadline)
	defer cancel()

	result := Result{Name: target.Name, URL: target.URL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		result.Status = StatusError
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	result.Elapsed = time.Since(start)

	if err != nil {
		// only the client's own deadline is a timeout; a caller's deadline or
		// cancellation is reported as an error
		if errors.Is(context.Cause(ctx), errDeadline) {
			result.Status = StatusTimeout
			result.Error = fmt.Sprintf("Timeout after %dms", c.timeout.Milliseconds())
			return result
		}
		result.Status = StatusError
		result.Error = describe(err)
		return result
	}
	// headers are all we need; the body is never read
	_ = resp.Body.Close()

	return classify(result, resp)
}

// classify maps an HTTP response onto the result status.
func classify(result Result, resp *http.Response) Result {
	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		result.Status = StatusRedirect
		result.RedirectURL = resp.Header.Get("Location")
	case resp.StatusCode != http.StatusOK:
		result.Status = StatusError
	default:
		result.Status = StatusOK
	}
	return result
}

// describe strips the "Get \"url\":" prefix net/http adds, since the URL is
// already part of the result.
func describe(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func noFollow(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// Close closes all idle connections in the client's connection pool.
//
// Safe to call multiple times and on a nil receiver. The client remains
// usable afterwards.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
}
