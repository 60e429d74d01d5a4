package gogs

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is used when [New] is given an empty base URL.
const DefaultBaseURL = "https://try.gogs.io/api/v1"

var errNilClient = errors.New("gogs client is nil")

// Client calls the Gogs API. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	baseURL string
	options *Options
	http    *resty.Client
}

// New creates a client for the API rooted at baseURL, for example
// "https://git.example.com/api/v1".
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", baseURL)
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		options: options,
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetHeaders(options.requestHeaders).
		SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryMaxWaitTime).
		AddRetryCondition(options.retryPolicy).
		SetLogger(options.requestLogger).
		AddRetryHook(func(r *resty.Response, err error) {
			if r == nil || r.Request == nil {
				options.requestLogger.Warnf("retrying request after error: %v", err)
				return
			}
			if err != nil {
				options.requestLogger.Warnf("retrying %s %s after error: %v", r.Request.Method, r.Request.URL, err)
				return
			}
			options.requestLogger.Warnf("retrying %s %s after status %d", r.Request.Method, r.Request.URL, r.StatusCode())
		})

	if options.timeout > 0 {
		c.http.SetTimeout(options.timeout)
	}

	if options.rateLimiter != nil {
		c.http.SetRateLimiter(options.rateLimiter)
	}

	return c, nil
}

// BaseURL returns the API root every endpoint path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}

	c.http.GetClient().CloseIdleConnections()
}
