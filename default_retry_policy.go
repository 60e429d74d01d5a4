package gogs

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the retry condition installed once [WithRetryCount]
// enables retries; a client built without it sends every request once.
//
// Gogs answers 429 when its own rate limit trips and 502, 503 or 504 when
// the reverse proxy in front of it cannot reach the web process. Those are
// always retried. A bare 500 comes from Gogs itself, typically a failed
// database write, after which a create (POST) may already have taken
// effect: retrying POST /admin/users or POST /user/repos would then fail
// with "already exists", so a 500 is retried for every method but POST.
// Connection errors are retried except for DNS failures and the client's
// own rate limiter, which a retry cannot fix, and cancelled or expired
// contexts.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		return retryableTransportError(err)
	}

	if r == nil {
		return false
	}

	switch code := r.StatusCode(); {
	case code == http.StatusTooManyRequests,
		code == http.StatusBadGateway,
		code == http.StatusServiceUnavailable,
		code == http.StatusGatewayTimeout:
		return true
	case code >= http.StatusInternalServerError:
		return r.Request == nil || r.Request.Method != http.MethodPost
	default:
		return false
	}
}

func retryableTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, resty.ErrRateLimitExceeded) {
		return false
	}

	var dnsErr *net.DNSError
	return !errors.As(err, &dnsErr)
}
