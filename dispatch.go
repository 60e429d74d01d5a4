package gogs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// invoke is the body of every catalog operation: resolve credentials,
// dispatch one request, classify the response.
func invoke[T any](ctx context.Context, c *Client, ep endpoint, args call, actor Actor) *Pending[T] {
	if c == nil {
		return Rejected[T](errNilClient)
	}

	ep.checkParams(args.params)
	ep = ep.forCall(args)

	return start(func() (T, error) {
		raw, err := c.send(ctx, ep, args, actor)
		if err != nil {
			var zero T
			return zero, err
		}
		return normalize[T](raw, ep)
	})
}

// send issues one HTTP request and returns the response whatever its
// status. Only transport failures are returned as errors.
func (c *Client) send(ctx context.Context, ep endpoint, args call, actor Actor) (*rawResponse, error) {
	log := c.options.requestLogger
	requestID := uuid.NewString()
	path := ep.expand(args.params)

	if ep.requiresActor && actor.IsAnonymous() {
		log.Warnf("%s %s called without credentials [request_id=%s]", ep.method, path, requestID)
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)

	if len(args.params) > 0 {
		req.SetPathParams(args.params)
	}

	if len(args.query) > 0 {
		req.SetQueryParamsFromValues(args.query)
	}

	if args.body != nil && ep.acceptsBody() {
		req.SetBody(args.body)
	}

	actor.apply(req)

	log.Debugf("%s %s as %s [request_id=%s]", ep.method, path, actor, requestID)

	resp, err := req.Execute(ep.method, ep.path)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", ep.method, path, err)
	}

	log.Debugf("%s %s returned %d in %v [request_id=%s]", ep.method, path, resp.StatusCode(), resp.Time(), requestID)

	contentType := resp.Header().Get("Content-Type")

	return &rawResponse{
		StatusCode:  resp.StatusCode(),
		Status:      resp.Status(),
		ContentType: contentType,
		Body:        resp.Body(),
		JSON:        strings.Contains(strings.ToLower(contentType), "json"),
	}, nil
}
