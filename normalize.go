package gogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingArguments is returned when the server refuses an operation an
// actor attempts on itself, such as an admin deleting its own account.
var ErrMissingArguments = errors.New("missing arguments")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gogs API error %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of an [*APIError] anywhere in err's
// chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// rawResponse is a response before classification.
type rawResponse struct {
	StatusCode  int
	Status      string
	ContentType string
	Body        []byte
	JSON        bool
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type envelopeBody struct {
	Data json.RawMessage `json:"data"`
	OK   bool            `json:"ok"`
}

func normalize[T any](raw *rawResponse, ep endpoint) (T, error) {
	var zero T

	switch {
	case ep.selfDestructive && raw.StatusCode == http.StatusUnprocessableEntity:
		return zero, ErrMissingArguments

	case raw.StatusCode >= 200 && raw.StatusCode < 300:
		if ep.noContent {
			return zero, nil
		}
		return decodeBody[T](raw, ep)

	case ep.nullable404 && raw.StatusCode == http.StatusNotFound:
		return zero, nil

	default:
		return zero, &APIError{
			StatusCode: raw.StatusCode,
			Message:    errorMessage(raw),
		}
	}
}

func decodeBody[T any](raw *rawResponse, ep endpoint) (T, error) {
	var v T

	body := raw.Body
	if ep.envelope {
		var env envelopeBody
		if err := json.Unmarshal(body, &env); err != nil {
			return v, decodeError(raw, ep, err)
		}
		if !env.OK {
			return v, &APIError{StatusCode: raw.StatusCode, Message: "search failed"}
		}
		body = env.Data
	}

	if len(body) == 0 {
		return v, nil
	}

	if err := json.Unmarshal(body, &v); err != nil {
		return v, decodeError(raw, ep, err)
	}

	return v, nil
}

// decodeError names the content type when the body was not declared as
// JSON, which is what a proxy or login page in front of the server returns.
func decodeError(raw *rawResponse, ep endpoint, err error) error {
	if !raw.JSON {
		contentType := raw.ContentType
		if contentType == "" {
			contentType = "none"
		}
		return fmt.Errorf("%s returned %d with a non-JSON body (content type %s): %w", ep, raw.StatusCode, contentType, err)
	}
	return fmt.Errorf("failed to decode %s response: %w", ep, err)
}

func errorMessage(raw *rawResponse) string {
	if raw.JSON && len(raw.Body) > 0 {
		var body errorBody
		if err := json.Unmarshal(raw.Body, &body); err == nil {
			if msg := strings.TrimSpace(body.Message); msg != "" {
				return msg
			}
			if msg := strings.TrimSpace(body.Error); msg != "" {
				return msg
			}
		}
	}

	if text := http.StatusText(raw.StatusCode); text != "" {
		return text
	}

	return raw.Status
}
