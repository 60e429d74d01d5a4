package gogs

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// endpoint declares one remote operation. Values are package-level and
// must not be modified.
type endpoint struct {
	method string
	path   string

	// requiresActor marks operations the server rejects without credentials.
	requiresActor bool
	// nullable404 resolves a 404 with the zero value instead of an error.
	nullable404 bool
	// noContent ignores the success body.
	noContent bool
	// envelope unwraps {"data": ..., "ok": ...} search responses.
	envelope bool
	// selfDestructive maps a 422 to ErrMissingArguments when the call
	// targets the acting user.
	selfDestructive bool
}

// call carries the per-invocation arguments of an endpoint.
type call struct {
	params map[string]string
	query  url.Values
	body   any

	// targetsActor is set when the subject of the call is the actor.
	targetsActor bool
}

func (e endpoint) String() string {
	return e.method + " " + e.path
}

// forCall returns the declaration as it applies to one call.
func (e endpoint) forCall(args call) endpoint {
	if !args.targetsActor {
		e.selfDestructive = false
	}
	return e
}

func (e endpoint) acceptsBody() bool {
	switch e.method {
	case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// checkParams panics when a placeholder in the path template has no value.
// Every caller of an endpoint is in this package, so a miss is a bug here
// and not something a remote call can fail with.
func (e endpoint) checkParams(params map[string]string) {
	for _, m := range placeholderPattern.FindAllStringSubmatch(e.path, -1) {
		if v, ok := params[m[1]]; !ok || v == "" {
			panic(fmt.Sprintf("gogs: endpoint %s: no value for path parameter %q", e, m[1]))
		}
	}
}

// expand renders the path template. Only used for logging; resty performs
// the substitution on the wire.
func (e endpoint) expand(params map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(e.path, func(m string) string {
		return url.PathEscape(params[m[1:len(m)-1]])
	})
}
