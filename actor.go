package gogs

import (
	"github.com/go-resty/resty/v2"
)

// TokenQueryParam is the query parameter Gogs reads access tokens from.
const TokenQueryParam = "token"

type actorKind int

const (
	actorAnonymous actorKind = iota
	actorBasic
	actorToken
)

func (k actorKind) String() string {
	switch k {
	case actorBasic:
		return "basic"
	case actorToken:
		return "token"
	default:
		return "anonymous"
	}
}

// Actor is the identity a single call is made on behalf of. The zero value
// is an anonymous actor. Actors are supplied per call and never retained by
// [Client].
type Actor struct {
	Username string

	kind     actorKind
	password string
	token    string
}

// Anonymous returns an actor that sends no credentials.
func Anonymous() Actor {
	return Actor{}
}

// BasicAuth returns an actor authenticating with HTTP Basic credentials.
func BasicAuth(username, password string) Actor {
	return Actor{Username: username, kind: actorBasic, password: password}
}

// TokenAuth returns an actor authenticating with an access token. The
// username is only used to fill path templates such as /users/{username}/tokens.
func TokenAuth(username, token string) Actor {
	return Actor{Username: username, kind: actorToken, token: token}
}

// ResolveActor turns a loosely shaped credential record into an [Actor].
// A non-empty token wins over a password; a username without a password
// (or nothing at all) yields an anonymous actor that keeps the username.
func ResolveActor(username, password, token string) Actor {
	switch {
	case token != "":
		return TokenAuth(username, token)
	case username != "" && password != "":
		return BasicAuth(username, password)
	default:
		return Actor{Username: username}
	}
}

// IsAnonymous reports whether the actor carries no credentials.
func (a Actor) IsAnonymous() bool {
	return a.kind == actorAnonymous
}

// Scheme returns "anonymous", "basic" or "token".
func (a Actor) Scheme() string {
	return a.kind.String()
}

// String never includes the secret.
func (a Actor) String() string {
	if a.Username == "" {
		return a.kind.String()
	}
	return a.kind.String() + ":" + a.Username
}

func (a Actor) apply(req *resty.Request) {
	switch a.kind {
	case actorBasic:
		req.SetBasicAuth(a.Username, a.password)
	case actorToken:
		req.SetQueryParam(TokenQueryParam, a.token)
	}
}
