package gogs

import (
	"context"
	"net/http"
)

var (
	createTokenEndpoint = endpoint{
		method:        http.MethodPost,
		path:          "/users/{username}/tokens",
		requiresActor: true,
	}
	listTokensEndpoint = endpoint{
		method:        http.MethodGet,
		path:          "/users/{username}/tokens",
		requiresActor: true,
	}
)

// CreateToken creates an access token for actor. Gogs only accepts basic
// auth here.
func (c *Client) CreateToken(ctx context.Context, token CreateAccessTokenOption, actor Actor) *Pending[*AccessToken] {
	return invoke[*AccessToken](ctx, c, createTokenEndpoint, call{
		params: map[string]string{"username": actor.Username},
		body:   token,
	}, actor)
}

// ListTokens lists the access tokens of actor.
func (c *Client) ListTokens(ctx context.Context, actor Actor) *Pending[[]*AccessToken] {
	return invoke[[]*AccessToken](ctx, c, listTokensEndpoint, call{
		params: map[string]string{"username": actor.Username},
	}, actor)
}
