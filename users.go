package gogs

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var (
	createUserEndpoint = endpoint{
		method:        http.MethodPost,
		path:          "/admin/users",
		requiresActor: true,
	}
	editUserEndpoint = endpoint{
		method:        http.MethodPatch,
		path:          "/admin/users/{username}",
		requiresActor: true,
	}
	deleteUserEndpoint = endpoint{
		method:          http.MethodDelete,
		path:            "/admin/users/{username}",
		requiresActor:   true,
		noContent:       true,
		selfDestructive: true,
	}
	searchUsersEndpoint = endpoint{
		method:   http.MethodGet,
		path:     "/users/search",
		envelope: true,
	}
	getUserEndpoint = endpoint{
		method:      http.MethodGet,
		path:        "/users/{username}",
		nullable404: true,
	}
	currentUserEndpoint = endpoint{
		method:        http.MethodGet,
		path:          "/user",
		requiresActor: true,
	}
)

// CreateUser creates an account. admin must be a site administrator.
func (c *Client) CreateUser(ctx context.Context, user CreateUserOption, admin Actor) *Pending[*User] {
	return invoke[*User](ctx, c, createUserEndpoint, call{body: user}, admin)
}

// EditUser updates the account named username. admin must be a site
// administrator.
func (c *Client) EditUser(ctx context.Context, username string, user EditUserOption, admin Actor) *Pending[*User] {
	return invoke[*User](ctx, c, editUserEndpoint, call{
		params: map[string]string{"username": username},
		body:   user,
	}, admin)
}

// DeleteUser deletes the account named username. An administrator deleting
// itself is rejected with [ErrMissingArguments]; any other refusal, such as
// an unknown username (404) or a user that still owns repositories (422),
// is rejected with an [*APIError].
func (c *Client) DeleteUser(ctx context.Context, username string, admin Actor) *Pending[struct{}] {
	return invoke[struct{}](ctx, c, deleteUserEndpoint, call{
		params:       map[string]string{"username": username},
		targetsActor: !admin.IsAnonymous() && strings.EqualFold(admin.Username, username),
	}, admin)
}

// SearchUsers returns at most limit users whose name matches query. A limit
// of zero or less uses the server default.
func (c *Client) SearchUsers(ctx context.Context, query string, limit int, actor Actor) *Pending[[]*User] {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return invoke[[]*User](ctx, c, searchUsersEndpoint, call{query: q}, actor)
}

// GetUser resolves with nil when no user is named username. The email
// address is only present when actor may see it.
func (c *Client) GetUser(ctx context.Context, username string, actor Actor) *Pending[*User] {
	return invoke[*User](ctx, c, getUserEndpoint, call{
		params: map[string]string{"username": username},
	}, actor)
}

// GetCurrentUser returns the account actor authenticates as.
func (c *Client) GetCurrentUser(ctx context.Context, actor Actor) *Pending[*User] {
	return invoke[*User](ctx, c, currentUserEndpoint, call{}, actor)
}
