package gogs

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

var (
	searchReposEndpoint = endpoint{
		method:   http.MethodGet,
		path:     "/repos/search",
		envelope: true,
	}
	listReposEndpoint = endpoint{
		method:        http.MethodGet,
		path:          "/user/repos",
		requiresActor: true,
	}
	createRepoEndpoint = endpoint{
		method:        http.MethodPost,
		path:          "/user/repos",
		requiresActor: true,
	}
	getRepoEndpoint = endpoint{
		method:      http.MethodGet,
		path:        "/repos/{owner}/{repo}",
		nullable404: true,
	}
	deleteRepoEndpoint = endpoint{
		method:        http.MethodDelete,
		path:          "/repos/{owner}/{repo}",
		requiresActor: true,
		noContent:     true,
	}
)

// SearchRepos returns at most limit repositories matching query. A uid
// greater than zero restricts the search to repositories owned by that user
// id; a limit of zero or less uses the server default.
func (c *Client) SearchRepos(ctx context.Context, query string, uid int64, limit int, actor Actor) *Pending[[]*Repository] {
	q := url.Values{"q": {query}}
	if uid > 0 {
		q.Set("uid", strconv.FormatInt(uid, 10))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return invoke[[]*Repository](ctx, c, searchReposEndpoint, call{query: q}, actor)
}

// ListRepos lists the repositories actor owns or can access.
func (c *Client) ListRepos(ctx context.Context, actor Actor) *Pending[[]*Repository] {
	return invoke[[]*Repository](ctx, c, listReposEndpoint, call{}, actor)
}

// CreateRepo creates a repository owned by actor.
func (c *Client) CreateRepo(ctx context.Context, repo CreateRepoOption, actor Actor) *Pending[*Repository] {
	return invoke[*Repository](ctx, c, createRepoEndpoint, call{body: repo}, actor)
}

// GetRepo resolves with nil when owner/name does not exist or is not
// visible to actor.
func (c *Client) GetRepo(ctx context.Context, owner, name string, actor Actor) *Pending[*Repository] {
	return invoke[*Repository](ctx, c, getRepoEndpoint, call{
		params: map[string]string{"owner": owner, "repo": name},
	}, actor)
}

// DeleteRepo deletes owner/name. Unknown repositories and repositories
// actor may not administer are rejected.
func (c *Client) DeleteRepo(ctx context.Context, owner, name string, actor Actor) *Pending[struct{}] {
	return invoke[struct{}](ctx, c, deleteRepoEndpoint, call{
		params: map[string]string{"owner": owner, "repo": name},
	}, actor)
}
