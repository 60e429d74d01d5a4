package gogs

import (
	"context"
	"net/http"
	"strconv"
)

var (
	listKeysEndpoint = endpoint{
		method:        http.MethodGet,
		path:          "/user/keys",
		requiresActor: true,
	}
	listUserKeysEndpoint = endpoint{
		method: http.MethodGet,
		path:   "/users/{username}/keys",
	}
	getKeyEndpoint = endpoint{
		method:        http.MethodGet,
		path:          "/user/keys/{id}",
		requiresActor: true,
		nullable404:   true,
	}
	createKeyEndpoint = endpoint{
		method:        http.MethodPost,
		path:          "/user/keys",
		requiresActor: true,
	}
	deleteKeyEndpoint = endpoint{
		method:        http.MethodDelete,
		path:          "/user/keys/{id}",
		requiresActor: true,
		noContent:     true,
	}
)

// ListPublicKeys lists the SSH keys of actor.
func (c *Client) ListPublicKeys(ctx context.Context, actor Actor) *Pending[[]*PublicKey] {
	return invoke[[]*PublicKey](ctx, c, listKeysEndpoint, call{}, actor)
}

// ListUserPublicKeys lists the public SSH keys of any user.
func (c *Client) ListUserPublicKeys(ctx context.Context, username string, actor Actor) *Pending[[]*PublicKey] {
	return invoke[[]*PublicKey](ctx, c, listUserKeysEndpoint, call{
		params: map[string]string{"username": username},
	}, actor)
}

// GetPublicKey resolves with nil when actor has no key with that id.
func (c *Client) GetPublicKey(ctx context.Context, id int64, actor Actor) *Pending[*PublicKey] {
	return invoke[*PublicKey](ctx, c, getKeyEndpoint, call{
		params: keyParams(id),
	}, actor)
}

func (c *Client) CreatePublicKey(ctx context.Context, key CreateKeyOption, actor Actor) *Pending[*PublicKey] {
	return invoke[*PublicKey](ctx, c, createKeyEndpoint, call{body: key}, actor)
}

func (c *Client) DeletePublicKey(ctx context.Context, id int64, actor Actor) *Pending[struct{}] {
	return invoke[struct{}](ctx, c, deleteKeyEndpoint, call{
		params: keyParams(id),
	}, actor)
}

func keyParams(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}
