// Package gogs provides an HTTP client for the Gogs API (/api/v1): users,
// repositories, access tokens and SSH public keys.
//
// The client wraps [github.com/go-resty/resty/v2]. Every operation is a
// fixed declaration of method, path and result handling; calling one
// resolves the actor's credentials, sends exactly one request and classifies
// the response into a [Pending] result.
//
// # Basic Usage
//
//	c, err := gogs.New("https://git.example.com/api/v1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	admin := gogs.BasicAuth("root", "secret")
//
//	user, err := c.CreateUser(ctx, gogs.CreateUserOption{
//	    Username: "alice",
//	    Email:    "alice@example.com",
//	    Password: "changeme",
//	}, admin).Await(ctx)
//
// Dependent calls are sequenced with [Then]:
//
//	alice := gogs.BasicAuth("alice", "changeme")
//	tokens := gogs.Then(c.CreateToken(ctx, gogs.CreateAccessTokenOption{Name: "ci"}, alice),
//	    func(*gogs.AccessToken) *gogs.Pending[[]*gogs.AccessToken] {
//	        return c.ListTokens(ctx, alice)
//	    })
//
// # Actors
//
// Credentials are passed per call as an [Actor]: [Anonymous], [BasicAuth]
// or [TokenAuth]. Tokens travel in the "token" query parameter, basic
// credentials in the Authorization header. [ResolveActor] picks the scheme
// from a loosely filled record, preferring a token over a password.
// Operations that place the actor's username in the URL, such as
// [Client.CreateToken], panic when the actor has no username.
//
// # Results and Errors
//
// A [Pending] settles once. Failures are one of:
//
//   - a transport error (connection refused, DNS, timeout), wrapped with
//     the method and path;
//   - an [*APIError] carrying the HTTP status and the server's message;
//   - [ErrMissingArguments] when an administrator tries to delete itself.
//
// Lookups ([Client.GetUser], [Client.GetRepo], [Client.GetPublicKey])
// resolve with nil on 404 instead of failing.
//
// # Configuration
//
// Options are supplied as [Option] functions passed to [New]. Invalid
// values are silently ignored and the default is retained. Retries are off
// by default; [WithRetryCount] enables them with [DefaultRetryPolicy].
// [LoadConfig] reads the same settings, plus named actors, from YAML.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger], or use
// [NewLogrusLogger] or [NewHCLogger]. The default [NoopLogger] discards
// all log output. The client only logs at debug and warn level; failures
// are returned to the caller.
package gogs
