package hvr

import (
	"context"
)

// API defines the request surface the generated endpoint methods are built on
type API interface {
	// Do performs a request with a bearer token attached
	Do(ctx context.Context, r *Request) (any, error)

	// Login makes sure a valid token is cached
	Login(ctx context.Context) error

	// Token returns a valid bearer token, logging in when needed
	Token(ctx context.Context) (string, error)
}

var _ API = (*Client)(nil)
