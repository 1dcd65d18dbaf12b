// Package metadata is a small key/value repository over the local SQLite
// "metadata" table. The session store keeps the bearer token and the cached
// user record in it.
package metadata

import "context"

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
