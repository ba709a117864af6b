// Package metadata is a sqlite-backed key-value store for small durable
// client state: the first-launch flag and the cached provider tokens.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyHasLaunched  = "has_launched"
	KeyIDToken      = "id_token"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

type Repository interface {
	// Get returns nil (no error) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
