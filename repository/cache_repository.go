package repository

import "context"

// CacheRepository stores serialized calculation results keyed by their inputs.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
