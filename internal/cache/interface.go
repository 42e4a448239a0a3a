package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ItemKeyPrefix = "item"

	// ShelfListKey caches the full name-ordered shelf listing; it is small and
	// read on every item form and every suggestion call.
	ShelfListKey = "shelves:all"
)
