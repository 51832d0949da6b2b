// Package metadata stores small key/value facts about the local catalog
// cache, such as when it was last refreshed.
package metadata

import (
	"context"
)

// Keys used by the catalog service.
const (
	KeyFetchedAt    = "fetched_at"
	KeyProductCount = "product_count"
)

type Repository interface {
	// Get returns ("", false, nil) when key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error

	// List returns every stored key with its value.
	List(ctx context.Context) (map[string]string, error)

	// Clear removes all keys; used when the cache is invalidated.
	Clear(ctx context.Context) error
}
