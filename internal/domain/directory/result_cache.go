package directory

import (
	"context"
	"fmt"

	"github.com/finswitch/account-lookup/internal/domain/shared"
)

// ErrCodeCacheKeyExists is returned when Set is called on a live key.
// Overwriting is an error, not a silent replace: callers must Delete first.
const ErrCodeCacheKeyExists = "CACHE_KEY_EXISTS"

// NewCacheKeyExistsError reports an attempted overwrite of a live cache key
func NewCacheKeyExistsError(key string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCacheKeyExists, fmt.Sprintf("cache key already exists: %s", key))
}

// ResultCache is a time-bounded cache of resolved FSP identifiers keyed by
// the party tuple. Entries expire after a fixed TTL; a Get past the TTL
// reads as absence.
type ResultCache interface {
	// Get returns the cached value, or nil when absent or expired
	Get(ctx context.Context, key string) (*string, error)
	// Set stores a value under a new key; fails when the key is live
	Set(ctx context.Context, key, value string) error
	// Delete removes a key; removing an absent key is not an error
	Delete(ctx context.Context, key string) error
	// Destroy clears all entries and releases resources; shutdown only
	Destroy(ctx context.Context) error
}
