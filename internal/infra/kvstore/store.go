// Package kvstore defines the string-keyed snapshot store the repositories
// persist through. Values are opaque JSON blobs; the key set is the on-disk
// format inherited from the browser-local-storage origin of the platform.
package kvstore

import (
	"context"

	"agroalerta/internal/errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a synchronous key/value blob store.
type Store interface {
	// Get retrieves the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the blob under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
