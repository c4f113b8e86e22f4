// Package store abstracts where instance corpora and result files live.
//
// Keys are slash-separated relative names ("inputs/atlanta.tsp",
// "results/LS/atlanta_LS_30_7.sol"). Implementations must be safe for
// concurrent use: the experiment driver writes from several goroutines.
package store

import (
	"context"
	"errors"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a key does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
// It aliases os.ErrNotExist so file-system errors match without wrapping.
var ErrNotFound = os.ErrNotExist

// ErrInvalidKey is returned for empty keys or keys escaping the store root.
var ErrInvalidKey = errors.New("store: invalid key")

// Store is a flat key/value blob store.
type Store interface {
	// Get returns the full contents stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the contents stored under key.
	Put(ctx context.Context, key string, data []byte) error
	// List returns all keys with the given prefix in ascending order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// CleanKey normalizes key and rejects keys that would escape the root.
func CleanKey(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	k := path.Clean(strings.ReplaceAll(key, "\\", "/"))
	k = strings.TrimPrefix(k, "/")
	if k == "." || k == ".." || strings.HasPrefix(k, "../") {
		return "", ErrInvalidKey
	}

	return k, nil
}
