// Package riftdb is the embeddable entry point for the storage engine: a
// single directory holding an append-only, log-structured key-value store
// (spec.md §1-§2). Everything else under internal/ is wiring; an
// application opens a DB through this package, passing pkg/options
// OptionFuncs to configure it.
package riftdb

import (
	"context"

	"github.com/nilotpal-dev/riftdb/internal/engine"
	"github.com/nilotpal-dev/riftdb/pkg/errors"
	"github.com/nilotpal-dev/riftdb/pkg/options"
)

// DB is an open handle on one data directory. It is not safe for
// concurrent use (spec.md §5): callers that need concurrency must
// serialize their own access.
type DB struct {
	engine *engine.Engine
}

// Open opens dataDir, creating it if it doesn't exist, and replays its
// segments to rebuild the in-memory index (spec.md §4.5). Recovery may
// itself trigger a compaction pass before Open returns.
func Open(dataDir string, optFuncs ...options.OptionFunc) (*DB, error) {
	opts := options.NewDefaultOptions()
	for _, fn := range optFuncs {
		fn(&opts)
	}
	if opts.Err != nil {
		return nil, opts.Err
	}

	e, err := engine.Open(context.Background(), dataDir, &opts)
	if err != nil {
		return nil, err
	}
	return &DB{engine: e}, nil
}

// Set writes key=value, overwriting any prior value (spec.md §4.6 set).
func (db *DB) Set(key, value string) error {
	return db.engine.Set(key, value)
}

// Get returns the value stored for key and whether it was present. A
// missing key is not an error: it returns ("", false, nil).
func (db *DB) Get(key string) (string, bool, error) {
	return db.engine.Get(key)
}

// Remove deletes key. It fails with a KeyNotFound error (see
// pkg/errors.IsIndexError) if the key has no live value (spec.md §4.6
// remove step 1).
func (db *DB) Remove(key string) error {
	return db.engine.Remove(key)
}

// Close releases every open segment file handle. The DB must not be used
// afterward.
func (db *DB) Close() error {
	return db.engine.Close()
}

// IsKeyNotFound reports whether err is the KeyNotFound error Remove
// returns for an absent key.
func IsKeyNotFound(err error) bool {
	ie, ok := errors.AsIndexError(err)
	return ok && ie.Code() == errors.ErrorCodeKeyNotFound
}
