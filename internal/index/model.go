package index

import "sync"

// Entry is the (generation, offset, length) triple identifying the byte
// range of the latest Set record for a key (spec.md §3, §4.3).
type Entry struct {
	// Generation is the segment the record lives in.
	Generation uint64
	// Offset is the byte position where the record begins.
	Offset int64
	// Length is the number of bytes the encoded record occupies.
	Length int64
}

// Index is the in-memory map from key to Entry. The engine is
// single-threaded (spec.md §5); the mutex guards against accidental
// concurrent use rather than promising any concurrency contract to callers.
type Index struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty Index.
func New() *Index {
	return &Index{entries: make(map[string]Entry, 1024)}
}
