// Package index provides the in-memory hash table mapping keys to the
// byte range of their latest Set record (spec.md §3, §4.3). It is the
// engine's sole source of truth for what's live: a key absent from the
// index is treated as not present, whatever stale bytes still sit on disk.
package index

// Get returns the entry for key and whether it is present.
func (idx *Index) Get(key string) (Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.entries[key]
	return e, ok
}

// Set records entry as the live location for key, returning the entry it
// displaced, if any, so the caller can add its length to the stale-bytes
// counter (spec.md §4.6 step 3, §4.5 step 4).
func (idx *Index) Set(key string, entry Entry) (Entry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, had := idx.entries[key]
	idx.entries[key] = entry
	return old, had
}

// Delete removes key from the index, returning the entry it held, if any.
func (idx *Index) Delete(key string) (Entry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, had := idx.entries[key]
	if had {
		delete(idx.entries, key)
	}
	return old, had
}

// Len returns the number of live keys.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Snapshot returns a copy of every (key, entry) pair. Compaction walks the
// snapshot rather than the live map so it's free to call Update for each
// entry as it goes (spec.md §4.7 step 2) without holding a lock across I/O.
func (idx *Index) Snapshot() map[string]Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	snap := make(map[string]Entry, len(idx.entries))
	for k, e := range idx.entries {
		snap[k] = e
	}
	return snap
}

// Update rewrites the entry for an existing key in place, used by
// compaction once a live record has been copied to its new location
// (spec.md §4.7 step 2). It is a no-op if key is no longer present.
func (idx *Index) Update(key string, entry Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if _, ok := idx.entries[key]; ok {
		idx.entries[key] = entry
	}
}
