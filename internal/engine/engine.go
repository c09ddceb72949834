// Package engine implements the database engine: recovery, the three
// mutating/read operations, and compaction (spec.md §4.5-4.8). It
// composes internal/codec, internal/index and internal/storage; none of
// those packages know about each other.
package engine

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/nilotpal-dev/riftdb/internal/codec"
	"github.com/nilotpal-dev/riftdb/internal/index"
	"github.com/nilotpal-dev/riftdb/internal/storage"
	rifterrors "github.com/nilotpal-dev/riftdb/pkg/errors"
	"github.com/nilotpal-dev/riftdb/pkg/options"
)

// ErrEngineClosed is returned by every operation once Close has run.
var ErrEngineClosed = errors.New("operation failed: cannot access closed engine")

// Engine is the single-threaded cooperative database engine (spec.md §5):
// no internal locking, no background goroutines, compaction runs
// synchronously inline with whichever mutation tripped the threshold.
type Engine struct {
	options *options.Options
	log     *zap.SugaredLogger

	closed bool
	idx    *index.Index
	store  *storage.Storage

	// staleBytes accounts dead record bytes still on disk: the length of
	// every displaced Set and every Remove tombstone (spec.md §4.5 step 4,
	// §4.6). Compaction resets it to 0.
	staleBytes uint64
}

// Open opens dataDir, replays its segments to rebuild the index, and runs
// compaction immediately if recovery alone pushed the stale-bytes counter
// past the configured threshold (spec.md §4.5 step 6).
//
// ctx is threaded through to storage.New for early-init trace
// correlation only, in the teacher's own constructor style; the engine
// itself never checks it for cancellation (spec.md §5).
func Open(ctx context.Context, dataDir string, opts *options.Options) (*Engine, error) {
	store, generations, err := storage.New(ctx, dataDir, opts.Logger)
	if err != nil {
		return nil, err
	}

	e := &Engine{options: opts, log: opts.Logger, idx: index.New(), store: store}
	if err := e.recover(generations); err != nil {
		store.Close()
		return nil, err
	}

	if e.staleBytes > opts.CompactionThreshold {
		if err := e.compact(); err != nil {
			store.Close()
			return nil, err
		}
	}

	e.log.Infow("engine opened",
		"activeGeneration", store.ActiveGeneration(), "keys", e.idx.Len(), "staleBytes", e.staleBytes)
	return e, nil
}

// recover replays every generation in ascending order, rebuilding the
// index and the stale-bytes counter exactly as spec.md §4.5 step 4
// describes (streaming decode, tracking pre- and post-record offsets).
func (e *Engine) recover(generations []uint64) error {
	for _, gen := range generations {
		r, err := e.store.StreamReader(gen)
		if err != nil {
			return err
		}

		dec := codec.NewDecoder(r)
		var preOffset int64
		for {
			cmd, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				return rifterrors.NewDecodeError(err, gen, preOffset)
			}

			postOffset := dec.Offset()
			length := postOffset - preOffset

			switch cmd.Type {
			case codec.KindSet:
				entry := index.Entry{Generation: gen, Offset: preOffset, Length: length}
				if old, had := e.idx.Set(cmd.Key, entry); had {
					e.staleBytes += uint64(old.Length)
				}
			case codec.KindRemove:
				if old, had := e.idx.Delete(cmd.Key); had {
					e.staleBytes += uint64(old.Length)
				}
				e.staleBytes += uint64(length)
			}

			preOffset = postOffset
		}
	}
	return nil
}

// Set encodes and appends a Set record, then updates the index (spec.md
// §4.6 set steps 1-3), running compaction if the new stale byte pushes
// the counter past the threshold.
func (e *Engine) Set(key, value string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if key == "" {
		return rifterrors.NewRequiredFieldError("key")
	}

	b, err := codec.Encode(codec.NewSet(key, value))
	if err != nil {
		return err
	}

	off, err := e.store.Append(b)
	if err != nil {
		return err
	}

	entry := index.Entry{Generation: e.store.ActiveGeneration(), Offset: off, Length: int64(len(b))}
	if old, had := e.idx.Set(key, entry); had {
		e.staleBytes += uint64(old.Length)
	}

	return e.maybeCompact()
}

// Get looks up key and decodes the record its index entry points at. A
// decoded record that isn't a Set is on-disk corruption (spec.md §4.6 get
// step 3): the index is only ever supposed to point at live Set records.
func (e *Engine) Get(key string) (string, bool, error) {
	if e.closed {
		return "", false, ErrEngineClosed
	}
	if key == "" {
		return "", false, rifterrors.NewRequiredFieldError("key")
	}

	entry, ok := e.idx.Get(key)
	if !ok {
		return "", false, nil
	}

	r, err := e.store.SectionReader(entry.Generation, entry.Offset, entry.Length)
	if err != nil {
		return "", false, err
	}

	cmd, err := codec.NewDecoder(r).Decode()
	if err != nil {
		return "", false, rifterrors.NewDecodeError(err, entry.Generation, entry.Offset)
	}
	if !cmd.IsSet() {
		return "", false, rifterrors.NewUnknownCommandTypeError(entry.Generation, entry.Offset)
	}

	return cmd.Value, true, nil
}

// Remove fails with a KeyNotFound IndexError if key has no live entry,
// without writing anything; otherwise it drops the index entry first and
// appends the tombstone (spec.md §4.6 remove steps 1-3).
func (e *Engine) Remove(key string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if key == "" {
		return rifterrors.NewRequiredFieldError("key")
	}

	entry, had := e.idx.Delete(key)
	if !had {
		return rifterrors.NewKeyNotFoundError(key)
	}
	e.staleBytes += uint64(entry.Length)

	b, err := codec.Encode(codec.NewRemove(key))
	if err != nil {
		return err
	}
	if _, err := e.store.Append(b); err != nil {
		return err
	}
	e.staleBytes += uint64(len(b))

	return e.maybeCompact()
}

func (e *Engine) maybeCompact() error {
	if e.staleBytes > e.options.CompactionThreshold {
		return e.compact()
	}
	return nil
}

// compact implements the two-generation-advance merge of spec.md §4.7:
// every live entry is copied into a fresh segment (the merge target),
// every older segment is then deleted, and a second fresh segment takes
// over as the new active, writable generation.
func (e *Engine) compact() error {
	target, err := e.store.Rotate()
	if err != nil {
		return err
	}

	for key, entry := range e.idx.Snapshot() {
		r, err := e.store.SectionReader(entry.Generation, entry.Offset, entry.Length)
		if err != nil {
			return err
		}

		b, err := io.ReadAll(r)
		if err != nil {
			return rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to read record during compaction")
		}

		newOffset, err := e.store.Append(b)
		if err != nil {
			return err
		}
		e.idx.Update(key, index.Entry{Generation: target, Offset: newOffset, Length: int64(len(b))})
	}

	if err := e.store.DeleteGenerationsBelow(target); err != nil {
		return err
	}
	if _, err := e.store.Rotate(); err != nil {
		return err
	}

	e.log.Debugw("compaction complete", "mergeTarget", target, "keys", e.idx.Len())
	e.staleBytes = 0
	return nil
}

// Close releases every open segment file handle. It is an error to call
// any other method afterward.
func (e *Engine) Close() error {
	if e.closed {
		return ErrEngineClosed
	}
	e.closed = true
	return e.store.Close()
}
