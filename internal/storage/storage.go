// Package storage manages the on-disk segment files: naming, opening,
// appending, bounded reads, and the generation-rotation compaction needs
// (spec.md §4.2, §4.7). It knows nothing about keys or records; it only
// moves bytes at offsets the caller supplies.
package storage

import (
	"context"
	"io"

	"go.uber.org/zap"

	rifterrors "github.com/nilotpal-dev/riftdb/pkg/errors"
	"github.com/nilotpal-dev/riftdb/pkg/filesys"
	"github.com/nilotpal-dev/riftdb/pkg/seginfo"
)

// Storage owns every open file handle for a data directory: one writer for
// the active generation, and one reader per generation on disk.
type Storage struct {
	dataDir string
	log     *zap.SugaredLogger

	active  uint64
	writer  *segmentWriter
	readers map[uint64]*segmentReader
}

// New opens (creating if necessary) the data directory, opens a reader for
// every existing generation, and opens a writer for the most recent one
// (or generation 0, for a fresh directory). It returns the generations
// found on disk, in ascending order, so the engine can replay them.
//
// ctx is accepted for early-init trace correlation only, in the teacher's
// own constructor style; it is never checked for cancellation mid-open
// (spec.md §5 disclaims cancellation entirely).
func New(ctx context.Context, dataDir string, log *zap.SugaredLogger) (*Storage, []uint64, error) {
	if err := filesys.CreateDir(dataDir, 0755, true); err != nil {
		return nil, nil, rifterrors.ClassifyDirectoryCreationError(err, dataDir)
	}

	generations, err := seginfo.ListGenerations(dataDir)
	if err != nil {
		return nil, nil, rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to list segment files").
			WithPath(dataDir)
	}

	s := &Storage{
		dataDir: dataDir,
		log:     log,
		readers: make(map[uint64]*segmentReader, len(generations)+1),
	}

	for _, gen := range generations {
		if err := s.openReader(gen); err != nil {
			s.Close()
			return nil, nil, err
		}
	}

	active := uint64(0)
	if len(generations) > 0 {
		active = generations[len(generations)-1]
	}

	if err := s.openWriter(active); err != nil {
		s.Close()
		return nil, nil, err
	}
	if _, ok := s.readers[active]; !ok {
		if err := s.openReader(active); err != nil {
			s.Close()
			return nil, nil, err
		}
	}
	s.active = active

	log.Infow("storage opened",
		"dataDir", dataDir, "activeGeneration", active, "segments", len(generations))
	return s, generations, nil
}

func (s *Storage) path(gen uint64) string {
	return seginfo.Path(s.dataDir, gen)
}

func (s *Storage) openReader(gen uint64) error {
	r, err := openSegmentReader(s.path(gen))
	if err != nil {
		return rifterrors.ClassifyFileOpenError(err, s.path(gen), seginfo.GenerateName(gen))
	}
	s.readers[gen] = r
	return nil
}

func (s *Storage) openWriter(gen uint64) error {
	w, err := openSegmentWriter(s.path(gen))
	if err != nil {
		return rifterrors.ClassifyFileOpenError(err, s.path(gen), seginfo.GenerateName(gen))
	}
	s.writer = w
	return nil
}

// ActiveGeneration returns the generation currently accepting writes.
func (s *Storage) ActiveGeneration() uint64 {
	return s.active
}

// Position returns the byte offset the next Append will land at.
func (s *Storage) Position() int64 {
	return s.writer.position()
}

// Append writes b to the active segment and flushes it, returning the
// offset it was written at. There is no fsync: a crash can still lose the
// OS page cache's unwritten pages (spec.md §7, Non-goals).
func (s *Storage) Append(b []byte) (int64, error) {
	offset := s.writer.position()
	if err := s.writer.append(b); err != nil {
		return 0, rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to append record").
			WithPath(s.path(s.active)).
			WithGeneration(s.active).
			WithOffset(offset)
	}
	if err := s.writer.flush(); err != nil {
		return 0, rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to flush segment writer").
			WithPath(s.path(s.active))
	}
	return offset, nil
}

// SectionReader returns a reader bounded to the record at (offset, length)
// in the given generation.
func (s *Storage) SectionReader(gen uint64, offset, length int64) (io.Reader, error) {
	r, ok := s.readers[gen]
	if !ok {
		return nil, rifterrors.NewStorageError(nil, rifterrors.ErrorCodeInternal, "no reader open for segment").
			WithPath(s.path(gen)).
			WithGeneration(gen)
	}
	return r.section(offset, length), nil
}

// StreamReader returns a reader over the whole of the given generation,
// from its first byte, for a single-pass scan.
func (s *Storage) StreamReader(gen uint64) (io.Reader, error) {
	r, ok := s.readers[gen]
	if !ok {
		return nil, rifterrors.NewStorageError(nil, rifterrors.ErrorCodeInternal, "no reader open for segment").
			WithPath(s.path(gen)).
			WithGeneration(gen)
	}
	return r.stream(), nil
}

// Rotate closes the active writer and opens a new, empty segment one
// generation higher, which becomes the new active generation. It returns
// the new generation number. Compaction calls this twice: once for a
// fresh merge target and, after copying live records and deleting older
// generations, once more for a fresh writable tail (spec.md §4.7).
func (s *Storage) Rotate() (uint64, error) {
	if err := s.writer.close(); err != nil {
		return 0, rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to close segment writer").
			WithPath(s.path(s.active))
	}

	next := s.active + 1
	if err := s.openWriter(next); err != nil {
		return 0, err
	}
	if err := s.openReader(next); err != nil {
		return 0, err
	}

	s.active = next
	s.log.Debugw("rotated to new segment", "generation", next)
	return next, nil
}

// DeleteGenerationsBelow closes the readers for, and removes the files of,
// every generation strictly less than cutoff. Compaction uses this to
// reclaim the segments it has fully merged (spec.md §4.7 step 5).
func (s *Storage) DeleteGenerationsBelow(cutoff uint64) error {
	for gen, r := range s.readers {
		if gen >= cutoff {
			continue
		}

		if err := r.close(); err != nil {
			return rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to close segment reader").
				WithPath(s.path(gen))
		}
		delete(s.readers, gen)

		if err := filesys.DeleteFile(s.path(gen)); err != nil {
			return rifterrors.NewStorageError(err, rifterrors.ErrorCodeIO, "failed to delete segment file").
				WithPath(s.path(gen))
		}
		s.log.Debugw("deleted segment", "generation", gen)
	}
	return nil
}

// Close releases every open file handle. It keeps closing the rest of the
// readers even if one fails, returning the first error encountered.
func (s *Storage) Close() error {
	var first error

	if s.writer != nil {
		if err := s.writer.close(); err != nil && first == nil {
			first = err
		}
	}
	for gen, r := range s.readers {
		if err := r.close(); err != nil && first == nil {
			first = err
		}
		delete(s.readers, gen)
	}

	return first
}
