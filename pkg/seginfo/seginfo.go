// Package seginfo names and parses segment files.
//
// Filename Format: data_<N>.data
//
// Where <N> is the decimal representation of the segment's generation, a
// non-negative 64-bit integer. The active segment is always the one with
// the greatest generation present in the directory.
//
// Example filenames:
//
//	data_0.data
//	data_1.data
//	data_42.data
package seginfo

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/nilotpal-dev/riftdb/pkg/filesys"
)

const (
	prefix = "data_"
	ext    = ".data"
)

// GenerateName returns the filename for the segment of the given generation.
func GenerateName(generation uint64) string {
	return fmt.Sprintf("%s%d%s", prefix, generation, ext)
}

// ParseGeneration extracts the generation from a segment filename. It
// returns false if filename doesn't match the data_<N>.data format.
func ParseGeneration(filename string) (uint64, bool) {
	if !strings.HasPrefix(filename, prefix) || !strings.HasSuffix(filename, ext) {
		return 0, false
	}

	middle := strings.TrimSuffix(strings.TrimPrefix(filename, prefix), ext)
	generation, err := strconv.ParseUint(middle, 10, 64)
	if err != nil {
		return 0, false
	}
	return generation, true
}

// ListGenerations scans dataDir for segment files and returns their
// generations sorted ascending. Files that don't match the segment naming
// convention are ignored.
func ListGenerations(dataDir string) ([]uint64, error) {
	pattern := filepath.Join(dataDir, prefix+"*"+ext)
	matches, err := filesys.ReadDir(pattern)
	if err != nil {
		return nil, err
	}

	generations := make([]uint64, 0, len(matches))
	for _, path := range matches {
		generation, ok := ParseGeneration(filepath.Base(path))
		if !ok {
			continue
		}
		generations = append(generations, generation)
	}

	slices.Sort(generations)
	return generations, nil
}

// Path joins dataDir and the segment filename for the given generation.
func Path(dataDir string, generation uint64) string {
	return filepath.Join(dataDir, GenerateName(generation))
}
