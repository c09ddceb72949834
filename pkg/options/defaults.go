package options

import "go.uber.org/zap"

const (
	// DefaultCompactionThreshold is the stale-byte threshold (T) that
	// triggers compaction when no override is supplied (spec.md §6).
	DefaultCompactionThreshold uint64 = 4096

	// MinCompactionThreshold is the smallest threshold WithCompactionThreshold accepts.
	// Below this, near-every write would trigger a compaction pass.
	MinCompactionThreshold uint64 = 64

	// MaxCompactionThreshold is the largest threshold WithCompactionThreshold accepts.
	MaxCompactionThreshold uint64 = 1 << 30
)

// NewDefaultOptions returns the baseline configuration for a riftdb engine.
func NewDefaultOptions() Options {
	return Options{
		CompactionThreshold: DefaultCompactionThreshold,
		Logger:              zap.NewNop().Sugar(),
	}
}
