// Package options provides the data structures and functional options for
// configuring a riftdb engine: currently just the logger it reports
// through and the stale-byte threshold that triggers compaction.
package options

import (
	"go.uber.org/zap"

	"github.com/nilotpal-dev/riftdb/pkg/errors"
)

// Options defines the configuration parameters for a riftdb engine.
type Options struct {
	// CompactionThreshold is the number of accounted-stale bytes (T in
	// spec.md §6) that triggers a compaction pass. Default: 4096.
	CompactionThreshold uint64 `json:"compactionThreshold"`

	// Logger receives structured events from every subsystem. Defaults to
	// a no-op logger when left nil by the caller.
	Logger *zap.SugaredLogger `json:"-"`

	// Err records the first rejected option value applied, e.g. an
	// out-of-range WithCompactionThreshold call. Open surfaces it.
	Err error `json:"-"`
}

// OptionFunc is a function type that modifies an engine's configuration.
type OptionFunc func(*Options)

// WithDefaultOptions applies the default configuration values.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		defaults := NewDefaultOptions()
		o.CompactionThreshold = defaults.CompactionThreshold
	}
}

// WithCompactionThreshold sets the stale-bytes threshold that triggers
// compaction. A value outside [MinCompactionThreshold, MaxCompactionThreshold]
// is rejected: the previous value is left in place and o.Err records a
// ValidationError for Open to return.
func WithCompactionThreshold(threshold uint64) OptionFunc {
	return func(o *Options) {
		if threshold < MinCompactionThreshold || threshold > MaxCompactionThreshold {
			if o.Err == nil {
				o.Err = errors.NewFieldRangeError(
					"compactionThreshold", threshold, MinCompactionThreshold, MaxCompactionThreshold,
				)
			}
			return
		}
		o.CompactionThreshold = threshold
	}
}

// WithLogger overrides the logger every subsystem reports through.
func WithLogger(logger *zap.SugaredLogger) OptionFunc {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
