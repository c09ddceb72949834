package options

import (
	"testing"

	"github.com/nilotpal-dev/riftdb/pkg/errors"
)

func TestWithCompactionThreshold_boundsChecked(t *testing.T) {
	o := NewDefaultOptions()

	WithCompactionThreshold(1024)(&o)
	if o.CompactionThreshold != 1024 {
		t.Fatalf("CompactionThreshold = %d, want 1024", o.CompactionThreshold)
	}
	if o.Err != nil {
		t.Fatalf("in-range value set o.Err: %v", o.Err)
	}

	WithCompactionThreshold(MinCompactionThreshold - 1)(&o)
	if o.CompactionThreshold != 1024 {
		t.Fatalf("CompactionThreshold changed by below-min value: %d", o.CompactionThreshold)
	}
	if !errors.IsValidationError(o.Err) {
		t.Fatalf("below-min value did not set a ValidationError: %v", o.Err)
	}

	o.Err = nil
	WithCompactionThreshold(MaxCompactionThreshold + 1)(&o)
	if o.CompactionThreshold != 1024 {
		t.Fatalf("CompactionThreshold changed by above-max value: %d", o.CompactionThreshold)
	}
	if !errors.IsValidationError(o.Err) {
		t.Fatalf("above-max value did not set a ValidationError: %v", o.Err)
	}
}

func TestWithLogger_ignoresNil(t *testing.T) {
	o := NewDefaultOptions()
	original := o.Logger

	WithLogger(nil)(&o)
	if o.Logger != original {
		t.Fatal("WithLogger(nil) replaced the logger")
	}
}

func TestWithDefaultOptions(t *testing.T) {
	var o Options
	WithDefaultOptions()(&o)
	if o.CompactionThreshold != DefaultCompactionThreshold {
		t.Fatalf("CompactionThreshold = %d, want %d", o.CompactionThreshold, DefaultCompactionThreshold)
	}
}
