package riftdb

import (
	"testing"

	"github.com/nilotpal-dev/riftdb/pkg/options"
)

func TestOpenSetGetRemove(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if err := db.Set("key1", "value1"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	v, ok, err := db.Get("key1")
	if err != nil || !ok || v != "value1" {
		t.Fatalf("Get(key1) = %q, %v, %v, want value1, true, nil", v, ok, err)
	}

	if err := db.Remove("key1"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, ok, _ := db.Get("key1"); ok {
		t.Fatal("Get(key1) found a value after Remove")
	}

	err = db.Remove("key1")
	if err == nil || !IsKeyNotFound(err) {
		t.Fatalf("Remove() of absent key = %v, want KeyNotFound", err)
	}
}

func TestOpenWithCompactionThreshold(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir, options.WithCompactionThreshold(128))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	for i := 0; i < 50; i++ {
		if err := db.Set("k", "some reasonably sized value to accumulate stale bytes"); err != nil {
			t.Fatalf("Set() error: %v", err)
		}
	}

	v, ok, err := db.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = %q, %v, %v, want a value, true, nil", v, ok, err)
	}
}
