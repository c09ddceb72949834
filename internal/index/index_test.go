package index

import "testing"

func TestIndex_setGetDelete(t *testing.T) {
	idx := New()

	if _, ok := idx.Get("k"); ok {
		t.Fatal("Get() on empty index found a key")
	}

	e1 := Entry{Generation: 0, Offset: 0, Length: 10}
	if _, had := idx.Set("k", e1); had {
		t.Fatal("Set() on new key reported a displaced entry")
	}

	got, ok := idx.Get("k")
	if !ok || got != e1 {
		t.Fatalf("Get() = %+v, %v, want %+v, true", got, ok, e1)
	}

	e2 := Entry{Generation: 0, Offset: 10, Length: 12}
	displaced, had := idx.Set("k", e2)
	if !had || displaced != e1 {
		t.Fatalf("Set() displaced = %+v, %v, want %+v, true", displaced, had, e1)
	}

	removed, had := idx.Delete("k")
	if !had || removed != e2 {
		t.Fatalf("Delete() = %+v, %v, want %+v, true", removed, had, e2)
	}
	if _, ok := idx.Get("k"); ok {
		t.Fatal("Get() after Delete() still found the key")
	}

	if _, had := idx.Delete("k"); had {
		t.Fatal("Delete() on an absent key reported a displaced entry")
	}
}

func TestIndex_snapshotAndUpdate(t *testing.T) {
	idx := New()
	idx.Set("a", Entry{Generation: 0, Offset: 0, Length: 5})
	idx.Set("b", Entry{Generation: 0, Offset: 5, Length: 5})

	snap := idx.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() len = %d, want 2", len(snap))
	}

	idx.Update("a", Entry{Generation: 1, Offset: 0, Length: 5})
	got, _ := idx.Get("a")
	if got.Generation != 1 {
		t.Fatalf("Get(%q) after Update = %+v, want generation 1", "a", got)
	}

	// Snapshot taken before Update must not observe the change.
	if snap["a"].Generation != 0 {
		t.Fatalf("Snapshot entry mutated after Update: %+v", snap["a"])
	}

	idx.Update("missing", Entry{Generation: 9})
	if _, ok := idx.Get("missing"); ok {
		t.Fatal("Update() on an absent key inserted it")
	}
}

func TestIndex_len(t *testing.T) {
	idx := New()
	if idx.Len() != 0 {
		t.Fatalf("Len() on empty index = %d, want 0", idx.Len())
	}
	idx.Set("a", Entry{})
	idx.Set("b", Entry{})
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
}
