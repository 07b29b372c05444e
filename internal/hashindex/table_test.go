package hashindex

import (
	"errors"
	"fmt"
	"testing"
)

type counter struct {
	n int
}

func TestFindOrCreateAndFind(t *testing.T) {
	// A small capacity forces plenty of collisions while still fitting
	// every key, so this exercises the probing paths hard.
	table := New[counter](17, PolyHash)

	keys := []string{"145.25", "10.0", "192.168", "8.8", "172.16", "235.99", "1.1", "9.9", "56.7", "99.100"}
	for _, key := range keys {
		c, created, err := table.FindOrCreate(key)
		if err != nil {
			t.Fatalf("FindOrCreate(%q) failed: %v", key, err)
		}
		if !created {
			t.Errorf("Expected %q to be created on first insert", key)
		}
		c.n = len(key)
	}

	if table.Len() != len(keys) {
		t.Fatalf("Len() = %d, want %d", table.Len(), len(keys))
	}

	// Every key must find its own record, never another key's.
	for _, key := range keys {
		c, ok := table.Find(key)
		if !ok {
			t.Fatalf("Find(%q) did not find the key", key)
		}
		if c.n != len(key) {
			t.Errorf("Find(%q) returned a foreign record (n=%d, want %d)", key, c.n, len(key))
		}
	}

	// Re-inserting must reuse, not create.
	c, created, err := table.FindOrCreate("10.0")
	if err != nil {
		t.Fatalf("FindOrCreate on existing key failed: %v", err)
	}
	if created {
		t.Error("Expected existing key to be reused")
	}
	if c.n != len("10.0") {
		t.Errorf("Reused record was mutated: n=%d", c.n)
	}

	if _, ok := table.Find("no.such"); ok {
		t.Error("Find reported a key that was never inserted")
	}
}

func TestTableFull(t *testing.T) {
	table := New[counter](4, PolyHash)
	for i := 0; i < 4; i++ {
		if _, _, err := table.FindOrCreate(fmt.Sprintf("key-%d", i)); err != nil {
			t.Fatalf("Insert %d failed early: %v", i, err)
		}
	}

	// Existing keys are still reachable on a full table.
	if _, _, err := table.FindOrCreate("key-0"); err != nil {
		t.Errorf("FindOrCreate on existing key of a full table failed: %v", err)
	}

	_, _, err := table.FindOrCreate("one-too-many")
	if !errors.Is(err, ErrTableFull) {
		t.Fatalf("Expected ErrTableFull, got %v", err)
	}
}

func TestRangeVisitsAllOccupied(t *testing.T) {
	table := New[counter](31, TwoPrimeHash)
	for i := 0; i < 10; i++ {
		c, _, err := table.FindOrCreate(fmt.Sprintf("10.%d", i))
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		c.n = i
	}

	seen := make(map[string]int)
	table.Range(func(key string, c *counter) bool {
		seen[key] = c.n
		return true
	})

	if len(seen) != 10 {
		t.Fatalf("Range visited %d slots, want 10", len(seen))
	}
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("10.%d", i)
		if seen[key] != i {
			t.Errorf("Range saw %q with value %d, want %d", key, seen[key], i)
		}
	}
}

func TestMaxByAndKeysWhere(t *testing.T) {
	table := New[counter](31, PolyHash)
	values := map[string]int{"a.1": 3, "b.2": 7, "c.3": 7, "d.4": 1, "e.5": 7}
	for key, n := range values {
		c, _, err := table.FindOrCreate(key)
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		c.n = n
	}

	max := MaxBy(table, func(c *counter) int { return c.n })
	if max != 7 {
		t.Fatalf("MaxBy = %d, want 7", max)
	}

	// Every tied key must be reported, not one arbitrary winner.
	ties := KeysWhere(table, func(c *counter) bool { return c.n == max })
	if len(ties) != 3 {
		t.Fatalf("KeysWhere returned %d keys, want 3: %v", len(ties), ties)
	}
	want := map[string]bool{"b.2": true, "c.3": true, "e.5": true}
	for _, key := range ties {
		if !want[key] {
			t.Errorf("Unexpected tie key %q", key)
		}
	}
}

func TestMaxByEmptyTable(t *testing.T) {
	table := New[counter](7, PolyHash)
	if got := MaxBy(table, func(c *counter) int { return c.n }); got != 0 {
		t.Errorf("MaxBy on empty table = %d, want 0", got)
	}
	if keys := KeysWhere(table, func(c *counter) bool { return true }); len(keys) != 0 {
		t.Errorf("KeysWhere on empty table returned %v", keys)
	}
}

func TestHashFunctionsInRange(t *testing.T) {
	keys := []string{"", "a", "145.25", "235.99.27.158", "a-rather-long-key-value"}
	for _, key := range keys {
		if h := PolyHash(key, 65521); h >= 65521 {
			t.Errorf("PolyHash(%q) = %d out of range", key, h)
		}
		if h := TwoPrimeHash(key, 65521); h >= 65521 {
			t.Errorf("TwoPrimeHash(%q) = %d out of range", key, h)
		}
	}
}
