package repositories

import (
	"sort"
	"strings"
	"testing"
	"time"
)

func TestPushKeyShape(t *testing.T) {
	key := NewPushKey()
	if len(key) != 20 {
		t.Fatalf("expected 20 characters, got %q", key)
	}
	for _, c := range key {
		if !strings.ContainsRune(pushChars, c) {
			t.Fatalf("unexpected character %q in %q", c, key)
		}
	}
}

func TestPushKeysSortInCreationOrder(t *testing.T) {
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tick := 0
	// three keys per millisecond, then the clock advances
	g := NewPushKeyGenerator(func() time.Time {
		ts := base.Add(time.Duration(tick/3) * time.Millisecond)
		tick++
		return ts
	})

	keys := make([]string, 30)
	for i := range keys {
		keys[i] = g.Next()
	}
	if !sort.StringsAreSorted(keys) {
		t.Fatalf("keys not in creation order: %v", keys)
	}
	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
	}
}

func TestPushKeyTimestampPrefix(t *testing.T) {
	at := time.UnixMilli(0)
	g := NewPushKeyGenerator(func() time.Time { return at })
	if got := g.Next()[:8]; got != "--------" {
		t.Fatalf("expected zero timestamp prefix, got %q", got)
	}
}
