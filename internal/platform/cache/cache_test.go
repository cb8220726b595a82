package cache

import (
	"testing"
	"time"
)

func TestStore_ClearDefaultRegionKeepsOthers(t *testing.T) {
	s := New(0)
	s.Set(DefaultRegion, "list", []string{"a"})
	s.Set("profile", "me", "user-1")

	s.Clear(false)

	if _, ok := s.Get(DefaultRegion, "list"); ok {
		t.Fatalf("expected default region cleared")
	}
	if v, ok := s.Get("profile", "me"); !ok || v != "user-1" {
		t.Fatalf("expected other region kept, got %v %v", v, ok)
	}
}

func TestStore_ClearAll(t *testing.T) {
	s := New(0)
	s.Set("", "list", 1) // "" => región por defecto
	s.Set("profile", "me", 2)

	s.Clear(true)

	if _, ok := s.Get(DefaultRegion, "list"); ok {
		t.Fatalf("expected default region cleared")
	}
	if _, ok := s.Get("profile", "me"); ok {
		t.Fatalf("expected every region cleared")
	}
}

func TestStore_TTL(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	s := New(time.Minute)
	s.now = func() time.Time { return now }

	s.Set(DefaultRegion, "list", "v")
	if _, ok := s.Get(DefaultRegion, "list"); !ok {
		t.Fatalf("expected hit before ttl")
	}

	now = now.Add(time.Minute)
	if _, ok := s.Get(DefaultRegion, "list"); ok {
		t.Fatalf("expected miss at ttl")
	}
}
