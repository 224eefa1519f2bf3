package kv

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "grindlog.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("poker-tracker-data")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("poker-tracker-data", `{"sessions":[]}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get("poker-tracker-data")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != `{"sessions":[]}` {
		t.Errorf("value = %q", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("poker-tracker-filters", "old"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("poker-tracker-filters", "new"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _, err := s.Get("poker-tracker-filters")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "new" {
		t.Errorf("value = %q, want new", got)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("poker-tracker-settings", "x"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete("poker-tracker-settings"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get("poker-tracker-settings"); ok {
		t.Error("deleted key still present")
	}

	// Deleting again is fine.
	if err := s.Delete("poker-tracker-settings"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}
