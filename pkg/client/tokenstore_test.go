package client

import (
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "token"))

	if got := store.Get(); got != "" {
		t.Fatalf("fresh store should be empty, got %q", got)
	}

	if err := store.Set("abc.def.ghi"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := store.Get(); got != "abc.def.ghi" {
		t.Fatalf("get after set: got %q", got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := store.Get(); got != "" {
		t.Fatalf("get after clear: got %q", got)
	}
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))

	if err := store.Clear(); err != nil {
		t.Fatalf("clearing a missing file must not fail: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear must not fail: %v", err)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))

	if err := store.Set("abc.def.ghi\n"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := store.Get(); got != "abc.def.ghi" {
		t.Fatalf("expected trailing newline trimmed, got %q", got)
	}
}
