package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsDataFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, UpgradesFile)
	if err := os.WriteFile(target, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("event for %q, want %q", name, target)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	select {
	case <-w.Done():
	default:
		t.Fatal("Done not closed after Close")
	}
}

func TestIsDataFile(t *testing.T) {
	cases := map[string]bool{
		"a.yaml":  true,
		"b.YML":   true,
		"c.tengo": true,
		"d.json":  false,
		"e":       false,
	}
	for name, want := range cases {
		if got := isDataFile(name); got != want {
			t.Errorf("isDataFile(%q) = %v, want %v", name, got, want)
		}
	}
}
