package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/bubble-arena/internal/level"
)

func TestWatcherReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, level.Files{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer w.Close()

	// Not a level file, must be ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "enemy.txt"), []byte("50,50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "enemy.txt" {
			t.Errorf("event for %q, expected enemy.txt", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for enemy.txt")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), level.Files{}); err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := New(t.TempDir(), level.Files{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
