package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	defer fs.Close()

	doc := []byte(`{"version":1,"board":{}}`)
	if err := fs.Save("dungeon1", doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := fs.Load("dungeon1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("loaded document differs: %s", got)
	}
}

func TestLoadMissingBoard(t *testing.T) {
	fs, _ := NewFileStore(t.TempDir())
	_, err := fs.Load("ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewFileStore(dir)
	fs.Save("beta", []byte(`{}`))
	fs.Save("alpha", []byte(`{}`))
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	names, err := fs.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("expected [alpha beta], got %v", names)
	}
}

func TestSaveDoesNotLeaveTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewFileStore(dir)
	fs.Save("a", []byte(`{}`))

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the document in the directory, found %d entries", len(entries))
	}
}

func TestWatcherReportsSavedBoards(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewFileStore(dir)

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := fs.Save("level", []byte(`{"version":1,"board":{}}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name == "level" {
				return
			}
			// Rename events may surface the temp name first; keep waiting.
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for a watch event")
		}
	}
}

func TestBoardName(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"/boards/level.json", "level"},
		{"level.json", "level"},
		{"/boards/level.json.tmp", ""},
		{"/boards/readme.md", ""},
	}
	for _, tt := range tests {
		if got := boardName(tt.path); got != tt.want {
			t.Errorf("boardName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
