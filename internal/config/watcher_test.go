package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("filter: Active\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// the create event can race the write and yield the defaults first
	deadline := time.After(2 * time.Second)
	for {
		select {
		case cfg := <-w.Changes():
			if cfg != nil && cfg.Filter == "Active" {
				return
			}
		case err := <-w.Errors():
			t.Fatalf("unexpected watcher error: %v", err)
		case <-deadline:
			t.Fatal("no reload with filter Active after write")
		}
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("schema: \"9.0.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case err := <-w.Errors():
			if err == nil {
				t.Error("expected parse error")
			}
			return
		case <-w.Changes():
			// an empty file from the create event parses to defaults
		case <-deadline:
			t.Fatal("no error after invalid write")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Changes():
		t.Errorf("unexpected reload for other file: %+v", cfg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	if err == nil {
		t.Error("NewWatcher() on missing directory should fail")
	}
}

func TestWatcherDoubleClose(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// channels are closed once the loop exits
	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Error("Changes() delivered a value after Close")
		}
	case <-time.After(time.Second):
		t.Error("Changes() not closed after Close")
	}
}
