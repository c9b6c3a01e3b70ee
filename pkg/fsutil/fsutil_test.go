package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(file) {
		t.Error("Exists() = false for an existing file")
	}
	if Exists(filepath.Join(dir, "missing.txt")) {
		t.Error("Exists() = true for a missing file")
	}
	if Exists(dir) {
		t.Error("Exists() = true for a directory")
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := WriteAtomic(context.Background(), path, []byte("content"), 0600); err != nil {
		t.Fatalf("WriteAtomic() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("file content = %q, want %q", data, "content")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}

	// No stray temp files survive.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the target file", len(entries))
	}
}

func TestWriteAtomicCreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")

	if err := WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
		t.Fatalf("WriteAtomic() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("target file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != DefaultFileMode {
		t.Errorf("file mode = %o, want %o", perm, DefaultFileMode)
	}
}

func TestWriteAtomicReplacesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteAtomic(context.Background(), path, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(context.Background(), path, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}
}

func TestWriteAtomicCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteAtomic(ctx, path, []byte("x"), 0644); err == nil {
		t.Error("WriteAtomic() with canceled context should fail")
	}
	if Exists(path) {
		t.Error("canceled write should not create the file")
	}
}
