package osfilesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndOpen(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "clip.yuv")

	if err := fs.WriteFile(path, []byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := fs.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(data) != 3 || data[2] != 3 {
		t.Errorf("unexpected contents %v", data)
	}
}

func TestFileSystem_OpenMissing(t *testing.T) {
	fs := New()

	if _, err := fs.Open(filepath.Join(t.TempDir(), "missing.yuv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b", "snapshot.png")

	if err := fs.WriteFile(path, []byte("png")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := fs.MkdirAll(path); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()

	exists, err := fs.Exists(filepath.Join(t.TempDir(), "nonexistent"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}
