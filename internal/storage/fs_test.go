package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFS(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs, dir
}

func TestNewFS_MissingDir(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestListAndRead(t *testing.T) {
	fs, dir := newTestFS(t)
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.md"), []byte("# B"), 0o644); err != nil {
		t.Fatal(err)
	}

	infos, err := fs.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len = %d, want 2 (only .md files)", len(infos))
	}
	for _, info := range infos {
		if info.Checksum == "" {
			t.Errorf("%s has empty checksum", info.Path)
		}
	}

	data, err := fs.Read("a.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "# A" {
		t.Errorf("content = %q", data)
	}
}

func TestRead_TraversalRejected(t *testing.T) {
	fs, _ := newTestFS(t)
	if _, err := fs.Read("../outside.md"); err == nil {
		t.Error("traversal should be rejected")
	}
	if _, err := fs.Read("/etc/passwd"); err == nil {
		t.Error("absolute path should be rejected")
	}
}
