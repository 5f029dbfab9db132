// Package testutil provides shared test helpers for setting up
// libraries and databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cursorkit/cursorkit/internal/index"
	"github.com/cursorkit/cursorkit/internal/library"
)

// TestDB creates an in-memory index that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	db, err := index.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestLibrary creates a temp example library with rules/ and commands/
// directories on disk.
func TestLibrary(t *testing.T) (*library.Service, string, string) {
	t.Helper()
	base := t.TempDir()
	rulesDir := filepath.Join(base, "rules")
	commandsDir := filepath.Join(base, "commands")
	for _, dir := range []string{rulesDir, commandsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return library.NewService(rulesDir, commandsDir), rulesDir, commandsDir
}
