package index

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cursorkit/cursorkit/internal/library"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUpsertAndSearch(t *testing.T) {
	db := testDB(t)

	err := db.UpsertDoc(DocRow{
		Path:      "builtin/commands/debug.md",
		Title:     "Debug Assistant",
		Kind:      "command",
		Source:    SourceBuiltin,
		Checksum:  "abc",
		UpdatedAt: time.Now(),
	}, "Systematic approach to debugging issues in the code.")
	if err != nil {
		t.Fatalf("UpsertDoc: %v", err)
	}

	results, err := db.Search("debugging", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Path != "builtin/commands/debug.md" || results[0].Kind != "command" {
		t.Errorf("result = %+v", results[0])
	}
}

func TestDeleteDoc(t *testing.T) {
	db := testDB(t)

	row := DocRow{Path: "library/rules/x.md", Source: SourceLibrary, Checksum: "1", UpdatedAt: time.Now()}
	if err := db.UpsertDoc(row, "unique needle text"); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteDoc("library/rules/x.md"); err != nil {
		t.Fatalf("DeleteDoc: %v", err)
	}
	results, err := db.Search("needle", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results after delete, got %v", results)
	}
}

func TestAllChecksums_FiltersBySource(t *testing.T) {
	db := testDB(t)

	_ = db.UpsertDoc(DocRow{Path: "builtin/a.md", Source: SourceBuiltin, Checksum: "1", UpdatedAt: time.Now()}, "a")
	_ = db.UpsertDoc(DocRow{Path: "library/rules/b.md", Source: SourceLibrary, Checksum: "2", UpdatedAt: time.Now()}, "b")

	lib, err := db.AllChecksums(SourceLibrary)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib) != 1 || lib["library/rules/b.md"] != "2" {
		t.Errorf("library checksums = %v", lib)
	}
	all, err := db.AllChecksums("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("all checksums = %v", all)
	}
}

func TestSyncBuiltins(t *testing.T) {
	db := testDB(t)
	if err := SyncBuiltins(db); err != nil {
		t.Fatalf("SyncBuiltins: %v", err)
	}
	// 5 rules + 11 commands + 5 community + AGENTS + README.
	checksums, err := db.AllChecksums(SourceBuiltin)
	if err != nil {
		t.Fatal(err)
	}
	if len(checksums) != 23 {
		t.Errorf("builtin docs = %d, want 23", len(checksums))
	}

	results, err := db.Search("checklist", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Error("expected hits for 'checklist' in builtin docs")
	}
}

func TestSyncLibrary_AddUpdateRemove(t *testing.T) {
	db := testDB(t)
	base := t.TempDir()
	rulesDir := filepath.Join(base, "rules")
	if err := os.MkdirAll(rulesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	lib := library.NewService(rulesDir, filepath.Join(base, "commands"))
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	file := filepath.Join(rulesDir, "r.md")
	if err := os.WriteFile(file, []byte("# First version"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SyncLibrary(db, lib, logger); err != nil {
		t.Fatalf("SyncLibrary: %v", err)
	}
	checksums, _ := db.AllChecksums(SourceLibrary)
	if len(checksums) != 1 {
		t.Fatalf("indexed = %v", checksums)
	}
	first := checksums["library/rules/r.md"]

	// Update.
	if err := os.WriteFile(file, []byte("# Second version"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SyncLibrary(db, lib, logger); err != nil {
		t.Fatal(err)
	}
	checksums, _ = db.AllChecksums(SourceLibrary)
	if checksums["library/rules/r.md"] == first {
		t.Error("checksum did not change after update")
	}

	// Remove.
	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	if err := SyncLibrary(db, lib, logger); err != nil {
		t.Fatal(err)
	}
	checksums, _ = db.AllChecksums(SourceLibrary)
	if len(checksums) != 0 {
		t.Errorf("stale entries remain: %v", checksums)
	}
}
