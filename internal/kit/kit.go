// Package kit assembles the downloadable starter-kit archive.
package kit

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/cursorkit/cursorkit/internal/catalog"
)

// ArchiveName is the filename offered for download.
const ArchiveName = "cursor-starter-kit.zip"

const rootDir = "cursor-starter-kit/"

// Entries are written with a fixed modification time so the same
// catalog always produces byte-identical archives.
var fixedModTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Entry is one file inside the archive.
type Entry struct {
	Path    string `json:"path"`
	Size    int    `json:"size"`
	Content string `json:"-"`
}

// Contents lists the archive entries in write order: five rule files,
// ten command files, AGENTS.md and README.md, all under a single
// cursor-starter-kit/ root.
func Contents() []Entry {
	var entries []Entry
	add := func(path, content string) {
		entries = append(entries, Entry{Path: path, Size: len(content), Content: content})
	}

	for _, doc := range catalog.StarterRules() {
		add(rootDir+".cursor/rules/"+doc.Name, doc.Content)
	}
	for _, doc := range catalog.StarterCommands() {
		add(rootDir+".cursor/commands/"+doc.Name, doc.Content)
	}
	add(rootDir+"AGENTS.md", catalog.AgentsDoc().Content)
	add(rootDir+"README.md", catalog.ReadmeDoc().Content)
	return entries
}

// Build produces the starter-kit zip archive.
func Build() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range Contents() {
		header := &zip.FileHeader{
			Name:     entry.Path,
			Method:   zip.Deflate,
			Modified: fixedModTime,
		}
		header.SetMode(0o644)
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("kit: create %s: %w", entry.Path, err)
		}
		if _, err := w.Write([]byte(entry.Content)); err != nil {
			return nil, fmt.Errorf("kit: write %s: %w", entry.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("kit: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
