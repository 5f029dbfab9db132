package index

import (
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/cursorkit/cursorkit/internal/catalog"
	"github.com/cursorkit/cursorkit/internal/checksum"
	"github.com/cursorkit/cursorkit/internal/frontmatter"
	"github.com/cursorkit/cursorkit/internal/library"
)

// Document sources.
const (
	SourceBuiltin = "builtin"
	SourceLibrary = "library"
)

// SyncBuiltins indexes every built-in catalog document. The catalog is
// compile-time constant, so this runs once at startup.
func SyncBuiltins(db DocIndex) error {
	now := time.Now()

	for _, doc := range catalog.StarterRules() {
		if err := indexDoc(db, "builtin/rules/"+doc.Name, string(doc.Kind), SourceBuiltin, doc.Content, now); err != nil {
			return err
		}
	}
	for _, cmd := range catalog.Commands() {
		if err := indexDoc(db, "builtin/commands/"+cmd.Key+".md", string(catalog.KindCommand), SourceBuiltin, cmd.Content, now); err != nil {
			return err
		}
	}
	for _, r := range catalog.CommunityRules() {
		if err := indexDoc(db, "builtin/community/"+r.Tech+".md", string(catalog.KindRule), SourceBuiltin, r.Content, now); err != nil {
			return err
		}
	}
	if err := indexDoc(db, "builtin/AGENTS.md", string(catalog.KindRule), SourceBuiltin, catalog.AgentsDoc().Content, now); err != nil {
		return err
	}
	return indexDoc(db, "builtin/README.md", string(catalog.KindRule), SourceBuiltin, catalog.ReadmeDoc().Content, now)
}

// SyncLibrary walks the example library and brings the index up to date:
// new/changed files are upserted, files removed from disk are deleted.
func SyncLibrary(db DocIndex, lib *library.Service, logger *slog.Logger) error {
	checksums, err := db.AllChecksums(SourceLibrary)
	if err != nil {
		return err
	}

	disk := make(map[string]struct{})
	for _, category := range []string{library.CategoryRules, library.CategoryCommands} {
		infos, err := lib.Files(category)
		if err != nil {
			return err
		}
		for _, info := range infos {
			p := libraryPath(category, info.Path)
			disk[p] = struct{}{}

			if checksums[p] == info.Checksum {
				continue
			}
			data, err := lib.Read(category, info.Path)
			if err != nil {
				logger.Warn("sync: read failed", slog.String("path", p), slog.String("error", err.Error()))
				continue
			}
			if err := IndexLibraryFile(db, category, info.Path, data); err != nil {
				logger.Warn("sync: index failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: indexed", slog.String("path", p))
			}
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteDoc(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// IndexLibraryFile upserts one example-library file into the index.
func IndexLibraryFile(db DocIndex, category, rel string, data []byte) error {
	kind := string(catalog.KindRule)
	if category == library.CategoryCommands {
		kind = string(catalog.KindCommand)
	}
	return indexDoc(db, libraryPath(category, rel), kind, SourceLibrary, string(data), time.Now())
}

// libraryPath builds the index path for an example file.
func libraryPath(category, rel string) string {
	return "library/" + category + "/" + rel
}

func indexDoc(db DocIndex, p, kind, source, content string, now time.Time) error {
	_, body := frontmatter.Parse(content)
	return db.UpsertDoc(DocRow{
		Path:      p,
		Title:     deriveTitle(body, p),
		Kind:      kind,
		Source:    source,
		Checksum:  checksum.Sum([]byte(content)),
		UpdatedAt: now,
	}, body)
}

// deriveTitle returns the first H1 heading, otherwise the filename.
func deriveTitle(body, p string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return path.Base(p)
}
