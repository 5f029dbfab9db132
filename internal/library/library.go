// Package library loads live example documents from the on-disk rules
// and commands directories. The directories are optional read-only
// inputs: a missing directory yields an empty category, never an error.
package library

import (
	"errors"
	"io/fs"
	"sort"

	"github.com/cursorkit/cursorkit/internal/frontmatter"
	"github.com/cursorkit/cursorkit/internal/storage"
)

// Categories of example documents.
const (
	CategoryRules    = "rules"
	CategoryCommands = "commands"
)

// Example is one live document with its parsed header and annotations.
type Example struct {
	Name        string                   `json:"name"`
	Category    string                   `json:"category"`
	Content     string                   `json:"content"`
	Frontmatter map[string]any           `json:"frontmatter,omitempty"`
	Annotations []frontmatter.Annotation `json:"annotations,omitempty"`
}

// Service reads example documents from the configured directories.
type Service struct {
	dirs map[string]string
}

// NewService creates a library service over the two category directories.
// Either path may point at a directory that does not exist (yet).
func NewService(rulesDir, commandsDir string) *Service {
	return &Service{dirs: map[string]string{
		CategoryRules:    rulesDir,
		CategoryCommands: commandsDir,
	}}
}

// Dir returns the configured directory for a category ("" if unknown).
func (s *Service) Dir(category string) string {
	return s.dirs[category]
}

// provider opens the category directory, or returns nil when the
// directory is absent.
func (s *Service) provider(category string) (storage.Provider, error) {
	dir, ok := s.dirs[category]
	if !ok || dir == "" {
		return nil, nil
	}
	p, err := storage.NewFS(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Files returns metadata for every document in a category. A missing
// directory yields an empty slice.
func (s *Service) Files(category string) ([]storage.FileInfo, error) {
	p, err := s.provider(category)
	if err != nil || p == nil {
		return nil, err
	}
	return p.List("")
}

// Read returns the raw content of one document in a category.
func (s *Service) Read(category, path string) ([]byte, error) {
	p, err := s.provider(category)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fs.ErrNotExist
	}
	return p.Read(path)
}

// Load reads both categories and returns fully parsed examples sorted
// by name.
func (s *Service) Load() (map[string][]Example, error) {
	out := map[string][]Example{
		CategoryRules:    {},
		CategoryCommands: {},
	}
	for _, category := range []string{CategoryRules, CategoryCommands} {
		infos, err := s.Files(category)
		if err != nil {
			return nil, err
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
		for _, info := range infos {
			data, err := s.Read(category, info.Path)
			if err != nil {
				// File vanished between list and read; skip it.
				continue
			}
			content := string(data)
			ex := Example{
				Name:     info.Path,
				Category: category,
				Content:  content,
			}
			if header, _ := frontmatter.Parse(content); header != nil {
				ex.Frontmatter = header.Fields()
				ex.Annotations = frontmatter.Annotate(content)
			}
			out[category] = append(out[category], ex)
		}
	}
	return out, nil
}
