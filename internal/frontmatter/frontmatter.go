// Package frontmatter splits Cursor rule documents into a YAML header and
// a Markdown body, and derives field annotations for the recognized keys.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// Header is the decoded frontmatter mapping of a rule document.
//
// The three keys Cursor assigns meaning to (description, globs,
// alwaysApply) have typed accessors. Every other key is retained in the
// raw mapping untouched, so documents using fields this tool does not
// understand round-trip without loss.
type Header struct {
	raw map[string]any
}

// Parse splits content into an optional header and a body.
//
// The header is the YAML block between the first two "---" marker lines.
// Content that does not start with a marker, has no closing marker, or
// carries unparsable YAML is returned unchanged with a nil header —
// malformed frontmatter is treated as plain text, never as an error.
// On success the body is the text after the closing marker, trimmed.
func Parse(content string) (*Header, string) {
	if !strings.HasPrefix(content, delim) {
		return nil, content
	}

	end := strings.Index(content[len(delim):], delim)
	if end < 0 {
		// No closing marker — the whole thing is body.
		return nil, content
	}
	end += len(delim)

	block := strings.TrimSpace(content[len(delim):end])
	body := strings.TrimSpace(content[end+len(delim):])

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil || raw == nil {
		return nil, content
	}

	return &Header{raw: raw}, body
}

// Description returns the description field and whether it is present.
func (h *Header) Description() (string, bool) {
	v, ok := h.raw["description"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Globs returns the file patterns and whether the field is present.
// A present-but-empty list is returned as an empty slice with ok=true.
func (h *Header) Globs() ([]string, bool) {
	v, ok := h.raw["globs"]
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// AlwaysApply returns the alwaysApply flag and whether it is present.
func (h *Header) AlwaysApply() (bool, bool) {
	v, ok := h.raw["alwaysApply"]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Get returns the raw value of an arbitrary header key.
func (h *Header) Get(key string) (any, bool) {
	v, ok := h.raw[key]
	return v, ok
}

// Fields returns the raw decoded mapping, unknown keys included.
func (h *Header) Fields() map[string]any {
	return h.raw
}
