package frontmatter

import (
	"testing"
)

func TestParse_HeaderAndBody(t *testing.T) {
	input := "---\ndescription: \"x\"\nalwaysApply: true\n---\nBODY"
	header, body := Parse(input)
	if header == nil {
		t.Fatal("expected header")
	}
	if d, ok := header.Description(); !ok || d != "x" {
		t.Errorf("description = %q, %v", d, ok)
	}
	if a, ok := header.AlwaysApply(); !ok || !a {
		t.Errorf("alwaysApply = %v, %v", a, ok)
	}
	if body != "BODY" {
		t.Errorf("body = %q, want BODY", body)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	input := "---\ndescription: Coding standards\nglobs:\n  - \"**/*.py\"\n  - \"src/**/*.ts\"\nalwaysApply: false\n---\n\n# Standards\n\nUse tabs."
	header, body := Parse(input)
	if header == nil {
		t.Fatal("expected header")
	}
	globs, ok := header.Globs()
	if !ok || len(globs) != 2 || globs[0] != "**/*.py" || globs[1] != "src/**/*.ts" {
		t.Errorf("globs = %v, %v", globs, ok)
	}
	if body != "# Standards\n\nUse tabs." {
		t.Errorf("body = %q", body)
	}
	// A body alone never re-parses into a header.
	h2, b2 := Parse(body)
	if h2 != nil || b2 != body {
		t.Errorf("reparse of body = %v, %q", h2, b2)
	}
}

func TestParse_NoLeadingMarker(t *testing.T) {
	input := "# Plain command\n\nJust instructions.\n"
	header, body := Parse(input)
	if header != nil {
		t.Errorf("expected nil header, got %v", header.Fields())
	}
	if body != input {
		t.Errorf("body changed: %q", body)
	}
}

func TestParse_UnterminatedMarker(t *testing.T) {
	input := "---\ndescription: never closed\n"
	header, body := Parse(input)
	if header != nil {
		t.Error("expected nil header for unterminated marker")
	}
	if body != input {
		t.Errorf("body changed: %q", body)
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := "---\n: bad: yaml: {{{\n---\nBody\n"
	header, body := Parse(input)
	if header != nil {
		t.Error("expected nil header for invalid YAML")
	}
	if body != input {
		t.Errorf("body changed: %q", body)
	}
}

func TestParse_UnknownKeysPreserved(t *testing.T) {
	input := "---\ndescription: hi\npriority: 3\n---\nbody"
	header, _ := Parse(input)
	if header == nil {
		t.Fatal("expected header")
	}
	if v, ok := header.Get("priority"); !ok || v != 3 {
		t.Errorf("priority = %v, %v", v, ok)
	}
}

func TestAnnotate_AllFieldsInOrder(t *testing.T) {
	input := "---\nalwaysApply: true\nglobs:\n  - \"**/*.go\"\ndescription: Go rules\n---\nbody"
	anns := Annotate(input)
	if len(anns) != 3 {
		t.Fatalf("len = %d, want 3", len(anns))
	}
	wantOrder := []string{"description", "globs", "alwaysApply"}
	for i, field := range wantOrder {
		if anns[i].Field != field {
			t.Errorf("anns[%d].Field = %q, want %q", i, anns[i].Field, field)
		}
		if anns[i].Explanation == "" {
			t.Errorf("anns[%d] has empty explanation", i)
		}
	}
	if anns[0].Value != "Go rules" {
		t.Errorf("description value = %v", anns[0].Value)
	}
}

func TestAnnotate_PartialAndAbsent(t *testing.T) {
	anns := Annotate("---\ndescription: only this\n---\nbody")
	if len(anns) != 1 || anns[0].Field != "description" {
		t.Errorf("anns = %v", anns)
	}
	if got := Annotate("no header here"); got != nil {
		t.Errorf("expected nil for headerless doc, got %v", got)
	}
}

func TestAnnotate_UnrecognizedKeysIgnored(t *testing.T) {
	anns := Annotate("---\nowner: alice\nglobs: []\n---\nbody")
	if len(anns) != 1 || anns[0].Field != "globs" {
		t.Errorf("anns = %v", anns)
	}
}
