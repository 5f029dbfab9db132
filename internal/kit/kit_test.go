package kit

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestContents_Layout(t *testing.T) {
	entries := Contents()
	if len(entries) != 17 {
		t.Fatalf("entries = %d, want 17", len(entries))
	}

	var rules, commands int
	for _, e := range entries {
		if !strings.HasPrefix(e.Path, "cursor-starter-kit/") {
			t.Errorf("entry outside root dir: %s", e.Path)
		}
		switch {
		case strings.HasPrefix(e.Path, "cursor-starter-kit/.cursor/rules/"):
			rules++
		case strings.HasPrefix(e.Path, "cursor-starter-kit/.cursor/commands/"):
			commands++
		}
		if e.Size == 0 {
			t.Errorf("empty entry: %s", e.Path)
		}
	}
	if rules != 5 {
		t.Errorf("rule entries = %d, want 5", rules)
	}
	if commands != 10 {
		t.Errorf("command entries = %d, want 10", commands)
	}

	if entries[0].Path != "cursor-starter-kit/.cursor/rules/cursor-rules.md" {
		t.Errorf("first entry = %s", entries[0].Path)
	}
	last := entries[len(entries)-1]
	if last.Path != "cursor-starter-kit/README.md" {
		t.Errorf("last entry = %s", last.Path)
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	data, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}

	want := Contents()
	if len(zr.File) != len(want) {
		t.Fatalf("archive files = %d, want %d", len(zr.File), len(want))
	}
	for i, f := range zr.File {
		if f.Name != want[i].Path {
			t.Errorf("file[%d] = %s, want %s", i, f.Name, want[i].Path)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != want[i].Content {
			t.Errorf("content mismatch for %s", f.Name)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two builds produced different bytes")
	}
}
