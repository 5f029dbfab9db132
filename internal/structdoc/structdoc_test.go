package structdoc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cursorkit/cursorkit/internal/frontmatter"
	"github.com/cursorkit/cursorkit/internal/llm"
)

func TestTemplate_FullInputs(t *testing.T) {
	out := Template(Request{
		ProjectName:       "acme-api",
		TechStack:         []string{"Go", "PostgreSQL"},
		MainFiles:         "cmd/\ninternal/",
		ArchitectureNotes: "Layered service.",
	})

	header, body := frontmatter.Parse(out)
	if header == nil {
		t.Fatal("output has no parseable frontmatter")
	}
	desc, _ := header.Description()
	if desc != "Project structure and architecture overview for acme-api" {
		t.Errorf("description = %q", desc)
	}
	always, ok := header.AlwaysApply()
	if !ok || !always {
		t.Errorf("alwaysApply = %v, %v", always, ok)
	}

	for _, want := range []string{
		"# Project Structure: acme-api",
		"A project built with Go, PostgreSQL.",
		"cmd/\ninternal/",
		"Layered service.",
		"- **Go**\n- **PostgreSQL**",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestTemplate_EmptyInputsGetPlaceholders(t *testing.T) {
	out := Template(Request{ProjectName: "bare"})

	for _, want := range []string{
		"A project built with various technologies.",
		"src/\n├── main.py\n└── utils.py",
		"Describe your architecture here.",
		"- Not specified",
		"# Add your run instructions here",
		"- Add your environment variables here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing placeholder %q", want)
		}
	}
}

func TestTemplate_Deterministic(t *testing.T) {
	req := Request{ProjectName: "x", TechStack: []string{"Go"}}
	if Template(req) != Template(req) {
		t.Error("same request produced different output")
	}
}

func TestGenerate_NoProviderUsesTemplate(t *testing.T) {
	g := NewGenerator(llm.Config{})
	res := g.Generate(context.Background(), Request{ProjectName: "p"})
	if res.Mode != ModeTemplate {
		t.Errorf("mode = %q", res.Mode)
	}
	if res.FallbackReason != "" {
		t.Errorf("unexpected fallback reason %q", res.FallbackReason)
	}
	if !strings.Contains(res.Content, "# Project Structure: p") {
		t.Error("template content missing")
	}
}

func TestGenerate_MissingKeyFallsBack(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	g := NewGenerator(llm.Config{})
	res := g.Generate(context.Background(), Request{ProjectName: "p", Provider: llm.ProviderOpenAI})
	if res.Mode != ModeTemplate {
		t.Errorf("mode = %q", res.Mode)
	}
	if res.FallbackReason == "" {
		t.Error("fallback reason not surfaced")
	}
	if !strings.Contains(res.Content, "# Project Structure: p") {
		t.Error("fallback content is not the template")
	}
}

func TestGenerate_ProviderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "# Model Output"}},
			},
		})
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "sk-test")
	g := NewGenerator(llm.Config{OpenAIBaseURL: srv.URL})
	res := g.Generate(context.Background(), Request{ProjectName: "p", Provider: llm.ProviderOpenAI})
	if res.Mode != ModeLLM {
		t.Errorf("mode = %q (reason %q)", res.Mode, res.FallbackReason)
	}
	if res.Content != "# Model Output" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestGenerate_ProviderFailureFallsBackOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("OPENAI_API_KEY", "sk-test")
	g := NewGenerator(llm.Config{OpenAIBaseURL: srv.URL})
	res := g.Generate(context.Background(), Request{ProjectName: "p", Provider: llm.ProviderOpenAI})
	if res.Mode != ModeTemplate {
		t.Errorf("mode = %q", res.Mode)
	}
	if res.FallbackReason == "" {
		t.Error("fallback reason not surfaced")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("provider called %d times, want exactly 1", n)
	}
}

func TestPrompt_IncludesAllFields(t *testing.T) {
	p := Prompt(Request{
		ProjectName:       "acme",
		TechStack:         []string{"Go", "Redis"},
		MainFiles:         "cmd/",
		ArchitectureNotes: "event driven",
	})
	for _, want := range []string{"acme", "Go, Redis", "cmd/", "event driven", "alwaysApply: true"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
