// Package structdoc generates project-structure.md documents, either
// from a deterministic template or through a model provider with the
// template as fallback.
package structdoc

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/cursorkit/cursorkit/internal/llm"
)

//go:embed structure.tmpl.md
var structureTemplate string

var tmpl = template.Must(template.New("structure").Parse(structureTemplate))

// Generation modes reported in Result.Mode.
const (
	ModeTemplate = "template"
	ModeLLM      = "llm"
)

// Request describes the project to document.
type Request struct {
	ProjectName       string
	TechStack         []string
	MainFiles         string
	ArchitectureNotes string

	// Provider selects model-backed generation. Empty means
	// template mode.
	Provider llm.Provider
}

// Result is a generated document plus how it was produced. When an
// LLM attempt failed and the template took over, FallbackReason says
// why; the attempt is never retried.
type Result struct {
	Content        string `json:"content"`
	Mode           string `json:"mode"`
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// Generator produces structure documents.
type Generator struct {
	cfg       llm.Config
	newClient func(llm.Provider, llm.Config) (llm.Client, error)
}

// NewGenerator returns a generator using the given provider settings.
func NewGenerator(cfg llm.Config) *Generator {
	return &Generator{cfg: cfg, newClient: llm.New}
}

// Generate produces a document for req. With no provider set it runs
// the template directly. With a provider it makes exactly one model
// attempt; any failure falls back to the template with the reason
// recorded.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	if req.Provider == "" {
		return Result{Content: Template(req), Mode: ModeTemplate}
	}

	client, err := g.newClient(req.Provider, g.cfg)
	if err != nil {
		return Result{Content: Template(req), Mode: ModeTemplate, FallbackReason: err.Error()}
	}
	out, err := client.Generate(ctx, Prompt(req))
	if err != nil {
		return Result{Content: Template(req), Mode: ModeTemplate, FallbackReason: err.Error()}
	}
	if strings.TrimSpace(out) == "" {
		return Result{Content: Template(req), Mode: ModeTemplate, FallbackReason: "provider returned empty output"}
	}
	return Result{Content: out, Mode: ModeLLM}
}

type templateFields struct {
	Description     string
	ProjectName     string
	Overview        string
	DirectoryTree   string
	Architecture    string
	Technologies    string
	RunInstructions string
	EnvVars         string
}

// Template renders the deterministic document for req. Empty inputs
// get placeholder sections so the output is always a complete,
// editable file.
func Template(req Request) string {
	overview := "A project built with various technologies."
	if len(req.TechStack) > 0 {
		overview = fmt.Sprintf("A project built with %s.", strings.Join(req.TechStack, ", "))
	}

	tree := req.MainFiles
	if tree == "" {
		tree = "src/\n├── main.py\n└── utils.py"
	}

	arch := req.ArchitectureNotes
	if arch == "" {
		arch = "Describe your architecture here."
	}

	tech := "- Not specified"
	if len(req.TechStack) > 0 {
		lines := make([]string, len(req.TechStack))
		for i, t := range req.TechStack {
			lines[i] = fmt.Sprintf("- **%s**", t)
		}
		tech = strings.Join(lines, "\n")
	}

	var b strings.Builder
	// The template has no dynamic failure modes, so Execute cannot
	// error here.
	_ = tmpl.Execute(&b, templateFields{
		Description:     fmt.Sprintf("Project structure and architecture overview for %s", req.ProjectName),
		ProjectName:     req.ProjectName,
		Overview:        overview,
		DirectoryTree:   tree,
		Architecture:    arch,
		Technologies:    tech,
		RunInstructions: "```bash\n# Add your run instructions here\n```",
		EnvVars:         "- Add your environment variables here",
	})
	return b.String()
}

// Prompt builds the model instruction for req.
func Prompt(req Request) string {
	return fmt.Sprintf(`You are an expert at documenting software projects. Generate a comprehensive project-structure.md file for a Cursor Rules configuration.

Project Details:
- Project Name: %s
- Tech Stack: %s
- Main Files/Directories: %s
- Architecture Notes: %s

Generate a well-structured markdown document that includes:
1. YAML frontmatter with description, globs: [], and alwaysApply: true
2. Clear overview of the project
3. Directory layout in tree format
4. Architecture explanation
5. Key technologies section
6. Running instructions
7. Environment variables (if applicable)

The output should be a complete, ready-to-use project-structure.md file.
Use proper markdown formatting with headers, code blocks, and lists.

Output ONLY the markdown content, no explanations before or after.`,
		req.ProjectName,
		strings.Join(req.TechStack, ", "),
		req.MainFiles,
		req.ArchitectureNotes,
	)
}
