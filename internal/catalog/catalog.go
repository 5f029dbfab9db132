// Package catalog holds the built-in content registries: starter-kit
// documents, generic commands, prompt templates, community rule examples,
// external resources, and the Rules-vs-Commands reference tables.
//
// Everything here is immutable after package initialization. Document
// bodies live as embedded Markdown files under content/ so they stay
// readable and diffable.
package catalog

import (
	"embed"
	"fmt"
)

//go:embed content
var contentFS embed.FS

// Kind distinguishes the two document variants.
type Kind string

const (
	// KindRule documents may carry YAML frontmatter and live under
	// .cursor/rules/ in a consuming project.
	KindRule Kind = "rule"
	// KindCommand documents are plain Markdown action text under
	// .cursor/commands/.
	KindCommand Kind = "command"
)

// Document is a named unit of text content.
type Document struct {
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
}

// Starter-kit rule documents, in kit order.
var starterRuleNames = []string{
	"cursor-rules.md",
	"project-structure.md",
	"coding-standards.md",
	"git-conventions.md",
	"rule-self-improvement.md",
}

var (
	starterRules []Document
	agentsDoc    Document
	readmeDoc    Document
)

func init() {
	for _, name := range starterRuleNames {
		starterRules = append(starterRules, Document{
			Name:    name,
			Kind:    KindRule,
			Content: mustRead("content/rules/" + name),
		})
	}
	agentsDoc = Document{Name: "AGENTS.md", Kind: KindRule, Content: mustRead("content/AGENTS.md")}
	readmeDoc = Document{Name: "README.md", Kind: KindRule, Content: mustRead("content/README.md")}
}

// StarterRules returns the five starter-kit rule documents in kit order.
func StarterRules() []Document {
	out := make([]Document, len(starterRules))
	copy(out, starterRules)
	return out
}

// AgentsDoc returns the AGENTS.md guidance document.
func AgentsDoc() Document { return agentsDoc }

// ReadmeDoc returns the starter-kit README.
func ReadmeDoc() Document { return readmeDoc }

func mustRead(path string) string {
	data, err := contentFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("catalog: missing embedded file %s: %v", path, err))
	}
	return string(data)
}
