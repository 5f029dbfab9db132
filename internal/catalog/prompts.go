package catalog

// PromptTemplate is a copy-paste prompt for generating a project-specific
// rule or command with Cursor's own AI.
type PromptTemplate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	OutputFile  string `json:"output_file"`
}

type promptMeta struct {
	stem, name, description, outputFile string
}

var rulePromptMetas = []promptMeta{
	{"project-structure", "Project Structure Rule", "Generate a rule documenting your project's directory structure", ".cursor/rules/project-structure.md"},
	{"coding-standards", "Coding Standards Rule", "Generate coding standards based on your existing codebase", ".cursor/rules/coding-standards.md"},
	{"tech-stack", "Tech Stack Guidelines", "Generate guidelines specific to your tech stack", ".cursor/rules/tech-stack.md"},
	{"api-conventions", "API Design Rule", "Document API patterns and conventions", ".cursor/rules/api-conventions.md"},
	{"testing-conventions", "Testing Conventions Rule", "Document testing patterns and requirements", ".cursor/rules/testing-conventions.md"},
	{"data-models", "Database & Models Rule", "Document data models and database patterns", ".cursor/rules/data-models.md"},
	{"component-architecture", "Component Architecture Rule", "Document UI component patterns (for frontend projects)", ".cursor/rules/component-architecture.md"},
	{"rule-self-improvement", "Rule Self-Improvement", "Generate a meta-rule that keeps your rules evolving with your codebase", ".cursor/rules/rule-self-improvement.md"},
}

var commandPromptMetas = []promptMeta{
	{"review", "Custom Code Review", "Generate a code review command tailored to your project", ".cursor/commands/review.md"},
	{"write-tests", "Project-Specific Test Generator", "Generate a test writing command matching your test patterns", ".cursor/commands/write-tests.md"},
	{"new-feature", "Feature Setup Command", "Generate a feature scaffolding command for your project", ".cursor/commands/new-feature.md"},
}

var promptsByCategory = map[string][]PromptTemplate{}

func init() {
	load := func(category string, metas []promptMeta) {
		var out []PromptTemplate
		for _, m := range metas {
			out = append(out, PromptTemplate{
				Name:        m.name,
				Description: m.description,
				Prompt:      mustRead("content/prompts/" + category + "/" + m.stem + ".md"),
				OutputFile:  m.outputFile,
			})
		}
		promptsByCategory[category] = out
	}
	load("rules", rulePromptMetas)
	load("commands", commandPromptMetas)
}

// Prompts returns the prompt templates for a category ("rules" or
// "commands"). Unknown categories yield nil.
func Prompts(category string) []PromptTemplate {
	src, ok := promptsByCategory[category]
	if !ok {
		return nil
	}
	return clone(src)
}
