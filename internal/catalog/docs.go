package catalog

import "strings"

// ComparisonRow is one aspect of the Rules-vs-Commands comparison.
type ComparisonRow struct {
	Aspect   string `json:"aspect"`
	Rules    string `json:"rules"`
	Commands string `json:"commands"`
}

var comparisonRows = []ComparisonRow{
	{"Purpose", "Provide persistent context/guidance to Cursor AI", "Execute specific actions on demand"},
	{"Location", ".cursor/rules/", ".cursor/commands/"},
	{"Triggered By", "File patterns (globs) or alwaysApply flag", "/slash-command in Cursor chat"},
	{"Format", "Markdown with YAML frontmatter", "Plain markdown with instructions"},
	{"Invocation", "Automatic (based on file patterns or alwaysApply)", "Manual (user types /command-name)"},
	{"Scope", "Project-wide context that persists across sessions", "Single action triggered by user"},
	{"Use Cases", "Coding standards, Project structure, Architecture guidelines", "Code reviews, Start/stop services, Generate boilerplate"},
}

// ComparisonRows returns the Rules-vs-Commands comparison data.
func ComparisonRows() []ComparisonRow {
	return clone(comparisonRows)
}

// ComparisonTable returns the comparison rendered as a Markdown table.
func ComparisonTable() string {
	lines := []string{
		"| Aspect | Rules | Commands |",
		"|--------|-------|----------|",
		"| **Purpose** | Provide persistent context/guidance | Execute specific actions on demand |",
		"| **Location** | `.cursor/rules/` | `.cursor/commands/` |",
		"| **Triggered By** | File patterns (globs) or `alwaysApply` | `/slash-command` in chat |",
		"| **Format** | Markdown + YAML frontmatter | Plain markdown |",
		"| **Invocation** | Automatic | Manual |",
		"| **Scope** | Project-wide persistent context | Single action |",
		"| **Use Cases** | Coding standards, architecture docs | Code reviews, generators |",
	}
	return strings.Join(lines, "\n")
}

// FrontmatterField documents one recognized frontmatter key.
type FrontmatterField struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

var frontmatterFields = []FrontmatterField{
	{
		Field:       "description",
		Type:        "string",
		Description: "A brief summary of what this rule does. Shown in the Cursor UI when browsing rules. Also used by the AI agent to decide whether to include the rule when activation is set to 'Agent Decision'.",
		Example:     "description: \"Coding standards for Python files\"",
	},
	{
		Field:       "globs",
		Type:        "array of strings",
		Description: "File patterns that trigger this rule. When you open a file matching these patterns, the rule is automatically included in the AI context.",
		Example:     "globs:\n  - \"**/*.py\"\n  - \"src/**/*.ts\"",
	},
	{
		Field:       "alwaysApply",
		Type:        "boolean",
		Description: "If true, this rule is always included in the AI context regardless of which files are open. Useful for project-wide guidelines. Keep these minimal to preserve context space.",
		Example:     "alwaysApply: true",
	},
}

// FrontmatterFields returns documentation for the recognized header keys.
func FrontmatterFields() []FrontmatterField {
	return clone(frontmatterFields)
}

// ActivationMode describes one way a rule can be triggered.
type ActivationMode struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Trigger     string `json:"trigger"`
	Description string `json:"description"`
	BestFor     string `json:"best_for"`
}

var activationModes = []ActivationMode{
	{"always", "Always Active", "alwaysApply: true", "Rule is always included in every AI interaction. Use sparingly for essential project-wide context.", "Project structure, core conventions"},
	{"glob", "Auto-Attached (Glob)", "globs: [\"**/*.ts\"]", "Rule automatically applies when files matching the pattern are referenced or open.", "Language/framework-specific rules"},
	{"manual", "Manual (@mention)", "@rule-name in chat", "User explicitly includes the rule by typing @rule-name in Cmd-K or chat.", "Specialized rules needed occasionally"},
	{"agent", "Agent Decision", "description field + no globs/alwaysApply", "AI decides whether to include the rule based on the description and current task.", "Context-dependent guidelines"},
}

// ActivationModes returns the four rule activation modes.
func ActivationModes() []ActivationMode {
	return clone(activationModes)
}

// RuleType describes where a category of rules lives and how it is shared.
type RuleType struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

var ruleTypes = []RuleType{
	{"project", "Project Rules", ".cursor/rules/", "Version-controlled rules scoped to your codebase. Shared with team via git."},
	{"user", "User Rules", "Cursor Settings > Rules for AI", "Global personal rules that apply to all your projects. Not version-controlled."},
	{"team", "Team Rules", "Cursor Dashboard (Team/Enterprise)", "Organization-wide rules managed from the Cursor dashboard. Requires Team or Enterprise plan."},
	{"agents_md", "AGENTS.md", "Project root", "Simple markdown file for project-wide AI guidance. Works with Cursor, GitHub Copilot, and other AI tools."},
}

// RuleTypes returns the rule placement categories.
func RuleTypes() []RuleType {
	return clone(ruleTypes)
}

// Hook documents one lifecycle hook of the Cursor agent loop.
type Hook struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UseCase     string `json:"use_case"`
}

// HooksDoc bundles the hooks overview with the available hooks.
type HooksDoc struct {
	Overview string `json:"overview"`
	Location string `json:"location"`
	Hooks    []Hook `json:"available_hooks"`
	Example  string `json:"example"`
}

var hooksDoc = HooksDoc{
	Overview: "Cursor Hooks allow you to observe, control, and extend the agent loop using custom scripts. They run before or after defined stages of the agent lifecycle.",
	Location: ".cursor/hooks.json",
	Hooks: []Hook{
		{"beforeSubmitPrompt", "Runs when the prompt is first submitted", "Validate or modify prompts before sending"},
		{"beforeShellExecution", "Runs before any shell command executes", "Gate risky commands, add logging"},
		{"beforeMCPExecution", "Runs before MCP (Model Context Protocol) execution", "Control MCP tool access"},
		{"beforeReadFile", "Runs before a file is read", "Scan for sensitive content, access control"},
		{"afterFileEdit", "Runs after a file is edited", "Auto-format, lint, run tests"},
		{"stop", "Runs when the task is completed", "Cleanup, notifications, analytics"},
	},
	Example: "{\n  \"hooks\": {\n    \"afterFileEdit\": {\n      \"command\": \"prettier --write {filePath}\"\n    }\n  }\n}",
}

// Hooks returns the Cursor hooks documentation.
func Hooks() HooksDoc {
	out := hooksDoc
	out.Hooks = clone(hooksDoc.Hooks)
	return out
}

var quickTips = map[string][]string{
	"rules": {
		"Use `alwaysApply: true` for project-wide context that should always be available",
		"Use specific globs like `src/components/**/*.tsx` to target specific file types",
		"Keep rules focused - one rule per concern",
		"Include code examples in rules to guide the AI's style",
	},
	"commands": {
		"Name commands descriptively: `/generate-api-endpoint` not `/gen`",
		"Include clear instructions for what the command should do",
		"Commands are great for repetitive tasks with specific steps",
		"Use commands for actions, rules for context",
	},
	"general": {
		"Rules = Persistent context, Commands = On-demand actions",
		"Test rules by opening a file that matches your glob pattern",
		"Commands appear in chat when you type `/`",
		"You can have multiple rules active at once based on open files",
	},
}

// QuickTips returns tips for a category; unknown categories fall back to
// the general tips.
func QuickTips(category string) []string {
	if tips, ok := quickTips[category]; ok {
		return clone(tips)
	}
	return clone(quickTips["general"])
}
