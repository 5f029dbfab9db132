package catalog

// GenericCommand is a ready-to-use slash command that works in any
// project. The key doubles as the invocation token (/key in Cursor chat).
type GenericCommand struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type commandMeta struct {
	key, name, description string
}

// Catalog order matches the order commands are presented in.
var commandMetas = []commandMeta{
	{"code-review-checklist", "Code Review Checklist", "Comprehensive checklist for thorough code reviews"},
	{"write-tests", "Write Tests", "Generate comprehensive tests for selected code"},
	{"security-audit", "Security Audit", "Comprehensive security review of the codebase"},
	{"create-pr", "Create PR Description", "Generate a well-structured pull request description"},
	{"debug", "Debug Assistant", "Systematic debugging help for issues"},
	{"refactor", "Refactor Suggestions", "Analyze code and suggest refactoring improvements"},
	{"document", "Generate Documentation", "Generate documentation for code"},
	{"explain", "Explain Code", "Get a detailed explanation of complex code"},
	{"optimize", "Optimize Performance", "Analyze and suggest performance optimizations"},
	{"commit", "Generate Commit Message", "Generate a conventional commit message"},
	{"sync-docs", "Sync Documentation", "Update README.md and project-structure.md together"},
}

// The ten commands bundled into the starter kit, in kit order.
// sync-docs is catalog-only: it references files the kit user may not have yet.
var starterCommandKeys = []string{
	"code-review-checklist",
	"write-tests",
	"debug",
	"explain",
	"refactor",
	"security-audit",
	"commit",
	"create-pr",
	"document",
	"optimize",
}

var (
	genericCommands []GenericCommand
	commandsByKey   = map[string]GenericCommand{}
)

func init() {
	for _, m := range commandMetas {
		cmd := GenericCommand{
			Key:         m.key,
			Name:        m.name,
			Description: m.description,
			Content:     mustRead("content/commands/" + m.key + ".md"),
		}
		genericCommands = append(genericCommands, cmd)
		commandsByKey[m.key] = cmd
	}
}

// Commands returns every generic command in catalog order.
func Commands() []GenericCommand {
	out := make([]GenericCommand, len(genericCommands))
	copy(out, genericCommands)
	return out
}

// Command looks up a generic command by its key.
func Command(key string) (GenericCommand, bool) {
	cmd, ok := commandsByKey[key]
	return cmd, ok
}

// StarterCommands returns the ten command documents bundled into the
// starter kit, in kit order.
func StarterCommands() []Document {
	out := make([]Document, 0, len(starterCommandKeys))
	for _, key := range starterCommandKeys {
		cmd := commandsByKey[key]
		out = append(out, Document{
			Name:    key + ".md",
			Kind:    KindCommand,
			Content: cmd.Content,
		})
	}
	return out
}
