package catalog

// ExternalResource is a curated link to documentation or community
// material about Cursor rules and commands.
type ExternalResource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type"`  // "Official" or "Community"
	Stars       string `json:"stars,omitempty"` // popularity label, community only
}

var officialResources = []ExternalResource{
	{
		Name:        "Cursor Rules Documentation",
		URL:         "https://docs.cursor.com/context/rules-for-ai",
		Description: "Official Cursor documentation on Rules for AI - the authoritative source for project rules, global rules, and frontmatter syntax.",
		Type:        "Official",
	},
	{
		Name:        "Cursor Commands Documentation",
		URL:         "https://cursor.com/docs/context/commands",
		Description: "Official guide on creating and using custom commands with /slash syntax. Includes team commands for Enterprise users.",
		Type:        "Official",
	},
	{
		Name:        "Cursor Hooks Documentation",
		URL:         "https://cursor.com/docs/agent/hooks",
		Description: "Official guide on lifecycle hooks - run scripts before/after AI operations for formatting, validation, logging.",
		Type:        "Official",
	},
	{
		Name:        "Cursor Quickstart Guide",
		URL:         "https://docs.cursor.com/get-started/quickstart",
		Description: "Getting started with Cursor - covers basic setup and initial configuration.",
		Type:        "Official",
	},
	{
		Name:        "Working with Context",
		URL:         "https://docs.cursor.com/guides/working-with-context",
		Description: "Advanced guide on managing context in Cursor including @symbols, codebase indexing, and ignore files.",
		Type:        "Official",
	},
}

var communityResources = []ExternalResource{
	{
		Name:        "cursor.directory",
		URL:         "https://cursor.directory",
		Description: "Community-curated collection of Cursor rules. Browse, search, and contribute rules for various frameworks and languages.",
		Type:        "Community",
		Stars:       "Popular",
	},
	{
		Name:        "awesome-cursorrules",
		URL:         "https://github.com/PatrickJS/awesome-cursorrules",
		Description: "GitHub repository with curated list of cursor rules for different tech stacks and use cases.",
		Type:        "Community",
		Stars:       "8k+",
	},
	{
		Name:        "AGENTS.md",
		URL:         "https://agentsmd.io/",
		Description: "Open standard for AI agent guidance. Single markdown file that works with Cursor, GitHub Copilot, and other AI tools.",
		Type:        "Community",
		Stars:       "New",
	},
	{
		Name:        "Cursor Forum",
		URL:         "https://forum.cursor.com",
		Description: "Official Cursor community forum for discussions, tips, and rule sharing.",
		Type:        "Community",
	},
}

// Resources returns curated external links filtered by category:
// "official", "community", or "all" (empty means "all"). Unknown
// categories yield nil.
func Resources(category string) map[string][]ExternalResource {
	switch category {
	case "official":
		return map[string][]ExternalResource{"official": clone(officialResources)}
	case "community":
		return map[string][]ExternalResource{"community": clone(communityResources)}
	case "all", "":
		return map[string][]ExternalResource{
			"official":  clone(officialResources),
			"community": clone(communityResources),
		}
	default:
		return nil
	}
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
