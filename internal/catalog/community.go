package catalog

// CommunityRule is a tech-specific rule example collected from community
// best practices.
type CommunityRule struct {
	Tech        string `json:"tech"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Content     string `json:"content"`
}

type communityMeta struct {
	tech, name, description, source string
}

var communityMetas = []communityMeta{
	{"react-typescript", "React + TypeScript", "Best practices for React projects with TypeScript", "cursor.directory"},
	{"python-fastapi", "Python + FastAPI", "Best practices for FastAPI backend projects", "cursor.directory"},
	{"nextjs", "Next.js", "Best practices for Next.js applications", "cursor.directory"},
	{"go", "Go", "Best practices for Go projects", "Community Best Practices"},
	{"rust", "Rust", "Best practices for Rust projects", "Community Best Practices"},
}

var (
	communityRules  []CommunityRule
	communityByTech = map[string]CommunityRule{}
)

func init() {
	for _, m := range communityMetas {
		r := CommunityRule{
			Tech:        m.tech,
			Name:        m.name,
			Description: m.description,
			Source:      m.source,
			Content:     mustRead("content/community/" + m.tech + ".md"),
		}
		communityRules = append(communityRules, r)
		communityByTech[m.tech] = r
	}
}

// CommunityRules returns every community rule example.
func CommunityRules() []CommunityRule {
	return clone(communityRules)
}

// CommunityRuleByTech looks up a community rule example by tech slug.
func CommunityRuleByTech(tech string) (CommunityRule, bool) {
	r, ok := communityByTech[tech]
	return r, ok
}
