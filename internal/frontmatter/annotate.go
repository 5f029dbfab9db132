package frontmatter

// Annotation explains one recognized header field of a document.
type Annotation struct {
	Field       string `json:"field"`
	Value       any    `json:"value"`
	Explanation string `json:"explanation"`
}

// Fixed explanation strings, one per recognized field.
const (
	descriptionExplanation = "Brief summary shown in Cursor's UI when browsing rules"
	globsExplanation       = "File patterns that trigger this rule (e.g., **/*.py matches all Python files)"
	alwaysApplyExplanation = "When true, rule is always active regardless of open files"
)

// Annotate parses content and returns one annotation per recognized
// header field present, in the fixed order description, globs,
// alwaysApply. Documents without a header produce no annotations, and
// unrecognized header keys are skipped.
func Annotate(content string) []Annotation {
	header, _ := Parse(content)
	if header == nil {
		return nil
	}

	var out []Annotation
	if v, ok := header.Get("description"); ok {
		out = append(out, Annotation{Field: "description", Value: v, Explanation: descriptionExplanation})
	}
	if v, ok := header.Get("globs"); ok {
		out = append(out, Annotation{Field: "globs", Value: v, Explanation: globsExplanation})
	}
	if v, ok := header.Get("alwaysApply"); ok {
		out = append(out, Annotation{Field: "alwaysApply", Value: v, Explanation: alwaysApplyExplanation})
	}
	return out
}
