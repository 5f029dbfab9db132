package catalog

import (
	"strings"
	"testing"

	"github.com/cursorkit/cursorkit/internal/frontmatter"
)

func TestStarterRules(t *testing.T) {
	rules := StarterRules()
	if len(rules) != 5 {
		t.Fatalf("len = %d, want 5", len(rules))
	}
	if rules[0].Name != "cursor-rules.md" {
		t.Errorf("first rule = %q", rules[0].Name)
	}
	for _, r := range rules {
		if r.Kind != KindRule {
			t.Errorf("%s kind = %q", r.Name, r.Kind)
		}
		if r.Content == "" {
			t.Errorf("%s has empty content", r.Name)
		}
		// Every starter rule carries parseable frontmatter.
		header, _ := frontmatter.Parse(r.Content)
		if header == nil {
			t.Errorf("%s has no parseable header", r.Name)
		}
	}
}

func TestCommands(t *testing.T) {
	cmds := Commands()
	if len(cmds) != 11 {
		t.Fatalf("len = %d, want 11", len(cmds))
	}
	for _, c := range cmds {
		if c.Content == "" {
			t.Errorf("%s has empty content", c.Key)
		}
		// Commands never carry frontmatter.
		if strings.HasPrefix(c.Content, "---") {
			t.Errorf("%s starts with a frontmatter marker", c.Key)
		}
	}
	if _, ok := Command("debug"); !ok {
		t.Error("debug command missing")
	}
	if _, ok := Command("nope"); ok {
		t.Error("unexpected command for unknown key")
	}
}

func TestStarterCommands(t *testing.T) {
	cmds := StarterCommands()
	if len(cmds) != 10 {
		t.Fatalf("len = %d, want 10", len(cmds))
	}
	for _, c := range cmds {
		if c.Kind != KindCommand || c.Content == "" {
			t.Errorf("bad starter command %q", c.Name)
		}
		if c.Name == "sync-docs.md" {
			t.Error("sync-docs must not be in the starter kit")
		}
	}
}

func TestPrompts(t *testing.T) {
	rules := Prompts("rules")
	if len(rules) != 8 {
		t.Errorf("rules prompts = %d, want 8", len(rules))
	}
	cmds := Prompts("commands")
	if len(cmds) != 3 {
		t.Errorf("commands prompts = %d, want 3", len(cmds))
	}
	for _, p := range append(rules, cmds...) {
		if p.Prompt == "" || p.OutputFile == "" {
			t.Errorf("incomplete prompt %q", p.Name)
		}
	}
	// Handlers rely on nil (not an empty slice) to reject the category.
	if got := Prompts("unknown"); got != nil {
		t.Errorf("unknown category = %#v, want nil", got)
	}
}

func TestResources(t *testing.T) {
	all := Resources("all")
	if len(all["official"]) != 5 || len(all["community"]) != 4 {
		t.Errorf("official = %d, community = %d", len(all["official"]), len(all["community"]))
	}
	official := Resources("official")
	if _, ok := official["community"]; ok {
		t.Error("official filter leaked community resources")
	}
	if got := Resources(""); len(got) != 2 {
		t.Errorf("empty category = %d keys, want both", len(got))
	}
	if got := Resources("unknown"); got != nil {
		t.Errorf("unknown category = %#v, want nil", got)
	}
}

func TestCommunityRules(t *testing.T) {
	rules := CommunityRules()
	if len(rules) != 5 {
		t.Fatalf("len = %d, want 5", len(rules))
	}
	r, ok := CommunityRuleByTech("go")
	if !ok {
		t.Fatal("go example missing")
	}
	header, _ := frontmatter.Parse(r.Content)
	if header == nil {
		t.Error("community rule has no header")
	}
}

func TestComparisonAndDocs(t *testing.T) {
	if len(ComparisonRows()) != 7 {
		t.Errorf("comparison rows = %d, want 7", len(ComparisonRows()))
	}
	if !strings.HasPrefix(ComparisonTable(), "| Aspect | Rules | Commands |") {
		t.Errorf("unexpected table header: %q", ComparisonTable()[:40])
	}
	if len(FrontmatterFields()) != 3 {
		t.Error("expected 3 frontmatter fields")
	}
	if len(ActivationModes()) != 4 {
		t.Error("expected 4 activation modes")
	}
	if len(RuleTypes()) != 4 {
		t.Error("expected 4 rule types")
	}
	if len(Hooks().Hooks) != 6 {
		t.Error("expected 6 hooks")
	}
	if len(QuickTips("nope")) != 4 {
		t.Error("unknown tips category should fall back to general")
	}
}
