package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const statCardYAML = `
components:
  - type: StatCard
    category: display
    description: Headline number with a label
    props:
      title: {required: true, kind: string, default: ""}
      value: {kind: number, default: 0}
      trend: {kind: string, default: "flat"}
  - type: Markdown
    category: display
    props:
      content: {required: true, kind: string, default: ""}
`

func TestLoadYAML(t *testing.T) {
	reg, err := LoadYAML(strings.NewReader(statCardYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}

	schema, ok := reg.Lookup("StatCard")
	if !ok {
		t.Fatal("StatCard not registered")
	}
	if schema.Category != CategoryDisplay {
		t.Errorf("category = %s, want %s", schema.Category, CategoryDisplay)
	}
	if diff := cmp.Diff([]string{"title"}, schema.RequiredProps()); diff != "" {
		t.Errorf("required props mismatch (-want +got):\n%s", diff)
	}

	// built-ins survive the merge
	if !reg.Has("Card") {
		t.Error("built-in Card lost after merge")
	}

	// overrides replace built-ins
	markdown, _ := reg.Lookup("Markdown")
	if diff := cmp.Diff([]string{"content"}, markdown.RequiredProps()); diff != "" {
		t.Errorf("Markdown override not applied (-want +got):\n%s", diff)
	}
}

func TestLoadYAMLRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty components", "components: []"},
		{"unknown field", "widgets:\n  - type: X"},
		{"missing type", "components:\n  - category: display"},
		{"bad kind", "components:\n  - type: X\n    props:\n      v: {kind: decimal}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadYAML(strings.NewReader(tc.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
