package validate

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/tree"
)

// Catalog is the read-only component whitelist view the passes consume.
// *catalog.Registry satisfies it.
type Catalog interface {
	Lookup(componentType string) (catalog.Schema, bool)
	Types() []string
}

// suggestionMaxDistance bounds how far a "did you mean" candidate may be
// from the unknown type name.
const suggestionMaxDistance = 3

// SchemaPass is round 1: the component type whitelist check. Unknown types
// are rewritten to the fallback type for their classified category while
// props and children are preserved verbatim; round 2 re-checks the props
// against the new type's schema.
type SchemaPass struct {
	catalog Catalog
}

// NewSchemaPass builds the round-1 pass.
func NewSchemaPass(cat Catalog) *SchemaPass {
	return &SchemaPass{catalog: cat}
}

// Name identifies the pass in logs.
func (p *SchemaPass) Name() string { return "schema" }

// Run rewrites every unknown-typed element and reports one UNKNOWN_TYPE
// issue per affected element, recording both the original and the
// replacement type.
func (p *SchemaPass) Run(t *tree.UITree) []tree.Issue {
	if t == nil || len(t.Elements) == 0 {
		return nil
	}
	var issues []tree.Issue
	for _, id := range t.IDs() {
		elem := t.Elements[id]
		if _, known := p.catalog.Lookup(elem.Type); known {
			continue
		}
		replacement := catalog.FallbackForUnknown(elem.Type)
		message := fmt.Sprintf("unknown component type %q, replaced with %q", elem.Type, replacement)
		if suggestion := p.closestKnown(elem.Type); suggestion != "" && suggestion != replacement {
			message += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		issues = append(issues, tree.Issue{
			Code:      tree.CodeUnknownType,
			ElementID: id,
			Message:   message,
		})
		elem.Type = replacement
	}
	return issues
}

// closestKnown returns the whitelisted type nearest to the unknown name, or
// empty when nothing is close enough to be a plausible typo.
func (p *SchemaPass) closestKnown(unknown string) string {
	if unknown == "" {
		return ""
	}
	best := ""
	bestDistance := suggestionMaxDistance + 1
	for _, known := range p.catalog.Types() {
		distance := levenshtein.ComputeDistance(unknown, known)
		if distance < bestDistance {
			best = known
			bestDistance = distance
		}
	}
	return best
}
