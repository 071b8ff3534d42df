package validate

import (
	"github.com/goliatone/go-uitree/pkg/tree"
)

// Pass is one validation round: it inspects the tree, applies the repairs
// its issue classes define, and reports every issue it saw. A pass never
// loops; composing passes in order is the whole retry budget.
type Pass interface {
	Name() string
	Run(t *tree.UITree) []tree.Issue
}

// Pipeline composes the three rounds in their fixed order.
type Pipeline struct {
	passes []Pass
}

// NewPipeline builds the standard schema → field → structure pipeline backed
// by the given catalog.
func NewPipeline(cat Catalog) *Pipeline {
	return &Pipeline{passes: []Pass{
		NewSchemaPass(cat),
		NewFieldPass(cat),
		NewStructurePass(),
	}}
}

// Passes returns the composed passes in execution order.
func (p *Pipeline) Passes() []Pass {
	return p.passes
}

// Run executes every round in sequence and concatenates their issues. When a
// round reports a fatal issue the remaining rounds are skipped: there is no
// safe repair to hand them.
func (p *Pipeline) Run(t *tree.UITree) []tree.Issue {
	var issues []tree.Issue
	for _, pass := range p.passes {
		found := pass.Run(t)
		issues = append(issues, found...)
		if tree.HasFatal(found) {
			break
		}
	}
	return issues
}

// Verify re-runs the structural round against a copy of the repaired tree
// and reports any defect that survived repair, ignoring warning-only codes
// (orphans are retained on purpose and would re-report forever). A non-empty
// return means the one-rewrite budget is exhausted and the caller should
// fall back at the whole-tree level.
func Verify(t *tree.UITree) []tree.Issue {
	check := t.Clone()
	var residual []tree.Issue
	for _, issue := range NewStructurePass().Run(check) {
		switch issue.Code {
		case tree.CodeOrphan, tree.CodeUnsupportedChildren:
			continue
		default:
			residual = append(residual, issue)
		}
	}
	return residual
}
