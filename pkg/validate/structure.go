package validate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-uitree/pkg/tree"
)

// StructurePass is round 3: global tree invariants. It operates purely on
// children edges and ignores prop contents. Fatal defects (missing root,
// missing elements, unresolvable root) are reported without repair; dangling
// references are removed and cycles cut at their back-edge.
type StructurePass struct{}

// NewStructurePass builds the round-3 pass.
func NewStructurePass() *StructurePass {
	return &StructurePass{}
}

// Name identifies the pass in logs.
func (p *StructurePass) Name() string { return "structure" }

// Run checks and repairs the tree structure in place.
func (p *StructurePass) Run(t *tree.UITree) []tree.Issue {
	if t == nil || len(t.Elements) == 0 {
		return []tree.Issue{{
			Code:    tree.CodeMissingElements,
			Message: "tree has no elements",
		}}
	}
	if t.Root == "" {
		return []tree.Issue{{
			Code:    tree.CodeMissingRoot,
			Message: "tree has no root element id",
		}}
	}
	if _, ok := t.Elements[t.Root]; !ok {
		return []tree.Issue{{
			Code:    tree.CodeRootNotFound,
			Message: fmt.Sprintf("root element %q not found in elements", t.Root),
		}}
	}

	issues := p.removeDanglingReferences(t)
	issues = append(issues, p.cutCycles(t)...)
	issues = append(issues, p.findOrphans(t)...)
	return issues
}

// removeDanglingReferences drops children ids that resolve to no element,
// preserving the order of the remaining ids. One issue per dangling id,
// attributed to the referencing parent.
func (p *StructurePass) removeDanglingReferences(t *tree.UITree) []tree.Issue {
	var issues []tree.Issue
	for _, id := range t.IDs() {
		elem := t.Elements[id]
		if len(elem.Children) == 0 {
			continue
		}
		kept := elem.Children[:0]
		for _, child := range elem.Children {
			if _, ok := t.Elements[child]; ok {
				kept = append(kept, child)
				continue
			}
			issues = append(issues, tree.Issue{
				Code:      tree.CodeInvalidReference,
				ElementID: id,
				Message:   fmt.Sprintf("child reference %q does not exist, removed", child),
			})
		}
		elem.Children = kept
	}
	return issues
}

// cutCycles walks the tree depth-first from the root with an explicit stack
// and a path-position map, so stack depth stays bounded and cutting can
// resume mid-walk. Revisiting a node on the active path closes a cycle: the
// back-edge is removed from its parent and the walk continues, which finds
// every independent cycle in a single pass.
func (p *StructurePass) cutCycles(t *tree.UITree) []tree.Issue {
	type frame struct {
		id   string
		next int
	}

	var issues []tree.Issue
	stack := []frame{{id: t.Root}}
	onPath := map[string]int{t.Root: 0}
	visited := map[string]bool{t.Root: true}
	path := []string{t.Root}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		elem := t.Elements[top.id]

		if top.next >= len(elem.Children) {
			delete(onPath, top.id)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		child := elem.Children[top.next]
		if pos, ok := onPath[child]; ok {
			cycle := strings.Join(append(append([]string(nil), path[pos:]...), child), " -> ")
			issues = append(issues, tree.Issue{
				Code:    tree.CodeCircularReference,
				Message: fmt.Sprintf("circular reference: %s; edge %s -> %s removed", cycle, top.id, child),
			})
			elem.Children = append(elem.Children[:top.next], elem.Children[top.next+1:]...)
			continue
		}

		top.next++
		if visited[child] {
			continue
		}
		visited[child] = true
		onPath[child] = len(path)
		path = append(path, child)
		stack = append(stack, frame{id: child})
	}
	return issues
}

// findOrphans reports elements unreachable from the root. Orphans are
// retained: removal could lose content and the warning alone never
// escalates the tree status beyond warning.
func (p *StructurePass) findOrphans(t *tree.UITree) []tree.Issue {
	reachable := t.Reachable()
	var issues []tree.Issue
	for _, id := range t.IDs() {
		if reachable[id] {
			continue
		}
		issues = append(issues, tree.Issue{
			Code:      tree.CodeOrphan,
			ElementID: id,
			Message:   fmt.Sprintf("element %q is unreachable from root %q", id, t.Root),
		})
	}
	return issues
}
