package tree

import "sort"

// Element is a single renderable node. Props carry schema-defined values per
// component type; Children holds the ordered ids of nested elements and stays
// empty for non-container types. An element belongs to exactly one tree.
type Element struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Props    map[string]any `json:"props,omitempty"`
	Children []string       `json:"children,omitempty"`
}

// Clone returns a deep copy of the element. Prop values are copied one level
// deep for maps and slices, which covers every shape the mapper produces.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{ID: e.ID, Type: e.Type}
	if e.Props != nil {
		out.Props = make(map[string]any, len(e.Props))
		for k, v := range e.Props {
			out.Props[k] = cloneValue(v)
		}
	}
	if e.Children != nil {
		out.Children = append([]string(nil), e.Children...)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, nested := range val {
			m[k] = cloneValue(nested)
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, nested := range val {
			s[i] = cloneValue(nested)
		}
		return s
	default:
		return v
	}
}

// UITree is the rooted, id-addressed graph of elements. When valid, Root is a
// key of Elements, every child reference resolves, the reachable subgraph is
// acyclic, and every element passes catalog validation.
type UITree struct {
	Root     string              `json:"root"`
	Elements map[string]*Element `json:"elements"`
	Metadata *Metadata           `json:"metadata,omitempty"`
}

// Element returns the element for id, or nil when absent.
func (t *UITree) Element(id string) *Element {
	if t == nil || t.Elements == nil {
		return nil
	}
	return t.Elements[id]
}

// IDs returns all element ids in lexical order. Sorting keeps validation
// passes deterministic across runs despite map iteration order.
func (t *UITree) IDs() []string {
	if t == nil || len(t.Elements) == 0 {
		return nil
	}
	ids := make([]string, 0, len(t.Elements))
	for id := range t.Elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the tree, metadata included.
func (t *UITree) Clone() *UITree {
	if t == nil {
		return nil
	}
	out := &UITree{Root: t.Root}
	if t.Elements != nil {
		out.Elements = make(map[string]*Element, len(t.Elements))
		for id, elem := range t.Elements {
			out.Elements[id] = elem.Clone()
		}
	}
	if t.Metadata != nil {
		meta := *t.Metadata
		meta.Errors = append([]Issue(nil), t.Metadata.Errors...)
		meta.Warnings = append([]Issue(nil), t.Metadata.Warnings...)
		out.Metadata = &meta
	}
	return out
}

// Reachable returns the set of ids reachable from the root via children
// edges. Dangling references are skipped rather than followed.
func (t *UITree) Reachable() map[string]bool {
	reachable := make(map[string]bool)
	if t == nil || t.Elements == nil {
		return reachable
	}
	stack := []string{t.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[id] {
			continue
		}
		elem, ok := t.Elements[id]
		if !ok {
			continue
		}
		reachable[id] = true
		for i := len(elem.Children) - 1; i >= 0; i-- {
			stack = append(stack, elem.Children[i])
		}
	}
	return reachable
}
