// Package fallback implements the whole-tree escape hatch: when a tree has
// fatal defects or exhausts its repair budget, the entire tree is replaced
// by a single Markdown element carrying the best-effort textual extraction
// of the original content. The extraction strips any embedded HTML so the
// degraded output never smuggles markup past the catalog whitelist.
package fallback

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/tree"
)

// FallbackRootID is the fixed id of the replacement element. Keeping it
// constant makes degraded output deterministic and easy to spot downstream.
const FallbackRootID = "fallback_md"

// maxReportedErrors bounds how many validation errors the degraded Markdown
// body lists.
const maxReportedErrors = 5

// textProps are the prop names mined for displayable text, in extraction
// order. Title renders as a heading.
var textProps = []string{"content", "title", "message", "description", "label"}

var (
	policyOnce sync.Once
	textPolicy *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Degrader builds whole-tree Markdown replacements.
type Degrader struct{}

// New constructs a Degrader.
func New() *Degrader {
	return &Degrader{}
}

// Degrade replaces the entire tree with a single Markdown element whose
// content is extracted from the original elements, or from the raw intent
// payload when the tree carried no text, followed by a short validation
// error digest. The original tree is not modified.
func (d *Degrader) Degrade(original *tree.UITree, payload map[string]any, errors []tree.Issue) *tree.UITree {
	parts := d.extractParts(original)
	if len(parts) == 0 {
		if text := ExtractPayload(payload); text != "" {
			parts = append(parts, text)
		}
	}

	if len(errors) > 0 {
		parts = append(parts, "---\n**Validation errors:**")
		for i, issue := range errors {
			if i == maxReportedErrors {
				parts = append(parts, fmt.Sprintf("- and %d more", len(errors)-maxReportedErrors))
				break
			}
			parts = append(parts, "- "+issue.Message)
		}
	}

	content := strings.Join(parts, "\n\n")
	if content == "" {
		content = "Content generation failed"
	}

	return &tree.UITree{
		Root: FallbackRootID,
		Elements: map[string]*tree.Element{
			FallbackRootID: {
				ID:    FallbackRootID,
				Type:  catalog.TypeMarkdown,
				Props: map[string]any{"content": content},
			},
		},
	}
}

// extractParts walks the original elements root-first, then the remaining
// ids in lexical order, collecting plain-text props in the order
// encountered.
func (d *Degrader) extractParts(t *tree.UITree) []string {
	if t == nil || len(t.Elements) == 0 {
		return nil
	}

	var parts []string
	seen := map[string]bool{}
	appendElement := func(elem *tree.Element) {
		if elem == nil || seen[elem.ID] {
			return
		}
		seen[elem.ID] = true
		parts = append(parts, extractText(elem.Props)...)
	}

	// Root subtree first, in document order.
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		if depth > len(t.Elements) {
			return
		}
		elem, ok := t.Elements[id]
		if !ok || seen[id] {
			return
		}
		appendElement(elem)
		for _, child := range elem.Children {
			walk(child, depth+1)
		}
	}
	walk(t.Root, 0)

	for _, id := range t.IDs() {
		appendElement(t.Elements[id])
	}
	return parts
}

// extractText pulls displayable strings out of a prop map, sanitizing any
// HTML. Titles become level-2 headings to preserve some structure.
func extractText(props map[string]any) []string {
	if len(props) == 0 {
		return nil
	}
	var out []string
	for _, name := range textProps {
		raw, ok := props[name].(string)
		if !ok {
			continue
		}
		text := strings.TrimSpace(sanitizer().Sanitize(raw))
		if text == "" {
			continue
		}
		if name == "title" {
			text = "## " + text
		}
		out = append(out, text)
	}
	return out
}

// ExtractPayload mines an arbitrary intent payload for plain-text fields,
// used when no draft tree was ever produced. Nested maps and slices are
// visited depth-first; field order follows the textProps preference then
// remaining string values are ignored to keep output predictable.
func ExtractPayload(payload map[string]any) string {
	if len(payload) == 0 {
		return ""
	}
	var parts []string
	for _, name := range textProps {
		if raw, ok := payload[name].(string); ok {
			if text := strings.TrimSpace(sanitizer().Sanitize(raw)); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}
