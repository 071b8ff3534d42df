package catalog

import "strings"

// Fallback types referenced by the degradation table.
const (
	TypeMarkdown = "Markdown"
	TypeForm     = "Form"
	TypeCard     = "Card"
	TypeWebView  = "WebView"
)

// categoryFallback is the total category → known-type mapping used when an
// element must be rewritten. An explicit map keeps the policy auditable.
var categoryFallback = map[Category]string{
	CategoryDisplay:  TypeMarkdown,
	CategoryCard:     TypeCard,
	CategoryForm:     TypeForm,
	CategoryMedia:    TypeCard,
	CategoryFeedback: TypeCard,
	CategoryLayout:   TypeCard,
	CategoryEmbed:    TypeWebView,
	CategoryOther:    TypeCard,
}

// FallbackForCategory resolves the designated fallback type for a category.
func FallbackForCategory(category Category) string {
	if fallback, ok := categoryFallback[category]; ok {
		return fallback
	}
	return TypeCard
}

// Fallback returns the fallback type for a whitelisted component. Unknown
// types fall back to Card.
func (r *Registry) Fallback(componentType string) string {
	schema, ok := r.Lookup(componentType)
	if !ok {
		return TypeCard
	}
	return FallbackForCategory(schema.Category)
}

// categoryHints classifies unknown type names into a coarse intended
// category by substring. Checked in order; first match wins.
var categoryHints = []struct {
	category Category
	keywords []string
}{
	{CategoryForm, []string{"form", "input", "field", "select", "survey", "login", "signup"}},
	{CategoryDisplay, []string{"markdown", "text", "label", "message", "collapse", "display", "paragraph", "md"}},
	{CategoryEmbed, []string{"webview", "iframe", "embed"}},
	{CategoryLayout, []string{"card", "layout", "container", "grid", "panel", "modal", "drawer", "box", "stack"}},
}

// ClassifyUnknown guesses the intended category of a type name that is not
// in the whitelist, so the degrader can pick a sympathetic fallback instead
// of always producing a Card.
func ClassifyUnknown(componentType string) Category {
	name := strings.ToLower(strings.TrimSpace(componentType))
	if name == "" {
		return CategoryOther
	}
	for _, hint := range categoryHints {
		for _, keyword := range hint.keywords {
			if strings.Contains(name, keyword) {
				return hint.category
			}
		}
	}
	return CategoryOther
}

// FallbackForUnknown combines classification and the fallback table for a
// type name outside the whitelist.
func FallbackForUnknown(componentType string) string {
	return FallbackForCategory(ClassifyUnknown(componentType))
}
