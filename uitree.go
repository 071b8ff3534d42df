// Package uitree turns loosely-structured intent payloads into well-formed,
// renderable UI trees. The engine validates draft trees against a component
// whitelist in three rounds (type, props, structure), repairs every
// degradable defect deterministically, and degrades to a single Markdown
// element when no repair is possible, so a frontend consumer never receives a
// tree it cannot render unless strict mode explicitly asks for hard
// failures.
package uitree

import (
	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/intent"
	"github.com/goliatone/go-uitree/pkg/orchestrator"
	"github.com/goliatone/go-uitree/pkg/tree"
)

// Version is the engine version stamped into tree metadata.
const Version = orchestrator.Version

// Option configures the formatter; alias exported via the root package for
// convenience.
type Option = orchestrator.Option

// Document is the final {intro, ui_tree} output shape.
type Document = orchestrator.Document

// Result carries the document together with the validation outcome.
type Result = orchestrator.Result

// New constructs a formatter with the built-in catalog and default mapper.
func New(options ...Option) *orchestrator.Formatter {
	return orchestrator.New(options...)
}

// Format runs the full pipeline against one intent payload using a fresh
// formatter. It is the simplest entry point for callers that just want a
// document.
func Format(payload map[string]any, options ...Option) (*Result, error) {
	return orchestrator.New(options...).Format(payload)
}

// FormatJSON decodes a payload from JSON and returns the encoded final
// document.
func FormatJSON(data []byte, options ...Option) ([]byte, error) {
	return orchestrator.New(options...).FormatJSON(data)
}

// Validate runs the validation rounds against an externally built tree.
func Validate(t *tree.UITree, options ...Option) (*tree.UITree, *tree.Result, error) {
	return orchestrator.New(options...).ValidateTree(t)
}

// DefaultCatalog returns the built-in component whitelist.
func DefaultCatalog() *catalog.Registry {
	return catalog.Default()
}

// WithCatalog injects a custom component catalog.
func WithCatalog(reg *catalog.Registry) Option {
	return orchestrator.WithCatalog(reg)
}

// WithMapper injects a custom intent mapper.
func WithMapper(mapper intent.Mapper) Option {
	return orchestrator.WithMapper(mapper)
}

// WithoutFallback disables whole-tree degradation.
func WithoutFallback() Option {
	return orchestrator.WithoutFallback()
}

// WithStrictValidation reports degradable issues as errors.
func WithStrictValidation() Option {
	return orchestrator.WithStrictValidation()
}
