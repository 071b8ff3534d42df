package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Category is the coarse grouping used by the fallback table.
type Category string

const (
	CategoryDisplay  Category = "display"
	CategoryCard     Category = "card"
	CategoryForm     Category = "form"
	CategoryMedia    Category = "media"
	CategoryFeedback Category = "feedback"
	CategoryLayout   Category = "layout"
	CategoryEmbed    Category = "embed"
	CategoryOther    Category = "other"
)

// Kind names the expected runtime shape of a prop value.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// PropSpec describes a single prop of a component schema. Default doubles as
// the documented repair value when a required prop is missing or a coercion
// fails.
type PropSpec struct {
	Required bool `json:"required" yaml:"required"`
	Kind     Kind `json:"kind" yaml:"kind"`
	Default  any  `json:"default,omitempty" yaml:"default,omitempty"`
}

// Schema is one whitelist entry.
type Schema struct {
	Type             string              `json:"type" yaml:"type"`
	Category         Category            `json:"category" yaml:"category"`
	Props            map[string]PropSpec `json:"props,omitempty" yaml:"props,omitempty"`
	SupportsChildren bool                `json:"supportsChildren,omitempty" yaml:"supportsChildren,omitempty"`
	SupportsActions  bool                `json:"supportsActions,omitempty" yaml:"supportsActions,omitempty"`
	Description      string              `json:"description,omitempty" yaml:"description,omitempty"`
}

// RequiredProps returns the schema's required prop names in lexical order.
func (s Schema) RequiredProps() []string {
	var required []string
	for name, spec := range s.Props {
		if spec.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	return required
}

var errEmptyType = errors.New("catalog: component type is required")

// Registry is the whitelist itself. Registration happens during start-up;
// lookups afterwards are lock-free reads guarded by an RWMutex for the rare
// caller that composes catalogs at runtime.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Default returns a registry populated with the built-in component set.
func Default() *Registry {
	reg := New()
	reg.registerBuiltins()
	return reg
}

// Register adds or replaces a schema entry. The latest registration wins.
func (r *Registry) Register(schema Schema) error {
	trimmed := strings.TrimSpace(schema.Type)
	if trimmed == "" {
		return errEmptyType
	}
	schema.Type = trimmed
	if schema.Category == "" {
		schema.Category = CategoryOther
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[schema.Type] = schema
	return nil
}

// MustRegister registers the schema and panics on error. Reserved for
// built-in wiring where a failure is a programming mistake.
func (r *Registry) MustRegister(schema Schema) {
	if err := r.Register(schema); err != nil {
		panic(fmt.Sprintf("catalog: register %q: %v", schema.Type, err))
	}
}

// Lookup returns the schema for a component type. O(1).
func (r *Registry) Lookup(componentType string) (Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[componentType]
	return schema, ok
}

// Has reports whether the component type is whitelisted.
func (r *Registry) Has(componentType string) bool {
	_, ok := r.Lookup(componentType)
	return ok
}

// Types returns every whitelisted type name in lexical order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// TypesByCategory returns the whitelisted types in the given category.
func (r *Registry) TypesByCategory(category Category) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var types []string
	for name, schema := range r.schemas {
		if schema.Category == category {
			types = append(types, name)
		}
	}
	sort.Strings(types)
	return types
}

// Len returns the number of whitelisted types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}
