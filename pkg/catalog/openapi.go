package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys recognised on component schemas in an OpenAPI document.
const (
	extCategory         = "x-category"
	extSupportsChildren = "x-supports-children"
	extSupportsActions  = "x-supports-actions"
)

// LoadOpenAPI reads component definitions from the components.schemas section
// of an OpenAPI 3 document. Each named schema becomes a whitelist entry: the
// schema name is the component type, object properties become prop specs, and
// the required list plus defaults carry over. Categories come from the
// x-category extension and default to "other".
//
// Entries are merged on top of the built-in set so frontend teams can ship a
// single contract document that extends the stock components.
func LoadOpenAPI(ctx context.Context, data []byte) (*Registry, error) {
	reg := Default()
	if err := MergeOpenAPI(ctx, reg, data); err != nil {
		return nil, err
	}
	return reg, nil
}

// MergeOpenAPI parses data and registers every component schema on reg.
func MergeOpenAPI(ctx context.Context, reg *Registry, data []byte) error {
	if len(data) == 0 {
		return errors.New("catalog: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("catalog: load openapi document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return errors.New("catalog: openapi document has no component schemas")
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		schema, err := schemaFromOpenAPI(name, ref.Value)
		if err != nil {
			return err
		}
		if err := reg.Register(schema); err != nil {
			return fmt.Errorf("catalog: register %q: %w", name, err)
		}
	}
	return nil
}

func schemaFromOpenAPI(name string, src *openapi3.Schema) (Schema, error) {
	out := Schema{
		Type:        name,
		Category:    categoryFromExtensions(src.Extensions),
		Description: src.Description,
		Props:       make(map[string]PropSpec, len(src.Properties)),
	}
	out.SupportsChildren = boolExtension(src.Extensions, extSupportsChildren)
	out.SupportsActions = boolExtension(src.Extensions, extSupportsActions)

	required := make(map[string]bool, len(src.Required))
	for _, prop := range src.Required {
		required[prop] = true
	}

	for propName, propRef := range src.Properties {
		if propRef == nil || propRef.Value == nil {
			continue
		}
		kind, err := kindFromOpenAPIType(propRef.Value.Type)
		if err != nil {
			return Schema{}, fmt.Errorf("catalog: %s.%s: %w", name, propName, err)
		}
		out.Props[propName] = PropSpec{
			Required: required[propName],
			Kind:     kind,
			Default:  propRef.Value.Default,
		}
	}
	return out, nil
}

func categoryFromExtensions(ext map[string]any) Category {
	raw, ok := ext[extCategory]
	if !ok {
		return CategoryOther
	}
	value, ok := raw.(string)
	if !ok {
		return CategoryOther
	}
	switch Category(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryDisplay:
		return CategoryDisplay
	case CategoryCard:
		return CategoryCard
	case CategoryForm:
		return CategoryForm
	case CategoryMedia:
		return CategoryMedia
	case CategoryFeedback:
		return CategoryFeedback
	case CategoryLayout:
		return CategoryLayout
	case CategoryEmbed:
		return CategoryEmbed
	default:
		return CategoryOther
	}
}

func boolExtension(ext map[string]any, key string) bool {
	raw, ok := ext[key]
	if !ok {
		return false
	}
	value, ok := raw.(bool)
	return ok && value
}

func kindFromOpenAPIType(types *openapi3.Types) (Kind, error) {
	if types == nil || len(*types) == 0 {
		return KindObject, nil
	}
	switch (*types)[0] {
	case openapi3.TypeString:
		return KindString, nil
	case openapi3.TypeNumber, openapi3.TypeInteger:
		return KindNumber, nil
	case openapi3.TypeBoolean:
		return KindBoolean, nil
	case openapi3.TypeArray:
		return KindArray, nil
	case openapi3.TypeObject:
		return KindObject, nil
	default:
		return "", fmt.Errorf("unsupported schema type %q", (*types)[0])
	}
}
