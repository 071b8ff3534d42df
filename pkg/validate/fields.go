package validate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/tree"
)

// identifierProps are the free-text identifier props that receive positional
// synthetic values instead of schema defaults when missing.
var identifierProps = map[string]bool{"id": true, "name": true, "key": true}

// FieldPass is round 2: prop presence and type conformance against the
// element's (now known) schema. Repairs are the fixed coercion table from
// the degradation policy; coercions that cannot succeed downgrade to the
// missing-required repair on that prop.
type FieldPass struct {
	catalog Catalog
}

// NewFieldPass builds the round-2 pass.
func NewFieldPass(cat Catalog) *FieldPass {
	return &FieldPass{catalog: cat}
}

// Name identifies the pass in logs.
func (p *FieldPass) Name() string { return "field" }

// Run repairs every element's props in place and reports the issues found.
func (p *FieldPass) Run(t *tree.UITree) []tree.Issue {
	if t == nil || len(t.Elements) == 0 {
		return nil
	}
	var issues []tree.Issue
	synth := 0
	for _, id := range t.IDs() {
		elem := t.Elements[id]
		schema, known := p.catalog.Lookup(elem.Type)
		if !known {
			// Round 1 owns unknown types; nothing to check here.
			continue
		}
		issues = append(issues, p.checkProps(elem, schema, &synth)...)
		if elem.Type == catalog.TypeForm {
			issues = append(issues, p.checkFormFields(elem, &synth)...)
		}
		if len(elem.Children) > 0 && !schema.SupportsChildren {
			issues = append(issues, tree.Issue{
				Code:      tree.CodeUnsupportedChildren,
				ElementID: elem.ID,
				Message:   fmt.Sprintf("component %s does not render children; %d child reference(s) kept but ignored by consumers", elem.Type, len(elem.Children)),
			})
		}
	}
	return issues
}

func (p *FieldPass) checkProps(elem *tree.Element, schema catalog.Schema, synth *int) []tree.Issue {
	var issues []tree.Issue

	names := make([]string, 0, len(schema.Props))
	for name := range schema.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := schema.Props[name]
		value, present := propValue(elem, name)

		if !present || isEmpty(value) {
			if !spec.Required {
				continue
			}
			replacement := placeholderFor(elem.Type, name, spec, synth)
			setProp(elem, name, replacement)
			issues = append(issues, tree.Issue{
				Code:      tree.CodeMissingRequired,
				ElementID: elem.ID,
				Message:   fmt.Sprintf("required prop %q missing on %s, set to %v", name, elem.Type, replacement),
			})
			continue
		}

		actual := kindOf(value)
		if actual == spec.Kind || actual == "" {
			continue
		}

		coerced, ok := coerce(value, spec.Kind)
		if ok {
			setProp(elem, name, coerced)
			issues = append(issues, tree.Issue{
				Code:      tree.CodeTypeMismatch,
				ElementID: elem.ID,
				Message:   fmt.Sprintf("prop %q on %s expected %s, got %s; coerced to %v", name, elem.Type, spec.Kind, actual, coerced),
			})
			continue
		}

		replacement := placeholderFor(elem.Type, name, spec, synth)
		setProp(elem, name, replacement)
		issues = append(issues, tree.Issue{
			Code:      tree.CodeMissingRequired,
			ElementID: elem.ID,
			Message:   fmt.Sprintf("prop %q on %s expected %s, got uncoercible %s; reset to %v", name, elem.Type, spec.Kind, actual, replacement),
		})
	}
	return issues
}

// checkFormFields validates the inline field definitions of a Form element:
// names present and unique, field types known, select/radio carrying
// options, slider bounds ordered.
func (p *FieldPass) checkFormFields(elem *tree.Element, synth *int) []tree.Issue {
	raw, ok := propValue(elem, "fields")
	if !ok {
		return nil
	}
	fields, ok := raw.([]any)
	if !ok || len(fields) == 0 {
		return nil
	}

	var issues []tree.Issue
	seen := map[string]bool{}
	for i, entry := range fields {
		field, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		path := fmt.Sprintf("fields[%d]", i)

		name, _ := field["name"].(string)
		switch {
		case strings.TrimSpace(name) == "":
			name = fmt.Sprintf("field_%d", *synth)
			*synth++
			field["name"] = name
			issues = append(issues, tree.Issue{
				Code:      tree.CodeMissingRequired,
				ElementID: elem.ID,
				Message:   fmt.Sprintf("%s has no name, assigned %q", path, name),
			})
		case seen[name]:
			renamed := fmt.Sprintf("%s_%d", name, i)
			field["name"] = renamed
			issues = append(issues, tree.Issue{
				Code:      tree.CodeMissingRequired,
				ElementID: elem.ID,
				Message:   fmt.Sprintf("%s duplicates field name %q, renamed to %q", path, name, renamed),
			})
			name = renamed
		}
		seen[name] = true

		fieldType, _ := field["type"].(string)
		if fieldType == "" {
			fieldType = string(catalog.FieldText)
			field["type"] = fieldType
		} else if !catalog.ValidFieldType(fieldType) {
			issues = append(issues, tree.Issue{
				Code:      tree.CodeTypeMismatch,
				ElementID: elem.ID,
				Message:   fmt.Sprintf("%s has unknown field type %q, downgraded to %q", path, fieldType, catalog.FieldText),
			})
			fieldType = string(catalog.FieldText)
			field["type"] = fieldType
		}

		if fieldType == string(catalog.FieldSelect) || fieldType == string(catalog.FieldRadio) {
			if options, _ := field["options"].([]any); len(options) == 0 {
				issues = append(issues, tree.Issue{
					Code:      tree.CodeTypeMismatch,
					ElementID: elem.ID,
					Message:   fmt.Sprintf("%s is %s without options, downgraded to %q", path, fieldType, catalog.FieldText),
				})
				field["type"] = string(catalog.FieldText)
				delete(field, "options")
			}
		}

		if fieldType == string(catalog.FieldSlider) {
			min, hasMin := asNumber(field["min"])
			max, hasMax := asNumber(field["max"])
			if hasMin && hasMax && min >= max {
				delete(field, "min")
				delete(field, "max")
				issues = append(issues, tree.Issue{
					Code:      tree.CodeTypeMismatch,
					ElementID: elem.ID,
					Message:   fmt.Sprintf("%s slider min %v is not below max %v, bounds dropped", path, min, max),
				})
			}
		}
	}
	return issues
}

func propValue(elem *tree.Element, name string) (any, bool) {
	if elem.Props == nil {
		return nil, false
	}
	value, ok := elem.Props[name]
	return value, ok
}

func setProp(elem *tree.Element, name string, value any) {
	if elem.Props == nil {
		elem.Props = make(map[string]any)
	}
	elem.Props[name] = value
}

// isEmpty reports the values the policy treats as absent: nil, the empty
// string, and the empty sequence.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// placeholderFor yields the stable repair value for a missing or
// uncoercible required prop: positional synthetic ids for free-text
// identifiers, otherwise the documented default, otherwise the kind's zero.
func placeholderFor(elemType, name string, spec catalog.PropSpec, synth *int) any {
	if spec.Kind == catalog.KindString && identifierProps[name] {
		value := fmt.Sprintf("%s_%d", strings.ToLower(elemType), *synth)
		*synth++
		return value
	}
	if spec.Default != nil {
		return spec.Default
	}
	return zeroValue(spec.Kind)
}

func zeroValue(kind catalog.Kind) any {
	switch kind {
	case catalog.KindString:
		return ""
	case catalog.KindNumber:
		return float64(0)
	case catalog.KindBoolean:
		return false
	case catalog.KindArray:
		return []any{}
	default:
		return map[string]any{}
	}
}

// kindOf maps a decoded JSON value onto a schema kind. Unrecognised shapes
// return "" and are left alone rather than guessed at.
func kindOf(value any) catalog.Kind {
	switch value.(type) {
	case string:
		return catalog.KindString
	case bool:
		return catalog.KindBoolean
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return catalog.KindNumber
	case []any:
		return catalog.KindArray
	case map[string]any:
		return catalog.KindObject
	default:
		return ""
	}
}

// coerce applies the fixed coercion table. The bool result reports whether
// the table produced a usable value.
func coerce(value any, want catalog.Kind) (any, bool) {
	switch want {
	case catalog.KindNumber:
		if s, ok := value.(string); ok {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, false
			}
			return parsed, true
		}
	case catalog.KindBoolean:
		if s, ok := value.(string); ok {
			return strings.EqualFold(strings.TrimSpace(s), "true"), true
		}
	case catalog.KindString:
		if n, ok := asNumber(value); ok {
			return strconv.FormatFloat(n, 'f', -1, 64), true
		}
	case catalog.KindArray:
		switch value.(type) {
		case string, bool, float64, float32, int, int32, int64, uint, uint32, uint64:
			return []any{value}, true
		}
	}
	return nil, false
}

func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
