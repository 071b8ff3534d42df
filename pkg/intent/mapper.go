package intent

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-uitree/pkg/tree"
)

// Mapper turns an intent payload into a draft tree. Implementations may
// produce structurally invalid trees; the validation pipeline repairs or
// degrades them afterwards.
type Mapper interface {
	Map(payload map[string]any) (*tree.UITree, Kind)
}

// MapperOption configures the default mapper.
type MapperOption func(*DefaultMapper)

// WithIDPrefix prepends a prefix to every generated element id.
func WithIDPrefix(prefix string) MapperOption {
	return func(m *DefaultMapper) { m.prefix = prefix }
}

// DefaultMapper is the built-in payload-to-component mapping. It is
// stateless across requests: id counters live per Map call so concurrent
// requests never share mutable state.
type DefaultMapper struct {
	prefix string
}

// NewMapper constructs the default mapper.
func NewMapper(options ...MapperOption) *DefaultMapper {
	m := &DefaultMapper{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

var _ Mapper = (*DefaultMapper)(nil)

// component is the intermediate handler output before tree building.
type component struct {
	typ   string
	props map[string]any
}

// Map classifies the payload, builds the matching component, and wraps it
// in a flat single-element draft tree.
func (m *DefaultMapper) Map(payload map[string]any) (*tree.UITree, Kind) {
	kind := Parse(payload)
	comp := m.handle(kind, payload)
	return m.buildTree(comp), kind
}

func (m *DefaultMapper) handle(kind Kind, payload map[string]any) component {
	switch kind {
	case KindReply:
		return handleReply(payload)
	case KindCode:
		return handleCode(payload)
	case KindForm:
		return handleForm(payload)
	case KindConfirm:
		return handleConfirm(payload)
	case KindSelect:
		return handleSelect(payload)
	case KindAlert:
		return handleAlert(payload, "info")
	case KindWarn:
		return handleAlert(payload, "warning")
	case KindError:
		return handleAlert(payload, "error")
	case KindSuccess:
		return handleAlert(payload, "success")
	case KindData:
		return handleData(payload)
	case KindMedia:
		return handleMedia(payload)
	case KindProgress:
		return handleProgress(payload)
	case KindApp:
		return handleApp(payload)
	default:
		return handleUnknown(payload)
	}
}

// buildTree wraps a component in the flat draft tree shape.
func (m *DefaultMapper) buildTree(comp component) *tree.UITree {
	ids := newIDGenerator(m.prefix)
	id := ids.next(comp.typ)
	return &tree.UITree{
		Root: id,
		Elements: map[string]*tree.Element{
			id: {
				ID:       id,
				Type:     comp.typ,
				Props:    comp.props,
				Children: []string{},
			},
		},
	}
}

// idGenerator hands out <type>_<n> ids, unique per component type within a
// single request.
type idGenerator struct {
	prefix   string
	counters map[string]int
}

func newIDGenerator(prefix string) *idGenerator {
	return &idGenerator{prefix: prefix, counters: map[string]int{}}
}

func (g *idGenerator) next(componentType string) string {
	lower := strings.ToLower(componentType)
	n := g.counters[lower]
	g.counters[lower]++
	return fmt.Sprintf("%s%s_%d", g.prefix, lower, n)
}
