package tree

// Code identifies a class of validation defect. The set is closed; each code
// carries a fixed degradability that never varies per instance.
type Code string

const (
	// CodeUnknownType flags an element whose type is not in the catalog
	// whitelist. Repair rewrites the type to the category fallback.
	CodeUnknownType Code = "UNKNOWN_TYPE"
	// CodeMissingRequired flags a required prop that is absent or empty.
	// Repair synthesizes a placeholder or applies the schema default.
	CodeMissingRequired Code = "MISSING_REQUIRED"
	// CodeTypeMismatch flags a prop whose runtime type does not match the
	// schema kind. Repair applies the fixed coercion table.
	CodeTypeMismatch Code = "TYPE_MISMATCH"
	// CodeInvalidReference flags a children entry that names a missing
	// element. Repair removes the dangling id from the parent.
	CodeInvalidReference Code = "INVALID_REFERENCE"
	// CodeCircularReference flags a cycle on the path from the root. Repair
	// cuts the back-edge that closes the cycle.
	CodeCircularReference Code = "CIRCULAR_REFERENCE"
	// CodeOrphan flags an element unreachable from the root. Warning only;
	// the element is retained.
	CodeOrphan Code = "ORPHAN"
	// CodeUnsupportedChildren flags children on a component type that does
	// not render children. Warning only; the children are retained.
	CodeUnsupportedChildren Code = "UNSUPPORTED_CHILDREN"
	// CodeMissingRoot flags a tree descriptor without a root id.
	CodeMissingRoot Code = "MISSING_ROOT"
	// CodeMissingElements flags a tree descriptor without elements.
	CodeMissingElements Code = "MISSING_ELEMENTS"
	// CodeRootNotFound flags a root id that resolves to no element.
	CodeRootNotFound Code = "ROOT_NOT_FOUND"
)

// Degradable reports whether the code has a deterministic local repair.
// Warning-only codes (ORPHAN, UNSUPPORTED_CHILDREN) report false together
// with Fatal() == false: nothing is repaired and nothing aborts.
func (c Code) Degradable() bool {
	switch c {
	case CodeUnknownType, CodeMissingRequired, CodeTypeMismatch,
		CodeInvalidReference, CodeCircularReference:
		return true
	default:
		return false
	}
}

// Fatal reports whether the code aborts per-tree processing. Fatal issues
// have no safe local repair; the caller falls back at the whole-tree level.
func (c Code) Fatal() bool {
	switch c {
	case CodeMissingRoot, CodeMissingElements, CodeRootNotFound:
		return true
	default:
		return false
	}
}

// Issue records a single detected defect. ElementID is empty for tree-global
// issues such as cycles or a missing root.
type Issue struct {
	Code      Code   `json:"code"`
	ElementID string `json:"elementId,omitempty"`
	Message   string `json:"message"`
}

// Degradable mirrors Code.Degradable for convenience at call sites.
func (i Issue) Degradable() bool { return i.Code.Degradable() }

// Fatal mirrors Code.Fatal.
func (i Issue) Fatal() bool { return i.Code.Fatal() }

// HasFatal reports whether any issue in the slice is fatal.
func HasFatal(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Fatal() {
			return true
		}
	}
	return false
}
