// Package validate implements the three validation rounds that turn a draft
// UI tree into a renderable one:
//
//  1. SchemaPass checks every element type against the catalog whitelist and
//     rewrites unknown types to their category fallback.
//  2. FieldPass checks element props against the type's schema, synthesizing
//     placeholders for missing required props and coercing mismatched values.
//  3. StructurePass checks global invariants: root resolution, reference
//     integrity, acyclicity, and reachability.
//
// Each pass repairs what it can in place and reports what it found; passes
// run strictly in sequence so later rounds always observe earlier repairs.
// Fatal structural defects are reported without repair: whole-tree fallback
// is the orchestrator's call, not this package's.
package validate
