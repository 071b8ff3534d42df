// Package orchestrator wires the full formatting pipeline: intent mapping →
// the three validation rounds → fallback degradation → status aggregation →
// output assembly. It applies sensible defaults (built-in catalog, default
// mapper, fallback enabled) while remaining open to dependency injection for
// advanced callers.
package orchestrator
