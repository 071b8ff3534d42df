// Package catalog holds the closed whitelist of component types the engine
// can emit. Each entry describes the component's prop schema (required flag,
// value kind, documented default), its coarse category, and whether it
// renders children or actions. The registry is read-only after construction
// and safe for concurrent lookups.
//
// Beyond the built-in set, catalogs can be loaded from YAML definition files
// or from the components.schemas section of an OpenAPI 3 document.
package catalog
