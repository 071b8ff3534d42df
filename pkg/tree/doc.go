// Package tree defines the UI tree data model shared by the whole pipeline:
// elements, the rooted id-addressed tree, the validation issue taxonomy, and
// the aggregated validation result attached to tree metadata. The package
// holds no behaviour beyond the model itself so validators, degraders, and
// mappers can all depend on it without cycles.
package tree
