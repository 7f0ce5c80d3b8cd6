// Package libdiff computes the differences between two document trees.
//
// # Usage
//
//	// Compute the changes from one tree to another
//	changes := libdiff.Diff(oldDoc, newDoc)
//
//	// Apply them
//	patched, err := libdiff.Apply(oldDoc, changes)
//
// Table keys and array elements are matched by diffing their sequences,
// so changes are reported at the deepest path that still lines up.
//
// # Related Packages
//
//   - github.com/signadot/tomldoc/ir - Document tree
//   - github.com/signadot/tomldoc/ir/kpath - Paths into documents
package libdiff
