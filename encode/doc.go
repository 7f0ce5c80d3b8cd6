// Package encode writes document trees as TOML text.
//
// # Layout
//
// Within each table, entries are written in order. Scalars and arrays of
// scalars are written as `key = value`. Tables and arrays of tables that
// come after the last such entry are written as [header] and [[header]]
// sections; any that come before it are written inline so that the key
// order is kept.
//
// # Usage
//
//	err := encode.Encode(doc, os.Stdout, encode.EncodeIndent(2))
//
// # Related Packages
//
//   - github.com/signadot/tomldoc/parse - Parse text to a document tree
//   - github.com/signadot/tomldoc/ir - Document tree
package encode
