// Package jsontree holds generic JSON values and converts them to and
// from document trees.
//
// JSON has no datetimes and TOML has no null, so the two conversions are
// not inverse: see ToDocument and FromDocument.
//
// # Related Packages
//
//   - github.com/signadot/tomldoc/ir - Document tree
package jsontree
