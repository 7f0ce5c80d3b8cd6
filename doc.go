// Package tomldoc reads and writes TOML documents as mutable trees.
//
// # Usage
//
//	doc, err := tomldoc.ParseText(data)
//	if err != nil {
//		return err
//	}
//	t, _ := doc.GetTable()
//	t.Insert("version", ir.FromInt(2))
//	out, err := tomldoc.SerializeText(doc)
//
// # Related Packages
//
//   - github.com/signadot/tomldoc/ir - Values, tables and arrays
//   - github.com/signadot/tomldoc/parse - Parser with options
//   - github.com/signadot/tomldoc/encode - Serializer with options
//   - github.com/signadot/tomldoc/jsontree - JSON trees and conversion
package tomldoc
