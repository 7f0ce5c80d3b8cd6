// Package parse parses TOML text into ir values.
//
// # Usage
//
//	// Parse a document
//	doc, err := parse.Parse([]byte("title = \"example\"\n[owner]\nname = \"Tom\"\n"))
//	if err != nil {
//	    return err
//	}
//	tbl, _ := doc.GetTable()
//
//	// Parse a single value
//	v, err := parse.ParseValue([]byte(`[1, 2, 3]`))
//
//	// Parse with options
//	pos := map[*ir.Value]*token.Pos{}
//	doc, err := parse.Parse(data, parse.ParseFilename("config.toml"), parse.ParsePositions(pos))
//
// The parser accepts TOML v1.0.0. Any violation aborts the whole parse and
// yields a [*ParseError] carrying the position of the offending text; no
// partial document is returned.
//
// # Related Packages
//
//   - github.com/signadot/tomldoc/ir - document model
//   - github.com/signadot/tomldoc/encode - encode documents to text
//   - github.com/signadot/tomldoc/token - scanning
package parse
