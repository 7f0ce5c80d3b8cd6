package encode

import "github.com/signadot/tomldoc/format"

type EncodeOption func(*EncState)

// FormatSuffix returns the file extension for documents in format f.
func FormatSuffix(f format.Format) string {
	d, err := f.MarshalText()
	if err != nil {
		return ".toml"
	}
	return "." + string(d)
}

// EncodeIndent indents the contents of each [header] section by n spaces
// per level of nesting.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeLiteralStrings writes strings as 'literal' strings whenever no
// escape is needed.
func EncodeLiteralStrings(v bool) EncodeOption {
	return func(es *EncState) { es.literal = v }
}

// EncodeMultilineArrays writes non-empty arrays outside inline tables
// with one element per line.
func EncodeMultilineArrays(v bool) EncodeOption {
	return func(es *EncState) { es.multiline = v }
}
