package tomldoc

import (
	"bytes"

	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/jsontree"
	"github.com/signadot/tomldoc/parse"
)

// ParseText parses a TOML document. The result is a Table value. Errors
// are *parse.ParseError values whose message gives the position.
func ParseText(d []byte) (*ir.Value, error) {
	return parse.Parse(d)
}

// SerializeText writes v as a TOML document. It fails only when v is not a
// Table.
func SerializeText(v *ir.Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf); err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("serialized %d bytes\n%s", buf.Len(), buf.String())
	}
	return buf.Bytes(), nil
}

// ToDocumentTree converts a JSON tree to a document tree. See
// jsontree.ToDocument for how nulls and large integers are handled.
func ToDocumentTree(j *jsontree.Value) *ir.Value {
	return jsontree.ToDocument(j)
}

// FromDocumentTree converts a document tree to a JSON tree.
func FromDocumentTree(v *ir.Value) *jsontree.Value {
	return jsontree.FromDocument(v)
}
