package tomldoc

import (
	"bytes"
	"fmt"

	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/jsontree"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies an RFC 6902 patch to doc through its JSON form. Doc is
// left unchanged. Datetimes come back as strings and nulls the patch adds
// are dropped.
func JSONPatch(doc *ir.Value, patch []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jsontree.ErrJSON, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := jsontree.Encode(jsontree.FromDocument(doc), buf); err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch on %s\n", buf.String())
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jsontree.ErrJSON, err)
	}
	j, err := jsontree.Parse(out)
	if err != nil {
		return nil, err
	}
	return jsontree.ToDocument(j), nil
}
