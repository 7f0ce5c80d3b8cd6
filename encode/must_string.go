package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/tomldoc/ir"
)

// MustString returns the text of a document, or the inline form of any
// other value.
func MustString(v *ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	var err error
	if v.IsTable() {
		err = Encode(v, buf, opts...)
	} else {
		err = EncodeValue(v, buf, opts...)
	}
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
