package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/ir"
)

type JSON any
type TOML struct{ *ir.Table }

func (y TOML) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeTable(y.Table, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Table] %v", y.Table)
	}
	return buf.String()
}

// Logf writes to stderr, rendering documents and JSON-like values in
// args as text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Table:
			args[i] = TOML{x}.String()
		case *ir.Value:
			args[i] = encode.MustString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
