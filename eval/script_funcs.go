package eval

import (
	"os"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			p, err := kpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			res, err := ir.GetPath(doc, p)
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			p, err := kpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			pvs := ir.ListPath(doc, p)
			res := make([]any, len(pvs))
			for i, pv := range pvs {
				res[i] = ToAny(pv.Value)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			p, err := kpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return len(ir.ListPath(doc, p)) > 0, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
