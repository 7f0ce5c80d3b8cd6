package eval

import (
	"fmt"

	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the variables of an expression.
type Env = map[string]any

type EvalOption func(Env)

// EvalVars adds vars to the environment. They shadow top level keys of
// the document but not `doc`.
func EvalVars(vars Env) EvalOption {
	return func(env Env) {
		for k, v := range vars {
			if k == "doc" {
				continue
			}
			env[k] = v
		}
	}
}

// DocEnv makes the top level keys of doc variables, and doc itself
// available as `doc`.
func DocEnv(doc *ir.Value) Env {
	env := Env{}
	if m, ok := ToAny(doc).(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = ToAny(doc)
	return env
}

// Eval runs the expression code against doc and returns its result.
func Eval(doc *ir.Value, code string, opts ...EvalOption) (*ir.Value, error) {
	val, err := run(doc, code, opts)
	if err != nil {
		return nil, err
	}
	res, err := FromAny(val)
	if err != nil {
		return nil, fmt.Errorf("could not translate result of %q: %w", code, err)
	}
	return res, nil
}

// Match reports whether code evaluates to a true value against doc, as
// judged by ir.Truth. A nil result does not match.
func Match(doc *ir.Value, code string, opts ...EvalOption) (bool, error) {
	val, err := run(doc, code, opts)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}
	res, err := FromAny(val)
	if err != nil {
		return false, fmt.Errorf("could not translate result of %q: %w", code, err)
	}
	return ir.Truth(res), nil
}

func run(doc *ir.Value, code string, opts []EvalOption) (any, error) {
	env := DocEnv(doc)
	for _, opt := range opts {
		opt(env)
	}
	program, err := expr.Compile(code, append(exprOpts(doc), expr.Env(env))...)
	if err != nil {
		return nil, fmt.Errorf("%w: error compiling %q: %w", ErrEval, code, err)
	}
	val, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: error evaluating %q: %w", ErrEval, code, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %v\n", code, val)
	}
	return val, nil
}
