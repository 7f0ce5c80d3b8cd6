package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tomldoc/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func docEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	code := args[0]
	vars := eval.EvalVars(cfg.Env)
	matched := 0
	for _, file := range orStdin(args[1:]) {
		doc, in, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		if cfg.Match {
			ok, err := eval.Match(doc, code, vars)
			if err != nil {
				return fmt.Errorf("error evaluating %s: %w", file, err)
			}
			if !ok {
				continue
			}
			matched++
			if _, err := fmt.Fprintln(cc.Out, file); err != nil {
				return err
			}
			continue
		}
		v, err := eval.Eval(doc, code, vars)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := cfg.writeValue(cc.Out, v, cfg.outFormat(in)); err != nil {
			return err
		}
	}
	if cfg.Match && matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// envFunc sets a variable from a name=val argument. Dots in the name
// make nested maps.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
