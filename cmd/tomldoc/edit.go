package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"
	"github.com/signadot/tomldoc/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: set requires a keypath=value argument and at most one file", cli.ErrUsage)
	}
	ps, vs, ok := strings.Cut(args[0], "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected keypath=value", cli.ErrUsage, args[0])
	}
	p, err := kpath.Parse(strings.TrimSpace(ps))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	x, err := parse.ParseValue([]byte(vs))
	if err != nil {
		return fmt.Errorf("error reading value %q: %w", vs, err)
	}
	file := fileArg(args[1:])
	doc, in, err := cfg.load(cc, file)
	if err != nil {
		return err
	}
	if err := ir.SetPath(doc, p, x); err != nil {
		return fmt.Errorf("error setting %s in %s: %w", p, file, err)
	}
	return cfg.emit(cc, file, cfg.Write, doc, in)
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: del requires a keypath and at most one file", cli.ErrUsage)
	}
	p, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := fileArg(args[1:])
	doc, in, err := cfg.load(cc, file)
	if err != nil {
		return err
	}
	if err := ir.DeletePath(doc, p); err != nil {
		return fmt.Errorf("error deleting %s in %s: %w", args[0], file, err)
	}
	return cfg.emit(cc, file, cfg.Write, doc, in)
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
