package main

import (
	"fmt"

	"github.com/signadot/tomldoc"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchArg == "" {
		return fmt.Errorf("%w: patch requires -p, a JSON patch", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: patch takes at most one file", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc)
	if err != nil {
		return err
	}
	file := fileArg(args)
	doc, in, err := cfg.load(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := tomldoc.JSONPatch(doc, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return cfg.emit(cc, file, cfg.Write, res, in)
}

func getPatch(cfg *PatchConfig, cc *cli.Context) ([]byte, error) {
	if cfg.String {
		return []byte(cfg.PatchArg), nil
	}
	d, err := readInput(cc, cfg.PatchArg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
