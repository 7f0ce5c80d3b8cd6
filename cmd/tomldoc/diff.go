package main

import (
	"fmt"
	"io"

	"github.com/signadot/tomldoc/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, _, err := cfg.load(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, _, err := cfg.load(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(from, to)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := writeChanges(cc.Out, changes, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, changes []libdiff.Change, colored bool) error {
	paint := map[libdiff.Op]func(...any) string{}
	if colored {
		paint[libdiff.Insert] = color.New(color.FgGreen).SprintFunc()
		paint[libdiff.Delete] = color.New(color.FgRed).SprintFunc()
		paint[libdiff.Replace] = color.New(color.FgYellow).SprintFunc()
	}
	for _, c := range changes {
		line := c.String()
		if f := paint[c.Op]; f != nil {
			line = f(line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
