package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range orStdin(args) {
		if _, _, err := cfg.load(cc, file); err != nil {
			fmt.Fprintf(cc.Err, "%v\n", err)
			failed++
			continue
		}
		theLog.Debug("ok", "file", file)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
