package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	files := orStdin(args)
	for i, file := range files {
		doc, in, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		if cfg.Write && file != "-" {
			if err := cfg.emit(cc, file, true, doc, in); err != nil {
				return err
			}
			continue
		}
		out := cfg.outFormat(in)
		if len(files) > 1 {
			if err := writeSep(cc.Out, out, i, file); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, doc, out); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
