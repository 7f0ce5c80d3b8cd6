package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"
	"github.com/signadot/tomldoc/parse"
	"github.com/signadot/tomldoc/token"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	p, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range orStdin(args[1:]) {
		var (
			pos  map[*ir.Value]*token.Pos
			opts []parse.ParseOption
		)
		if cfg.Where {
			pos = map[*ir.Value]*token.Pos{}
			opts = append(opts, parse.ParsePositions(pos))
		}
		doc, in, err := cfg.load(cc, file, opts...)
		if err != nil {
			return err
		}
		v, err := ir.GetPath(doc, p)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, args[0], err)
		}
		if cfg.Where {
			if err := writeWhere(cc.Out, file, pos[v]); err != nil {
				return err
			}
		}
		if err := cfg.writeValue(cc.Out, v, cfg.outFormat(in)); err != nil {
			return err
		}
	}
	return nil
}

// writeWhere starts the line of a value found at p in file. Values read
// from json or yaml have no position.
func writeWhere(w io.Writer, file string, p *token.Pos) error {
	where := inputName(file)
	if p != nil {
		l, c := p.LineCol()
		where = fmt.Sprintf("%s:%d:%d", where, l, c)
	}
	_, err := io.WriteString(w, where+": ")
	return err
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("%w: list requires one argument, a non-empty key path", cli.ErrUsage)
	}
	p, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range orStdin(args[1:]) {
		doc, _, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		for _, pv := range ir.ListPath(doc, p) {
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeValue(pv.Value, buf, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", pv.Path, err)
			}
			if _, err := fmt.Fprintf(cc.Out, "%s = %s\n", pv.Path, buf); err != nil {
				return err
			}
		}
	}
	return nil
}
