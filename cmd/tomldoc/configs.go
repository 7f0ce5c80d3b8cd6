package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/eval"
	"github.com/signadot/tomldoc/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	Verbose   bool `cli:"name=v aliases=verbose desc='verbose logging'"`
	Indent    int  `cli:"name=indent desc='indent nested table sections by n spaces'"`
	Literal   bool `cli:"name=literal desc='prefer literal strings'"`
	Multiline bool `cli:"name=multiline desc='write arrays one element per line'"`

	T bool `cli:"name=t aliases=toml desc='do i/o in toml'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat gives the format chosen by -t, -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.T:
		return format.TOMLFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.TOMLFormat, false
}

// inFormat gives the format in which to read path. Without flags it is
// guessed from the file extension.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if path == "-" {
		return format.TOMLFormat
	}
	return format.FromPath(path)
}

// outFormat gives the format in which to write a document read in
// format in.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return in
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeLiteralStrings(cfg.Literal),
		encode.EncodeMultilineArrays(cfg.Multiline),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w gets colors: always with -color,
// never with -no-color, otherwise when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the source file'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	Where bool `cli:"name=n desc='prefix each value with its file, line and column'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the source file'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the source file'"`

	Del *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write each result next to its source, with the suffix of the output format'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchArg string `cli:"name=p desc='file holding an RFC 6902 JSON patch'"`
	String   bool   `cli:"name=s desc='take the -p argument as the patch text'"`
	Write    bool   `cli:"name=w desc='write the result back to the source file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env   eval.Env
	Match bool `cli:"name=m aliases=match desc='list the files for which the expression is true'"`

	Eval *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Diff bool `cli:"name=d aliases=diff desc='print the changes between versions'"`

	Watch *cli.Command
}
