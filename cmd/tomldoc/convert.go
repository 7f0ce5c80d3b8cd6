package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/format"
	"github.com/signadot/tomldoc/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	files := orStdin(args)
	for i, file := range files {
		doc, in, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		out := cfg.convertFormat(in)
		if cfg.Write && file != "-" {
			if err := cfg.writeConverted(file, doc, out); err != nil {
				return err
			}
			continue
		}
		if len(files) > 1 {
			if err := writeSep(cc.Out, out, i, file); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, doc, out); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

// convertedPath gives the file a conversion of file to format f is
// written to: file with its extension replaced.
func convertedPath(file string, f format.Format) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + encode.FormatSuffix(f)
}

func (cfg *ConvertConfig) writeConverted(file string, doc *ir.Value, f format.Format) error {
	dst := convertedPath(file, f)
	if filepath.Clean(dst) == filepath.Clean(file) {
		return fmt.Errorf("converting %s to %s would overwrite it", file, f)
	}
	buf := bytes.NewBuffer(nil)
	if err := cfg.writeDoc(buf, doc, f); err != nil {
		return fmt.Errorf("error converting %s: %w", file, err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", dst, err)
	}
	theLog.Info("wrote", "file", dst, "from", file)
	return nil
}
// convertFormat gives the output format of a conversion. Without -O, TOML
// becomes JSON and everything else becomes TOML.
func (cfg *ConvertConfig) convertFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if in.IsTOML() {
		return format.JSONFormat
	}
	return format.TOMLFormat
}
