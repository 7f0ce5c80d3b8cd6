package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tomldoc"
	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/format"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/jsontree"
	"github.com/signadot/tomldoc/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// load reads and decodes the document at path, "-" meaning the command
// input. It returns the format the document was read in. The parse
// options apply to TOML input only.
func (cfg *MainConfig) load(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Value, format.Format, error) {
	f := cfg.inFormat(path)
	d, err := readInput(cc, path)
	if err != nil {
		return nil, f, err
	}
	doc, err := decode(d, path, f, opts...)
	if err != nil {
		return nil, f, err
	}
	theLog.Debug("loaded", "file", path, "format", f)
	return doc, f, nil
}

func decode(d []byte, path string, f format.Format, opts ...parse.ParseOption) (*ir.Value, error) {
	name := inputName(path)
	switch f {
	case format.JSONFormat:
		j, err := jsontree.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return tomldoc.ToDocumentTree(j), nil
	case format.YAMLFormat:
		j, err := jsontree.FromYAML(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return tomldoc.ToDocumentTree(j), nil
	default:
		return parse.Parse(d, append([]parse.ParseOption{parse.ParseFilename(name)}, opts...)...)
	}
}

// inputName names path in diagnostics.
func inputName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

// writeDoc writes the document doc to w in format f.
func (cfg *MainConfig) writeDoc(w io.Writer, doc *ir.Value, f format.Format) error {
	switch f {
	case format.JSONFormat:
		if err := jsontree.Encode(tomldoc.FromDocumentTree(doc), w, jsontree.EncodePretty("  ")); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	case format.YAMLFormat:
		d, err := jsontree.ToYAML(tomldoc.FromDocumentTree(doc))
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
}

// writeValue writes a single value on one line: inline TOML, compact
// JSON, or a YAML document.
func (cfg *MainConfig) writeValue(w io.Writer, v *ir.Value, f format.Format) error {
	switch f {
	case format.JSONFormat:
		if err := jsontree.Encode(tomldoc.FromDocumentTree(v), w); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	case format.YAMLFormat:
		d, err := jsontree.ToYAML(tomldoc.FromDocumentTree(v))
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.EncodeValue(v, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// emit writes an edited document: back to path when write is set,
// otherwise to the command output.
func (cfg *MainConfig) emit(cc *cli.Context, path string, write bool, doc *ir.Value, f format.Format) error {
	if !write || path == "-" {
		return cfg.writeDoc(cc.Out, doc, cfg.outFormat(f))
	}
	buf := bytes.NewBuffer(nil)
	if err := cfg.writeDoc(buf, doc, f); err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	theLog.Info("wrote", "file", path)
	return nil
}

// writeSep separates the output for several files. TOML and YAML get a
// comment naming the next file.
func writeSep(w io.Writer, f format.Format, i int, path string) error {
	if i > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if f == format.JSONFormat {
		return nil
	}
	_, err := io.WriteString(w, "# "+path+"\n")
	return err
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
