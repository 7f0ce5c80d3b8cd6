package main

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/libdiff"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 || args[0] == "-" {
		return fmt.Errorf("%w: watch requires one file", cli.ErrUsage)
	}
	file := args[0]
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("could not watch %q: %w", file, err)
	}
	ctx := cc.Go
	last := cfg.recheck(cc, file, nil)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch %s\n", ev)
			}
			switch {
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
				last = cfg.recheck(cc, file, last)
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				theLog.WarnContext(ctx, "removed", "file", file)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			theLog.WarnContext(ctx, "error watching", "file", file, "err", err)
		}
	}
}

// recheck loads file and reports on it. It returns the new document, or
// last if the file does not load.
func (cfg *WatchConfig) recheck(cc *cli.Context, file string, last *ir.Value) *ir.Value {
	doc, _, err := cfg.load(cc, file)
	if err != nil {
		theLog.ErrorContext(cc.Go, "invalid", "file", file, "err", err)
		return last
	}
	theLog.InfoContext(cc.Go, "ok", "file", file)
	if cfg.Diff && last != nil {
		if err := writeChanges(cc.Out, libdiff.Diff(last, doc), cfg.colored(cc.Out)); err != nil {
			theLog.WarnContext(cc.Go, "error writing changes", "err", err)
		}
	}
	return doc
}
