package libdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString replaces from by to. When less than half of the shorter text
// changed, the text edits are kept in the change as well.
func DiffString(at *kpath.KPath, from, to *ir.Value) []Change {
	fs, _ := from.GetString()
	ts, _ := to.GetString()
	if fs == ts {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(fs, "\n") && strings.Contains(ts, "\n")
	diffs := diffCfg.DiffMain(fs, ts, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			diffSize += utf8.RuneCountInString(d.Text)
		}
	}
	c := MakeChange(at, from, to)
	if diffSize <= min(utf8.RuneCountInString(fs), utf8.RuneCountInString(ts))/2 {
		c.Text = diffs
	}
	return []Change{c}
}
