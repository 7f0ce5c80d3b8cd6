package libdiff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/parse"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func summaries(cs []Change) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.String()
	}
	return res
}

type diffTest struct {
	from, to string
	want     []string
}

func TestDiff(t *testing.T) {
	dts := []diffTest{
		{from: "a = 1", to: "a = 1", want: []string{}},
		{from: "a = 1", to: "a = 2", want: []string{"~ a = 1 -> 2"}},
		{from: "a = 1", to: "a = 1.0", want: []string{"~ a = 1 -> 1.0"}},
		{from: "a = 1\nb = 2", to: "a = 1", want: []string{"- b = 2"}},
		{from: "a = 1", to: "a = 1\nc = {x = true}", want: []string{"+ c = { x = true }"}},
		{
			from: "[t]\nx = 1\ny = 'keep'",
			to:   "[t]\nx = 3\ny = 'keep'",
			want: []string{"~ t.x = 1 -> 3"},
		},
		{
			from: `s = "one two four"`,
			to:   `s = "one two three four"`,
			want: []string{`~ s = "one two {+three +}four"`},
		},
		{
			from: `s = "the quick brown fox jumps"`,
			to:   `s = "the quick brown cat jumps"`,
			want: []string{`~ s = "the quick brown [-fox-]{+cat+} jumps"`},
		},
		{
			from: `s = "abc"`,
			to:   `s = "xyz"`,
			want: []string{`~ s = "abc" -> "xyz"`},
		},
		{
			from: "l = [1, 2, 3]",
			to:   "l = [1, 3]",
			want: []string{"- l[1] = 2"},
		},
		{
			from: "l = [1, 3]",
			to:   "l = [0, 1, 3, 4]",
			want: []string{"+ l[0] = 0", "+ l[3] = 4"},
		},
		{
			from: "l = [1, 2, 3]",
			to:   "l = [1, 9, 3]",
			want: []string{"~ l[1] = 2 -> 9"},
		},
		{
			from: "[[p]]\nn = 1\n[[p]]\nn = 2",
			to:   "[[p]]\nn = 1\n[[p]]\nn = 5",
			want: []string{"~ p[1].n = 2 -> 5"},
		},
		{
			from: "d = 1979-05-27",
			to:   "d = 1979-05-28",
			want: []string{"~ d = 1979-05-27 -> 1979-05-28"},
		},
		{
			from: `"a b" = 1`,
			to:   `"a b" = "1"`,
			want: []string{`~ "a b" = 1 -> "1"`},
		},
	}
	for _, dt := range dts {
		from, to := mustParse(t, dt.from), mustParse(t, dt.to)
		got := summaries(Diff(from, to))
		if diff := cmp.Diff(dt.want, got); diff != "" {
			t.Errorf("%q -> %q (-want +got):\n%s", dt.from, dt.to, diff)
		}
	}
}

func TestDiffRootType(t *testing.T) {
	cs := Diff(ir.FromInt(1), ir.NewTableValue())
	if len(cs) != 1 || cs[0].Op != Replace || cs[0].Path != nil {
		t.Fatalf("got %v", summaries(cs))
	}
	if cs[0].String() != "~ . = 1 -> {}" {
		t.Errorf("got %s", cs[0])
	}
}

var applyPairs = [][2]string{
	{"a = 1\nb = [1, 2, 3, 4]", "a = 2\nb = [9, 2, 8, 7, 4, 5]"},
	{"l = [1, 2, 3, 4, 5]", "l = [6, 7]"},
	{"l = [1, 2]", "l = [3, 4, 5, 6, 1]"},
	{"l = [[1, 2], {a = 1}]", "l = [[1, 3], {a = 2, b = 3}, []]"},
	{"[x]\ns = \"one two three\"\n[y]\nz = 1", "[x]\ns = \"one 2 three\"\n[y]\nz = 1\nw = 2"},
	{"a = 'x'", "a = ['x']"},
	{"", "k = {}"},
}

func TestApply(t *testing.T) {
	for _, p := range applyPairs {
		from, to := mustParse(t, p[0]), mustParse(t, p[1])
		cs := Diff(from, to)
		got, err := Apply(from, cs)
		if err != nil {
			t.Errorf("%q -> %q: %v", p[0], p[1], err)
			continue
		}
		if !ir.Equal(got, to) {
			t.Errorf("%q -> %q: apply gave %v", p[0], p[1], summaries(Diff(got, to)))
		}
		back, err := Apply(got, Reverse(cs))
		if err != nil {
			t.Errorf("%q <- %q: %v", p[0], p[1], err)
			continue
		}
		if !ir.Equal(back, from) {
			t.Errorf("%q <- %q: reverse gave %v", p[0], p[1], summaries(Diff(back, from)))
		}
	}
}

func TestApplyKeepsInput(t *testing.T) {
	from := mustParse(t, "a = 1")
	if _, err := Apply(from, Diff(from, mustParse(t, "a = 2"))); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(from, mustParse(t, "a = 1")) {
		t.Error("input changed")
	}
}

func TestApplyMismatch(t *testing.T) {
	cs := Diff(mustParse(t, "a = 1"), mustParse(t, "a = 2"))
	if _, err := Apply(mustParse(t, "a = 5"), cs); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
	ins := Diff(mustParse(t, ""), mustParse(t, "a = 2"))
	if _, err := Apply(mustParse(t, "a = 5"), ins); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
}

func TestReverseText(t *testing.T) {
	cs := Diff(mustParse(t, `s = "one two four"`), mustParse(t, `s = "one two three four"`))
	r := Reverse(cs)
	if got := r[0].String(); got != `~ s = "one two [-three -]four"` {
		t.Errorf("got %s", got)
	}
}
