package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tomldoc/eval"
	"github.com/signadot/tomldoc/ir"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

type buffer struct{ bytes.Buffer }

func (*buffer) Close() error { return nil }

type result struct {
	out, err string
}

func run(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()
	out, errOut := &buffer{}, &buffer{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader(stdin)),
		Out: out,
		Err: errOut,
		Go:  context.Background(),
	}
	err := MainCommand().Run(cc, args)
	return result{out: out.String(), err: errOut.String()}, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

const servers = `ports = [80, 443]

[servers.alpha]
ip = "10.0.0.1"

[servers.beta]
ip = "10.0.0.2"
`

func TestCommands(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "fmt",
			stdin: "b = 1\na = { x = 2 }\n",
			args:  []string{"fmt"},
			want:  "b = 1\n\n[a]\nx = 2\n",
		},
		{
			name:  "fmt json",
			stdin: "a = 1\n[t]\ns = \"x\"\n",
			args:  []string{"-O", "json", "fmt"},
			want:  "{\n  \"a\": 1,\n  \"t\": {\n    \"s\": \"x\"\n  }\n}\n",
		},
		{
			name:  "get",
			stdin: servers,
			args:  []string{"get", "servers.alpha.ip"},
			want:  "\"10.0.0.1\"\n",
		},
		{
			name:  "get json",
			stdin: servers,
			args:  []string{"-O", "json", "get", "ports"},
			want:  "[80,443]\n",
		},
		{
			name:  "get position",
			stdin: servers,
			args:  []string{"get", "-n", "servers.alpha.ip"},
			want:  "<stdin>:4:6: \"10.0.0.1\"\n",
		},
		{
			name:  "list",
			stdin: servers,
			args:  []string{"list", "servers.*.ip"},
			want:  "servers.alpha.ip = \"10.0.0.1\"\nservers.beta.ip = \"10.0.0.2\"\n",
		},
		{
			name:  "set",
			stdin: "a = 1\n",
			args:  []string{"set", `owner.name="Tom"`},
			want:  "a = 1\n\n[owner]\nname = \"Tom\"\n",
		},
		{
			name:  "del",
			stdin: "a = [1, 2, 3]\nb = true\n",
			args:  []string{"del", "a[0]"},
			want:  "a = [2, 3]\nb = true\n",
		},
		{
			name:  "convert",
			stdin: "a = [1, 2.5]\n",
			args:  []string{"convert"},
			want:  "{\n  \"a\": [\n    1,\n    2.5\n  ]\n}\n",
		},
		{
			name:  "convert json input",
			stdin: `{"a": {"b": "c"}, "n": null, "x": 1}`,
			args:  []string{"-I", "json", "convert"},
			want:  "a = { b = \"c\" }\nx = 1\n",
		},
		{
			name:  "patch",
			stdin: "a = 1\nb = 2\n",
			args:  []string{"patch", "-s", "-p", `[{"op": "replace", "path": "/a", "value": 3}]`},
			want:  "a = 3\nb = 2\n",
		},
		{
			name:  "eval",
			stdin: "a = 1\n",
			args:  []string{"eval", "a + 1"},
			want:  "2\n",
		},
		{
			name:  "eval vars",
			stdin: "a = 1\n",
			args:  []string{"eval", "-e", "who=tom", `who + "!"`},
			want:  "\"tom!\"\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := run(t, c.stdin, c.args...)
			if err != nil {
				t.Fatalf("%v\n%s", err, res.err)
			}
			if diff := cmp.Diff(c.want, res.out); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if _, err := run(t, "a = 1\n", "check"); err != nil {
		t.Errorf("got %v", err)
	}
	res, err := run(t, "a = \n", "check")
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Fatalf("got %v", err)
	}
	if !strings.HasPrefix(res.err, "<stdin>:1:") {
		t.Errorf("diagnostic %q", res.err)
	}
}

func TestDiff(t *testing.T) {
	a := writeFile(t, "a.toml", "a = 1\n")
	b := writeFile(t, "b.toml", "a = 2\nb = true\n")
	res, err := run(t, "", "diff", a, b)
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff("~ a = 1 -> 2\n+ b = true\n", res.out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	res, err = run(t, "", "diff", a, a)
	if err != nil || res.out != "" {
		t.Errorf("same file: %v %q", err, res.out)
	}
}

func TestWriteBack(t *testing.T) {
	p := writeFile(t, "doc.toml", "a = 1\n")
	res, err := run(t, "", "set", "-w", "b=[1, 2]", p)
	if err != nil {
		t.Fatal(err)
	}
	if res.out != "" {
		t.Errorf("output %q", res.out)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a = 1\nb = [1, 2]\n", string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestConvertWrite(t *testing.T) {
	p := writeFile(t, "doc.toml", "a = 1\n")
	res, err := run(t, "", "convert", "-w", p)
	if err != nil {
		t.Fatal(err)
	}
	if res.out != "" {
		t.Errorf("output %q", res.out)
	}
	d, err := os.ReadFile(strings.TrimSuffix(p, ".toml") + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("{\n  \"a\": 1\n}\n", string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := run(t, "", "-O", "toml", "convert", "-w", p); err == nil {
		t.Error("converted onto the source")
	}
	if d, _ := os.ReadFile(p); string(d) != "a = 1\n" {
		t.Errorf("source changed: %q", d)
	}
}

func TestConvertYAML(t *testing.T) {
	p := writeFile(t, "doc.yaml", "name: x\nports:\n  - 80\n  - 443\n")
	res, err := run(t, "", "convert", p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("name = \"x\"\nports = [80, 443]\n", res.out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEvalMatch(t *testing.T) {
	on := writeFile(t, "on.toml", "enabled = true\n")
	off := writeFile(t, "off.toml", "enabled = false\n")
	res, err := run(t, "", "eval", "-m", "enabled", on, off)
	if err != nil {
		t.Fatal(err)
	}
	if res.out != on+"\n" {
		t.Errorf("got %q", res.out)
	}
	_, err = run(t, "", "eval", "-m", "enabled", off)
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Errorf("got %v", err)
	}
}

func TestEnvFunc(t *testing.T) {
	env := eval.Env{}
	if err := envFunc(env, "a.b=x"); err != nil {
		t.Fatal(err)
	}
	if err := envFunc(env, "c=[1, 2]"); err != nil {
		t.Fatal(err)
	}
	inner, ok := env["a"].(map[string]any)
	if !ok || inner["b"] != "x" {
		t.Errorf("got %v", env["a"])
	}
	if l, ok := env["c"].([]any); !ok || len(l) != 2 {
		t.Errorf("got %v", env["c"])
	}
	if err := envFunc(env, "a.b.c=1"); err == nil {
		t.Error("descended into a scalar")
	}
	if err := envFunc(env, "nope"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestRecheck(t *testing.T) {
	p := writeFile(t, "w.toml", "a = 1\n")
	out := &buffer{}
	cc := &cli.Context{Out: out, Err: &buffer{}, Go: context.Background()}
	cfg := &WatchConfig{MainConfig: &MainConfig{Main: cli.NewCommand("tomldoc")}, Diff: true}

	first := cfg.recheck(cc, p, nil)
	if first == nil {
		t.Fatal("no document")
	}
	if err := os.WriteFile(p, []byte("a = \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := cfg.recheck(cc, p, first); got != first {
		t.Error("invalid file replaced the document")
	}
	if err := os.WriteFile(p, []byte("a = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	next := cfg.recheck(cc, p, first)
	if ir.Equal(next, first) {
		t.Error("document not reloaded")
	}
	if out.String() != "~ a = 1 -> 2\n" {
		t.Errorf("changes %q", out.String())
	}
}
