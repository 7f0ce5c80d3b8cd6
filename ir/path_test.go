package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tomldoc/ir/kpath"
)

func pathDoc() *Value {
	alpha := NewTable()
	alpha.Insert("ip", MustFromString("10.0.0.1"))
	beta := NewTable()
	beta.Insert("ip", MustFromString("10.0.0.2"))
	servers := NewTable()
	servers.Insert("alpha", FromTable(alpha))
	servers.Insert("beta", FromTable(beta))
	root := NewTable()
	root.Insert("servers", FromTable(servers))
	root.Insert("ports", FromArray(FromSlice([]*Value{FromInt(80), FromInt(443)})))
	return FromTable(root)
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	v, err := GetPath(doc, kpath.MustParse("servers.beta.ip"))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := v.GetString(); s != "10.0.0.2" {
		t.Errorf("got %q", s)
	}
	v, err = GetPath(doc, kpath.MustParse("ports[1]"))
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := v.GetInt(); i != 443 {
		t.Errorf("got %d", i)
	}
	if v, _ := GetPath(doc, nil); v != doc {
		t.Error("nil path is not the root")
	}
	for _, p := range []string{"servers.gamma", "ports[2]", "ports.x", "servers[0]", "servers.*"} {
		if _, err := GetPath(doc, kpath.MustParse(p)); !errors.Is(err, ErrPath) {
			t.Errorf("%s: got %v", p, err)
		}
	}
}

func TestListPath(t *testing.T) {
	doc := pathDoc()
	var got []string
	for _, pv := range ListPath(doc, kpath.MustParse("servers.*.ip")) {
		s, _ := pv.Value.GetString()
		got = append(got, pv.Path.String()+"="+s)
	}
	want := []string{"servers.alpha.ip=10.0.0.1", "servers.beta.ip=10.0.0.2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n := len(ListPath(doc, kpath.MustParse("ports[*]"))); n != 2 {
		t.Errorf("ports[*] matched %d", n)
	}
	if n := len(ListPath(doc, kpath.MustParse("*.ip"))); n != 0 {
		t.Errorf("*.ip matched %d", n)
	}
}

func TestSetPath(t *testing.T) {
	doc := pathDoc()
	if err := SetPath(doc, kpath.MustParse("owner.name"), MustFromString("Tom")); err != nil {
		t.Fatal(err)
	}
	v, err := GetPath(doc, kpath.MustParse("owner.name"))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := v.GetString(); s != "Tom" {
		t.Errorf("got %q", s)
	}
	if err := SetPath(doc, kpath.MustParse("ports[2]"), FromInt(8080)); err != nil {
		t.Fatal(err)
	}
	if err := SetPath(doc, kpath.MustParse("ports[0]"), FromInt(81)); err != nil {
		t.Fatal(err)
	}
	ports, _ := GetPath(doc, kpath.MustParse("ports"))
	if !Equal(ports, FromArray(FromSlice([]*Value{FromInt(81), FromInt(443), FromInt(8080)}))) {
		t.Error("ports not updated")
	}
	for _, p := range []string{"ports[9]", "ports.x", "servers.alpha.ip.x", "ports[*]"} {
		if err := SetPath(doc, kpath.MustParse(p), FromInt(0)); !errors.Is(err, ErrPath) {
			t.Errorf("%s: got %v", p, err)
		}
	}
}

func TestSetPathRoot(t *testing.T) {
	doc := pathDoc()
	if err := SetPath(doc, nil, doc); err != nil {
		t.Fatal(err)
	}
	if !Equal(doc, pathDoc()) {
		t.Fatal("document changed by storing itself")
	}
	tbl, _ := doc.GetTable()
	if !tbl.Remove("ports") {
		t.Error("table unusable")
	}

	doc = pathDoc()
	if err := SetPath(doc, kpath.MustParse("servers.copy"), doc); err != nil {
		t.Fatal(err)
	}
	got, err := GetPath(doc, kpath.MustParse("servers.copy.servers.alpha.ip"))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := got.GetString(); s != "10.0.0.1" {
		t.Errorf("got %q", s)
	}
	if _, err := GetPath(doc, kpath.MustParse("servers.copy.servers.copy")); !errors.Is(err, ErrPath) {
		t.Errorf("copy holds itself: %v", err)
	}

	doc = pathDoc()
	servers, _ := GetPath(doc, kpath.MustParse("servers"))
	if err := SetPath(doc, nil, servers); err != nil {
		t.Fatal(err)
	}
	if _, err := GetPath(doc, kpath.MustParse("beta.ip")); err != nil {
		t.Error(err)
	}
}

func TestDeletePath(t *testing.T) {
	doc := pathDoc()
	if err := DeletePath(doc, kpath.MustParse("servers.alpha")); err != nil {
		t.Fatal(err)
	}
	servers, _ := GetPath(doc, kpath.MustParse("servers"))
	st, _ := servers.GetTable()
	if diff := cmp.Diff([]string{"beta"}, st.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := DeletePath(doc, kpath.MustParse("ports[0]")); err != nil {
		t.Fatal(err)
	}
	if err := DeletePath(doc, kpath.MustParse("ports[5]")); !errors.Is(err, ErrPath) {
		t.Errorf("got %v", err)
	}
	if err := DeletePath(doc, nil); !errors.Is(err, ErrPath) {
		t.Errorf("got %v", err)
	}
}
