package encode

import (
	"strings"

	"github.com/signadot/tomldoc/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	HeaderColor
	LiteralColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// palette lists the colors which differ from the default. Separators of
// every type share one color unless listed here.
var palette = []struct {
	able Colorable
	rgb  [3]int
}{
	{Colorable{ir.IntType, ValueColor}, [3]int{128, 216, 236}},
	{Colorable{ir.FloatType, ValueColor}, [3]int{128, 216, 236}},
	{Colorable{ir.DatetimeType, ValueColor}, [3]int{168, 0, 196}},
	{Colorable{ir.BoolType, ValueColor}, [3]int{0, 196, 196}},
	{Colorable{ir.StringType, ValueColor}, [3]int{8, 196, 16}},
	{Colorable{ir.StringType, LiteralColor}, [3]int{88, 158, 86}},
	{Colorable{ir.TableType, FieldColor}, [3]int{128, 168, 196}},
	{Colorable{ir.TableType, HeaderColor}, [3]int{196, 96, 16}},
	{Colorable{ir.TableType, SepColor}, [3]int{196, 128, 128}},
	{Colorable{ir.ArrayType, HeaderColor}, [3]int{196, 168, 128}},
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = escaped(color.RGB(255, 0, 196))
	}
	for _, p := range palette {
		colors.Map[p.able] = escaped(color.RGB(p.rgb[0], p.rgb[1], p.rgb[2]))
	}
	return colors
}

// escaped gives a color function which prints its argument verbatim.
func escaped(c *color.Color) func(string, ...any) string {
	f := c.SprintfFunc()
	return func(v string, _ ...any) string {
		return f(strings.ReplaceAll(v, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
