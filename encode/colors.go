package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	LiteralColor
	KeywordColor
	MarkerColor
	DepthColor
	SepColor
	DiffInsertColor
	DiffDeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NameColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[LiteralColor] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[KeywordColor] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[MarkerColor] = color.RGB(196, 168, 128).SprintfFunc()
	colors.Map[DepthColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[DiffInsertColor] = color.GreenString
	colors.Map[DiffDeleteColor] = color.RedString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
