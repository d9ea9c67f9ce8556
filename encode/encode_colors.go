package encode

import (
	"strings"

	"github.com/fatih/color"
)

// ColorAttr classifies the token being written for colouring.
type ColorAttr int

const (
	TagColor ColorAttr = iota
	FieldColor
	StringColor
	NumberColor
	BoolColor
	NullColor
	SepColor
)

// Colors maps token classes to colouring functions. Tokens without an
// entry use Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:    color.RGB(196, 96, 16).SprintfFunc(),
			FieldColor:  color.RGB(128, 168, 196).SprintfFunc(),
			StringColor: color.RGB(8, 196, 16).SprintfFunc(),
			NumberColor: color.RGB(128, 216, 236).SprintfFunc(),
			BoolColor:   color.CyanString,
			NullColor:   color.RGB(168, 0, 196).SprintfFunc(),
			SepColor:    color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
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
