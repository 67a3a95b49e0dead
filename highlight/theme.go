package highlight

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/grove-editor/grove/display"
)

// themeFile is the YAML shape of a theme:
//
//	colors:
//	  keyword: blue
//	  literal: "#c6c62e"
//	  underlined: underline
type themeFile struct {
	Colors map[string]string `yaml:"colors"`
}

var namedColors = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
	"bold":       color.Bold,
	"underline":  color.Underline,
}

// ParseColor resolves a theme color value: a named ANSI color (such
// as "red" or "hi-cyan"), "bold", "underline", or a "#rrggbb" hex
// triple.
func ParseColor(v string) (*color.Color, error) {
	if attr, ok := namedColors[v]; ok {
		return color.New(attr), nil
	}
	if len(v) == 7 && v[0] == '#' {
		r, errR := strconv.ParseUint(v[1:3], 16, 8)
		g, errG := strconv.ParseUint(v[3:5], 16, 8)
		b, errB := strconv.ParseUint(v[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGB(int(r), int(g), int(b)), nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", v)
}

// LoadTheme reads a YAML theme and returns the default scheme with
// the theme's entries applied on top.  Categories absent from the
// theme keep their defaults; the theme may also introduce entries for
// grammar-specific categories.
func LoadTheme(r io.Reader) (Scheme, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var tf themeFile
	if err := yaml.Unmarshal(d, &tf); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	scheme := DefaultScheme()
	for cat, v := range tf.Colors {
		c, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("theme entry %q: %w", cat, err)
		}
		scheme[display.SyntaxCategory(cat)] = c
	}
	return scheme, nil
}
