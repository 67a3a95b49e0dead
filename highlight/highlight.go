// Package highlight maps syntax categories to terminal presentation.
//
// A Scheme resolves the open-ended category tags carried by Text
// tokens to colors; categories with no entry degrade to the default
// presentation instead of failing, so grammars are free to invent
// categories.  Schemes can be overridden from YAML theme files.
package highlight

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/grove-editor/grove/display"
)

// Scheme maps syntax categories to colors.
type Scheme map[display.SyntaxCategory]*color.Color

// DefaultScheme returns the built-in color scheme.
func DefaultScheme() Scheme {
	return Scheme{
		display.CategoryDefault:    color.New(color.FgWhite),
		display.CategoryConst:      color.New(color.FgRed),
		display.CategoryLiteral:    color.New(color.FgYellow),
		display.CategoryComment:    color.New(color.FgGreen),
		display.CategoryIdent:      color.New(color.FgCyan),
		display.CategoryKeyword:    color.New(color.FgBlue),
		display.CategoryPreproc:    color.New(color.FgMagenta),
		display.CategoryType:       color.New(color.FgHiYellow),
		display.CategorySpecial:    color.New(color.FgHiGreen),
		display.CategoryUnderlined: color.New(color.Underline),
		display.CategoryError:      color.New(color.FgHiRed),
	}
}

// Get resolves a category, falling back to the default entry for
// categories the scheme does not know.  It returns nil when the
// scheme has no default either; callers then render unstyled.
func (s Scheme) Get(cat display.SyntaxCategory) *color.Color {
	if c, ok := s[cat]; ok {
		return c
	}
	return s[display.CategoryDefault]
}

// Render materializes a flattened token stream as ANSI-styled text.
// Layout (whitespace, newlines, indentation) is identical to the
// plain-text renderer; only Text tokens are painted.
func Render[T any](toks []display.NodeToken[T], scheme Scheme) string {
	var sb strings.Builder
	var indentation string
	for _, nt := range toks {
		switch nt.Tok.Kind {
		case display.TextKind:
			if c := scheme.Get(nt.Tok.Category); c != nil {
				sb.WriteString(c.Sprint(nt.Tok.Text))
			} else {
				sb.WriteString(nt.Tok.Text)
			}
		case display.WhitespaceKind:
			for range nt.Tok.Count {
				sb.WriteByte(' ')
			}
		case display.NewlineKind:
			sb.WriteByte('\n')
			sb.WriteString(indentation)
		case display.IndentKind:
			indentation += strings.Repeat(" ", display.IndentWidth)
		case display.DedentKind:
			if len(indentation) < display.IndentWidth {
				panic("highlight: unbalanced Dedent in token stream")
			}
			indentation = indentation[:len(indentation)-display.IndentWidth]
		}
	}
	return sb.String()
}

// Hasher is the part of the node contract debug highlighting needs.
type Hasher interface {
	Hash() uint64
}

var debugPalette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
}

// RenderDebug colors every text token by the hash of the node that
// produced it, ignoring the scheme.  Useless for editing, very useful
// for seeing which node owns which span of the render.
func RenderDebug[T Hasher](toks []display.NodeToken[T]) string {
	var sb strings.Builder
	var indentation string
	for _, nt := range toks {
		switch nt.Tok.Kind {
		case display.TextKind:
			c := debugPalette[nt.Node.Hash()%uint64(len(debugPalette))]
			sb.WriteString(c.Sprint(nt.Tok.Text))
		case display.WhitespaceKind:
			for range nt.Tok.Count {
				sb.WriteByte(' ')
			}
		case display.NewlineKind:
			sb.WriteByte('\n')
			sb.WriteString(indentation)
		case display.IndentKind:
			indentation += strings.Repeat(" ", display.IndentWidth)
		case display.DedentKind:
			if len(indentation) < display.IndentWidth {
				panic("highlight: unbalanced Dedent in token stream")
			}
			indentation = indentation[:len(indentation)-display.IndentWidth]
		}
	}
	return sb.String()
}

// Enabled reports whether w is a terminal that should receive color.
func Enabled(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
