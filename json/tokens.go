package json

import (
	"strconv"

	"github.com/grove-editor/grove/ast"
	"github.com/grove-editor/grove/display"
)

func tok(t display.Token) display.RecTok[*Node] {
	return display.Tok[*Node](t)
}

func punct(s string) display.RecTok[*Node] {
	return tok(display.Text(s, display.CategoryDefault))
}

func (n *Node) DisplayTokensRec(style Style) []display.RecTok[*Node] {
	switch n.Kind {
	case NullKind:
		return []display.RecTok[*Node]{tok(display.Text("null", display.CategoryConst))}
	case TrueKind:
		return []display.RecTok[*Node]{tok(display.Text("true", display.CategoryConst))}
	case FalseKind:
		return []display.RecTok[*Node]{tok(display.Text("false", display.CategoryConst))}
	case StrKind:
		return []display.RecTok[*Node]{
			tok(display.Text(strconv.Quote(n.Str), display.CategoryLiteral)),
		}
	case FieldKind:
		return []display.RecTok[*Node]{
			display.Child(n.children[0]),
			punct(":"),
			tok(display.Whitespace(1)),
			display.Child(n.children[1]),
		}
	case ArrayKind:
		return n.containerTokens(style, "[", "]")
	case ObjectKind:
		return n.containerTokens(style, "{", "}")
	default:
		panic("json: unknown node kind " + strconv.Itoa(int(n.Kind)))
	}
}

// containerTokens emits the delimiters and separators of an array or
// object around child references.  In the pretty style each child gets
// its own indented line; Indent and Dedent stay balanced within this
// node's own stream.
func (n *Node) containerTokens(style Style, open, close string) []display.RecTok[*Node] {
	if len(n.children) == 0 {
		return []display.RecTok[*Node]{punct(open + close)}
	}
	if style == Compact {
		toks := []display.RecTok[*Node]{punct(open)}
		for i, child := range n.children {
			if i > 0 {
				toks = append(toks, punct(","), tok(display.Whitespace(1)))
			}
			toks = append(toks, display.Child(child))
		}
		return append(toks, punct(close))
	}
	toks := []display.RecTok[*Node]{
		punct(open),
		tok(display.Indent()),
		tok(display.Newline()),
	}
	for i, child := range n.children {
		if i > 0 {
			toks = append(toks, punct(","), tok(display.Newline()))
		}
		toks = append(toks, display.Child(child))
	}
	return append(toks,
		tok(display.Dedent()),
		tok(display.Newline()),
		punct(close),
	)
}

func (n *Node) Size(style Style) display.Size {
	return ast.SizeOf(n, style)
}
