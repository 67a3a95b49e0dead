package ast

import (
	"strings"

	"github.com/grove-editor/grove/display"
)

// WriteText appends the textual rendering of root to sb.
func WriteText[T Ast[T, F], F any](sb *strings.Builder, root T, style F) {
	display.WriteTokens(sb, DisplayTokens(root, style))
}

// ToText renders root to a new string.  It is a pure function of the
// tree and the style: re-rendering an unmodified tree yields the same
// text.
func ToText[T Ast[T, F], F any](root T, style F) string {
	var sb strings.Builder
	WriteText(&sb, root, style)
	return sb.String()
}
