package display

import (
	"fmt"
	"strings"
)

// IndentWidth is the number of columns per indentation level.
const IndentWidth = 4

// WriteTokens renders a flattened token stream as plain text.  The
// syntax categories of Text tokens are ignored; they only matter to
// styled consumers.
//
// Indentation state is carried across Newline tokens: every newline is
// followed by the indentation accumulated from Indent/Dedent tokens so
// far.  An unbalanced Dedent means the emitting node's token stream is
// broken, so it panics rather than producing silently wrong text.
func WriteTokens[T any](sb *strings.Builder, toks []NodeToken[T]) {
	var indentation string
	for _, nt := range toks {
		switch nt.Tok.Kind {
		case TextKind:
			sb.WriteString(nt.Tok.Text)
		case WhitespaceKind:
			for range nt.Tok.Count {
				sb.WriteByte(' ')
			}
		case NewlineKind:
			sb.WriteByte('\n')
			sb.WriteString(indentation)
		case IndentKind:
			indentation += strings.Repeat(" ", IndentWidth)
		case DedentKind:
			if len(indentation) < IndentWidth {
				panic("display: unbalanced Dedent in token stream")
			}
			indentation = indentation[:len(indentation)-IndentWidth]
		default:
			panic(fmt.Sprintf("display: unknown token kind %d", nt.Tok.Kind))
		}
	}
}

// TokensToString renders a flattened token stream into a new string.
func TokensToString[T any](toks []NodeToken[T]) string {
	var sb strings.Builder
	WriteTokens(&sb, toks)
	return sb.String()
}
