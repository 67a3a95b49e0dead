package display

// Size is the on-screen extent of a rendered token stream: how many
// newlines it spans and how long its final line is, in columns.  A
// single-line render has Lines == 0.
type Size struct {
	Lines    int
	LastLine int
}

// Measure computes the Size of a flattened token stream, applying the
// same indentation rules as WriteTokens.
func Measure[T any](toks []NodeToken[T]) Size {
	var s Size
	indent := 0
	for _, nt := range toks {
		switch nt.Tok.Kind {
		case TextKind:
			s.LastLine += len(nt.Tok.Text)
		case WhitespaceKind:
			s.LastLine += nt.Tok.Count
		case NewlineKind:
			s.Lines++
			s.LastLine = indent
		case IndentKind:
			indent += IndentWidth
		case DedentKind:
			if indent < IndentWidth {
				panic("display: unbalanced Dedent in token stream")
			}
			indent -= IndentWidth
		}
	}
	return s
}
