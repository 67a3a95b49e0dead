package display

// SyntaxCategory names a syntax highlighting class.  It is an open set:
// grammars may emit any string, and consumers must fall back to
// CategoryDefault for categories they do not recognize.
type SyntaxCategory string

// Conventional categories.  Grammars are not limited to these.
const (
	CategoryDefault    SyntaxCategory = "default"    // punctuation and other unhighlighted text
	CategoryConst      SyntaxCategory = "const"      // constant values like 'true', 'false'
	CategoryLiteral    SyntaxCategory = "literal"    // literal values like strings or numbers
	CategoryComment    SyntaxCategory = "comment"    // comments
	CategoryIdent      SyntaxCategory = "ident"      // identifiers: variable and function names
	CategoryKeyword    SyntaxCategory = "keyword"    // names reserved by the language
	CategoryPreproc    SyntaxCategory = "preproc"    // preprocessor directives
	CategoryType       SyntaxCategory = "type"       // datatype names
	CategorySpecial    SyntaxCategory = "special"    // escaped characters and the like
	CategoryUnderlined SyntaxCategory = "underlined" // legacy: underlined text
	CategoryError      SyntaxCategory = "error"      // code that is an error
)

// TokenKind discriminates the variants of Token.
type TokenKind int

const (
	TextKind TokenKind = iota
	WhitespaceKind
	NewlineKind
	IndentKind
	DedentKind
)

func (k TokenKind) String() string {
	switch k {
	case TextKind:
		return "Text"
	case WhitespaceKind:
		return "Whitespace"
	case NewlineKind:
		return "Newline"
	case IndentKind:
		return "Indent"
	case DedentKind:
		return "Dedent"
	default:
		return "<unknown kind>"
	}
}

// Token is a single atomic rendering instruction emitted by a node.
// Only the fields relevant to Kind are set.
type Token struct {
	Kind TokenKind

	// Text fields (TextKind)
	Text     string
	Category SyntaxCategory

	// Count field (WhitespaceKind)
	Count int
}

// Text returns a token rendering s in the given category.
func Text(s string, cat SyntaxCategory) Token {
	return Token{Kind: TextKind, Text: s, Category: cat}
}

// Whitespace returns a token rendering n spaces.
func Whitespace(n int) Token {
	return Token{Kind: WhitespaceKind, Count: n}
}

// Newline returns a token that starts a new line at the current
// indentation level.
func Newline() Token {
	return Token{Kind: NewlineKind}
}

// Indent returns a token adding one indentation level.  Every Indent a
// node emits must be balanced by a Dedent from the same node.
func Indent() Token {
	return Token{Kind: IndentKind}
}

// Dedent returns a token removing one indentation level.
func Dedent() Token {
	return Token{Kind: DedentKind}
}

// RecTok is one unit of a node's self-description: either a literal
// token to emit, or a reference to a child node whose own token stream
// is spliced in at this position.
type RecTok[T any] struct {
	tok     Token
	child   T
	isChild bool
}

// Tok wraps a literal token.
func Tok[T any](t Token) RecTok[T] {
	return RecTok[T]{tok: t}
}

// Child wraps a child reference.
func Child[T any](c T) RecTok[T] {
	return RecTok[T]{child: c, isChild: true}
}

// Token returns the literal token.  Only meaningful when AsChild
// reports false.
func (r RecTok[T]) Token() Token {
	return r.tok
}

// AsChild returns the child reference and whether this RecTok is one.
func (r RecTok[T]) AsChild() (T, bool) {
	return r.child, r.isChild
}

// NodeToken pairs a token with the node that produced it.  The node
// identity lets layout components map screen regions back to tree
// positions.
type NodeToken[T any] struct {
	Node T
	Tok  Token
}
