package display

import (
	"strings"
	"testing"
)

// lit wraps tokens with an anonymous origin for renderer tests; the
// plain-text renderer ignores origins entirely.
func lit(toks ...Token) []NodeToken[struct{}] {
	out := make([]NodeToken[struct{}], len(toks))
	for i, t := range toks {
		out[i] = NodeToken[struct{}]{Tok: t}
	}
	return out
}

func TestWriteTokens(t *testing.T) {
	tests := []struct {
		name string
		toks []NodeToken[struct{}]
		want string
	}{
		{
			"text runs",
			lit(Text("foo", CategoryIdent), Text("bar", CategoryError)),
			"foobar",
		},
		{
			"whitespace",
			lit(Text("a", CategoryDefault), Whitespace(3), Text("b", CategoryDefault)),
			"a   b",
		},
		{
			"newline keeps indentation",
			lit(Text("{", CategoryDefault), Indent(), Newline(),
				Text("x", CategoryDefault), Dedent(), Newline(),
				Text("}", CategoryDefault)),
			"{\n    x\n}",
		},
		{
			"nested indentation",
			lit(Indent(), Newline(), Indent(), Newline(),
				Text("deep", CategoryDefault), Dedent(), Dedent(), Newline()),
			"\n    \n        deep\n",
		},
		{
			"empty stream",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokensToString(tt.toks); got != tt.want {
				t.Fatalf("TokensToString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnbalancedDedentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("unbalanced Dedent did not panic")
		}
	}()
	var sb strings.Builder
	WriteTokens(&sb, lit(Dedent()))
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		toks []NodeToken[struct{}]
		want Size
	}{
		{"empty", nil, Size{}},
		{"single line", lit(Text("true", CategoryConst)), Size{Lines: 0, LastLine: 4}},
		{
			"whitespace counts",
			lit(Text("a", CategoryDefault), Whitespace(2), Text("b", CategoryDefault)),
			Size{Lines: 0, LastLine: 4},
		},
		{
			"multiline with indent",
			lit(Text("{", CategoryDefault), Indent(), Newline(),
				Text("x", CategoryDefault), Dedent(), Newline(),
				Text("}", CategoryDefault)),
			Size{Lines: 2, LastLine: 1},
		},
		{
			"last line includes indentation",
			lit(Indent(), Newline(), Text("ab", CategoryDefault)),
			Size{Lines: 1, LastLine: 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(tt.toks); got != tt.want {
				t.Fatalf("Measure = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTokenKindString(t *testing.T) {
	kinds := map[TokenKind]string{
		TextKind:       "Text",
		WhitespaceKind: "Whitespace",
		NewlineKind:    "Newline",
		IndentKind:     "Indent",
		DedentKind:     "Dedent",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestRecTok(t *testing.T) {
	child := &struct{ name string }{"child"}
	rt := Child(child)
	if got, ok := rt.AsChild(); !ok || got != child {
		t.Fatalf("AsChild = %v, %t", got, ok)
	}

	lt := Tok[*struct{ name string }](Text("x", CategoryDefault))
	if _, ok := lt.AsChild(); ok {
		t.Fatal("literal RecTok claims to be a child")
	}
	if got := lt.Token(); got.Text != "x" {
		t.Fatalf("Token() = %+v", got)
	}
}
