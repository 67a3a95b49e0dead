package highlight

import (
	"strings"
	"testing"

	"github.com/grove-editor/grove/display"
)

func TestLoadTheme(t *testing.T) {
	theme := `
colors:
  keyword: hi-blue
  literal: "#c6c62e"
  my-category: underline
`
	scheme, err := LoadTheme(strings.NewReader(theme))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if scheme[display.CategoryKeyword] == nil {
		t.Fatal("keyword entry missing")
	}
	if scheme[display.SyntaxCategory("my-category")] == nil {
		t.Fatal("grammar-specific category not loaded")
	}
	// Untouched defaults survive.
	if scheme[display.CategoryConst] == nil {
		t.Fatal("default entry lost")
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("colors:\n  keyword: chartreuse\n"))
	if err == nil {
		t.Fatal("unknown color name accepted")
	}
	if !strings.Contains(err.Error(), "chartreuse") {
		t.Fatalf("error does not name the bad color: %v", err)
	}
}

func TestLoadThemeBadYAML(t *testing.T) {
	if _, err := LoadTheme(strings.NewReader("colors: [")); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}

func TestParseColorHex(t *testing.T) {
	if _, err := ParseColor("#00ff00"); err != nil {
		t.Fatalf("ParseColor(#00ff00): %v", err)
	}
	for _, bad := range []string{"#00ff0", "#00ff0g", "00ff00", ""} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) accepted", bad)
		}
	}
}
