package json_test

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/grove-editor/grove/ast"
	"github.com/grove-editor/grove/display"
	"github.com/grove-editor/grove/json"
)

// genNode draws a random JSON tree of bounded depth into a.
func genNode(t *rapid.T, a *json.Arena, depth int) *json.Node {
	maxKind := 5
	if depth >= 3 {
		maxKind = 3 // leaves only
	}
	switch rapid.IntRange(0, maxKind).Draw(t, "kind") {
	case 0:
		return json.Null(a)
	case 1:
		return json.True(a)
	case 2:
		return json.False(a)
	case 3:
		return json.Str(a, rapid.SampledFrom([]string{"", "k", "key", "nested", "x y"}).Draw(t, "str"))
	case 4:
		n := rapid.IntRange(0, 3).Draw(t, "elems")
		elems := make([]*json.Node, n)
		for i := range elems {
			elems[i] = genNode(t, a, depth+1)
		}
		return json.Array(a, elems...)
	default:
		n := rapid.IntRange(0, 3).Draw(t, "fields")
		fields := make([]*json.Node, n)
		for i := range fields {
			key := json.Str(a, rapid.SampledFrom([]string{"", "a", "b", "c"}).Draw(t, "key"))
			fields[i] = json.Field(a, key, genNode(t, a, depth+1))
		}
		return json.Object(a, fields...)
	}
}

func countNodes(n *json.Node) int {
	total := 1
	for _, child := range n.Children() {
		total += countNodes(child)
	}
	return total
}

func checkArity(t *rapid.T, n *json.Node) {
	kids := len(n.Children())
	if kids < n.Kind.MinChildren() || kids > n.Kind.MaxChildren() {
		t.Fatalf("%s has %d children, outside [%d, %d]",
			n.DisplayName(), kids, n.Kind.MinChildren(), n.Kind.MaxChildren())
	}
	for _, child := range n.Children() {
		checkArity(t, child)
	}
}

func drawStyle(t *rapid.T) json.Style {
	return rapid.SampledFrom([]json.Style{json.Compact, json.Pretty}).Draw(t, "style")
}

func TestRenderDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := json.NewArena()
		root := genNode(t, a, 0)
		style := drawStyle(t)

		first := ast.DisplayTokens(root, style)
		second := ast.DisplayTokens(root, style)
		if !slices.Equal(first, second) {
			t.Fatalf("DisplayTokens not idempotent")
		}
		if ast.ToText(root, style) != ast.ToText(root, style) {
			t.Fatalf("ToText not deterministic")
		}
	})
}

func TestIndentBalance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := json.NewArena()
		root := genNode(t, a, 0)
		style := drawStyle(t)

		indents, dedents := 0, 0
		for _, nt := range ast.DisplayTokens(root, style) {
			switch nt.Tok.Kind {
			case display.IndentKind:
				indents++
			case display.DedentKind:
				dedents++
			}
		}
		if indents != dedents {
			t.Fatalf("%d Indent tokens vs %d Dedent tokens", indents, dedents)
		}
	})
}

func TestTreeViewLineCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := json.NewArena()
		root := genNode(t, a, 0)

		view := ast.TreeView(root)
		lines := 1
		for _, c := range view {
			if c == '\n' {
				lines++
			}
		}
		if want := countNodes(root); lines != want {
			t.Fatalf("tree view has %d lines, tree has %d nodes:\n%s", lines, want, view)
		}
	})
}

func TestMutationsPreserveArity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := json.NewArena()
		root := genNode(t, a, 0)
		checkArity(t, root)

		// Collect every node, pick a target and an operation.
		var nodes []*json.Node
		var collect func(*json.Node)
		collect = func(n *json.Node) {
			nodes = append(nodes, n)
			for _, child := range n.Children() {
				collect(child)
			}
		}
		collect(root)
		target := nodes[rapid.IntRange(0, len(nodes)-1).Draw(t, "target")]
		snapshot := root.Clone(a)
		before := len(target.Children())

		if rapid.Bool().Draw(t, "insert") {
			index := rapid.IntRange(0, before).Draw(t, "index")
			child, _ := json.NodeFromChar(rapid.SampledFrom([]rune{'t', 'f', 'n', 's', 'a', 'o'}).Draw(t, "char"), a)
			if err := target.InsertChild(child, a, index); err != nil {
				if !root.Equal(snapshot) {
					t.Fatalf("failed insert modified tree: %v", err)
				}
			} else if len(target.Children()) != before+1 {
				t.Fatalf("insert changed child count %d -> %d", before, len(target.Children()))
			}
		} else {
			// Deliberately allow index == len to exercise the
			// defensive bounds error.
			index := rapid.IntRange(0, before).Draw(t, "index")
			if err := target.DeleteChild(index); err != nil {
				if !root.Equal(snapshot) {
					t.Fatalf("failed delete modified tree: %v", err)
				}
			} else if len(target.Children()) != before-1 {
				t.Fatalf("delete changed child count %d -> %d", before, len(target.Children()))
			}
		}
		checkArity(t, root)
	})
}

func TestEqualImpliesEqualHash(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := json.NewArena()
		root := genNode(t, a, 0)
		clone := root.Clone(a)
		if !root.Equal(clone) {
			t.Fatalf("clone not Equal to original")
		}
		if root.Hash() != clone.Hash() {
			t.Fatalf("equal trees hash differently")
		}
	})
}
