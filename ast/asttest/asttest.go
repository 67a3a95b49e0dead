// Package asttest provides a minimal tree grammar for exercising the
// node contract in tests.  Its node kinds cover the interesting arity
// windows: unconstrained (List), exactly two (Pair), at least one
// (Record) and none (Leaf).
package asttest

import (
	"hash/maphash"
	"math"
	"slices"

	"github.com/grove-editor/grove/arena"
	"github.com/grove-editor/grove/ast"
	"github.com/grove-editor/grove/display"
)

// Style carries no options; the fixture grammar renders one way.
type Style struct{}

// Kind discriminates fixture node types.
type Kind int

const (
	LeafKind Kind = iota
	PairKind
	RecordKind
	ListKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case PairKind:
		return "pair"
	case RecordKind:
		return "record"
	case ListKind:
		return "list"
	default:
		return "<unknown kind>"
	}
}

// MinChildren returns the smallest child count valid for k.
func (k Kind) MinChildren() int {
	switch k {
	case PairKind:
		return 2
	case RecordKind:
		return 1
	default:
		return 0
	}
}

// MaxChildren returns the largest child count valid for k.
func (k Kind) MaxChildren() int {
	switch k {
	case LeafKind:
		return 0
	case PairKind:
		return 2
	case RecordKind:
		return 3
	default:
		return math.MaxInt
	}
}

// Node is a fixture tree node.
type Node struct {
	Kind  Kind
	Label string

	children []*Node
}

var _ ast.Ast[*Node, Style] = (*Node)(nil)

// Arena owns fixture nodes.
type Arena = arena.Arena[Node]

// Leaf allocates a leaf node with the given label.
func Leaf(a *Arena, label string) *Node {
	return a.Alloc(Node{Kind: LeafKind, Label: label})
}

// Pair allocates a two-child node.
func Pair(a *Arena, left, right *Node) *Node {
	return a.Alloc(Node{Kind: PairKind, children: []*Node{left, right}})
}

// Record allocates a one-to-three-child node.  The caller is
// responsible for passing a valid child count.
func Record(a *Arena, kids ...*Node) *Node {
	return a.Alloc(Node{Kind: RecordKind, children: slices.Clone(kids)})
}

// List allocates an unconstrained node.
func List(a *Arena, kids ...*Node) *Node {
	return a.Alloc(Node{Kind: ListKind, children: slices.Clone(kids)})
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) DeleteChild(index int) error {
	if index < 0 || index >= len(n.children) {
		return &ast.IndexOutOfRangeError{Len: len(n.children), Index: index}
	}
	if minc := n.Kind.MinChildren(); len(n.children)-1 < minc {
		return &ast.TooFewChildrenError{Name: n.DisplayName(), MinChildren: minc}
	}
	n.children = slices.Delete(n.children, index, index+1)
	return nil
}

func (n *Node) InsertChild(child *Node, alloc ast.Allocator[*Node], index int) error {
	if maxc := n.Kind.MaxChildren(); len(n.children)+1 > maxc {
		return &ast.TooManyChildrenError{Name: n.DisplayName(), MaxChildren: maxc}
	}
	n.children = slices.Insert(n.children, index, child)
	return nil
}

func (n *Node) DisplayName() string {
	if n.Kind == LeafKind && n.Label != "" {
		return n.Label
	}
	return n.Kind.String()
}

func (n *Node) ReplaceChars() []rune {
	return []rune{'l'}
}

func (n *Node) FromChar(c rune, alloc ast.Allocator[*Node]) (*Node, bool) {
	if c != 'l' {
		return nil, false
	}
	repl := alloc.NewNode()
	*repl = Node{Kind: LeafKind}
	return repl, true
}

func (n *Node) InsertChars() []rune {
	if n.Kind == LeafKind {
		return nil
	}
	return []rune{'l'}
}

func (n *Node) DisplayTokensRec(style Style) []display.RecTok[*Node] {
	if n.Kind == LeafKind {
		return []display.RecTok[*Node]{
			display.Tok[*Node](display.Text(n.DisplayName(), display.CategoryIdent)),
		}
	}
	toks := []display.RecTok[*Node]{
		display.Tok[*Node](display.Text(n.Kind.String(), display.CategoryKeyword)),
		display.Tok[*Node](display.Text("(", display.CategoryDefault)),
	}
	for i, child := range n.children {
		if i > 0 {
			toks = append(toks,
				display.Tok[*Node](display.Text(",", display.CategoryDefault)),
				display.Tok[*Node](display.Whitespace(1)),
			)
		}
		toks = append(toks, display.Child(child))
	}
	return append(toks, display.Tok[*Node](display.Text(")", display.CategoryDefault)))
}

func (n *Node) Size(style Style) display.Size {
	return ast.SizeOf(n, style)
}

func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.Kind != other.Kind || n.Label != other.Label {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, child := range n.children {
		if !child.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

var hashSeed = maphash.MakeSeed()

func (n *Node) Hash() uint64 {
	if n == nil {
		panic("asttest: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Kind))
	h.WriteString(n.Label)
	for _, child := range n.children {
		child.hashTo(h)
	}
	h.WriteByte(0xff)
}
