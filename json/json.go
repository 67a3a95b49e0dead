package json

import (
	"math"
	"slices"
	"strconv"

	"github.com/grove-editor/grove/arena"
	"github.com/grove-editor/grove/ast"
)

// Kind discriminates JSON node types.
type Kind int

const (
	NullKind Kind = iota
	TrueKind
	FalseKind
	StrKind
	ArrayKind
	ObjectKind
	// FieldKind is a key/value pair inside an object: exactly two
	// children, the key (a string node) and the value.
	FieldKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "null",
		TrueKind:   "true",
		FalseKind:  "false",
		StrKind:    "string",
		ArrayKind:  "array",
		ObjectKind: "object",
		FieldKind:  "field",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// MinChildren returns the smallest child count valid for k.
func (k Kind) MinChildren() int {
	if k == FieldKind {
		return 2
	}
	return 0
}

// MaxChildren returns the largest child count valid for k.
func (k Kind) MaxChildren() int {
	switch k {
	case ArrayKind, ObjectKind:
		return math.MaxInt
	case FieldKind:
		return 2
	default:
		return 0
	}
}

// Node is a JSON tree node.  Str holds the text of StrKind nodes; the
// other kinds carry no payload beyond their children.
type Node struct {
	Kind Kind
	Str  string

	children []*Node
}

var _ ast.Ast[*Node, Style] = (*Node)(nil)

// Arena owns JSON nodes for one document.
type Arena = arena.Arena[Node]

// NewArena returns an empty JSON arena.
func NewArena() *Arena {
	return arena.New[Node]()
}

// Null allocates a null node.
func Null(a *Arena) *Node { return a.Alloc(Node{Kind: NullKind}) }

// True allocates a true node.
func True(a *Arena) *Node { return a.Alloc(Node{Kind: TrueKind}) }

// False allocates a false node.
func False(a *Arena) *Node { return a.Alloc(Node{Kind: FalseKind}) }

// Str allocates a string node.
func Str(a *Arena, s string) *Node { return a.Alloc(Node{Kind: StrKind, Str: s}) }

// Array allocates an array node with the given elements.
func Array(a *Arena, elems ...*Node) *Node {
	return a.Alloc(Node{Kind: ArrayKind, children: slices.Clone(elems)})
}

// Object allocates an object node.  Every child must be a field node.
func Object(a *Arena, fields ...*Node) *Node {
	return a.Alloc(Node{Kind: ObjectKind, children: slices.Clone(fields)})
}

// Field allocates a key/value pair for use inside an object.
func Field(a *Arena, key, value *Node) *Node {
	return a.Alloc(Node{Kind: FieldKind, children: []*Node{key, value}})
}

// Clone allocates a deep copy of n and all its descendants in a.
// Snapshot-and-compare callers (undo layers, tests) use it to capture
// a tree before a mutation.
func (n *Node) Clone(a *Arena) *Node {
	dst := a.Alloc(Node{Kind: n.Kind, Str: n.Str})
	if len(n.children) > 0 {
		dst.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			dst.children[i] = child.Clone(a)
		}
	}
	return dst
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
	if n.Kind == ObjectKind && child.Kind != FieldKind {
		// Inserting a plain value into an object materializes the
		// rest of the pair: an empty key and the field itself, e.g.
		// {} -> {"": true}.
		key := alloc.NewNode()
		*key = Node{Kind: StrKind}
		field := alloc.NewNode()
		*field = Node{Kind: FieldKind, children: []*Node{key, child}}
		child = field
	}
	n.children = slices.Insert(n.children, index, child)
	return nil
}

func (n *Node) DisplayName() string {
	if n.Kind == StrKind {
		return strconv.Quote(n.Str)
	}
	return n.Kind.String()
}

// replaceChars are the shortcuts replacing a value node wholesale.
var replaceChars = []rune{'t', 'f', 'n', 's', 'a', 'o'}

func (n *Node) ReplaceChars() []rune {
	if n.Kind == FieldKind {
		return nil
	}
	return replaceChars
}

func (n *Node) FromChar(c rune, alloc ast.Allocator[*Node]) (*Node, bool) {
	if n.Kind == FieldKind {
		return nil, false
	}
	return NodeFromChar(c, alloc)
}

// NodeFromChar builds a fresh value node for a shortcut character:
// 't' true, 'f' false, 'n' null, 's' empty string, 'a' empty array,
// 'o' empty object.  It returns false for any other character.
func NodeFromChar(c rune, alloc ast.Allocator[*Node]) (*Node, bool) {
	var kind Kind
	switch c {
	case 't':
		kind = TrueKind
	case 'f':
		kind = FalseKind
	case 'n':
		kind = NullKind
	case 's':
		kind = StrKind
	case 'a':
		kind = ArrayKind
	case 'o':
		kind = ObjectKind
	default:
		return nil, false
	}
	node := alloc.NewNode()
	*node = Node{Kind: kind}
	return node, true
}

func (n *Node) InsertChars() []rune {
	switch n.Kind {
	case ArrayKind, ObjectKind:
		return replaceChars
	default:
		return nil
	}
}
