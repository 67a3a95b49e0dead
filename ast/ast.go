package ast

import (
	"github.com/grove-editor/grove/display"
)

// Allocator hands out fresh nodes owned by a backing arena.  New
// references stay valid for the arena's lifetime.  *arena.Arena[N]
// satisfies Allocator[*N] through its NewNode method.
type Allocator[T any] interface {
	NewNode() T
}

// Ast is the contract every editable tree-node type implements.  T is
// the concrete node reference type (conventionally a pointer into an
// arena) and F is the grammar's format style, opaque to this package.
//
// Mutations return typed errors rather than panicking: structural
// edits are driven by live keystrokes, and an invalid edit is an
// expected outcome to report, not a bug.
type Ast[T, F any] interface {
	// Children returns the node's direct children in order.  The
	// slice aliases the node's own storage: callers may replace an
	// element to swap a child in place, but must not grow or shrink
	// it; use InsertChild and DeleteChild for that.
	Children() []T

	// DeleteChild removes the child at index.  It fails with
	// *TooFewChildrenError if removal would violate the node type's
	// minimum child count, and with *IndexOutOfRangeError if index
	// is not a valid position.  On failure the node is unmodified.
	DeleteChild(index int) error

	// InsertChild inserts child at index, allocating any auxiliary
	// nodes the grammar requires through alloc (for example, a value
	// inserted into an empty mapping also materializes an empty key).
	// It fails with *TooManyChildrenError if the insertion would
	// exceed the node type's child-count ceiling; on failure the node
	// and the arena behind alloc are unmodified.
	InsertChild(child T, alloc Allocator[T], index int) error

	// DisplayName is a short human label for debug views.  It must
	// not be used for equality.
	DisplayName() string

	// ReplaceChars enumerates the distinct shortcut characters that
	// each produce a valid whole-node replacement via FromChar.
	ReplaceChars() []rune

	// FromChar builds a replacement node for shortcut c, allocating
	// through alloc.  The second result is false when c is not a
	// replace char for this node; that is not an error, just the
	// absence of a shortcut.
	FromChar(c rune, alloc Allocator[T]) (T, bool)

	// InsertChars enumerates the shortcut characters valid for
	// inserting a new child into this node.
	InsertChars() []rune

	// DisplayTokensRec emits, in left-to-right document order, the
	// node's own rendering interleaved with references to its
	// children.  Indent/Dedent tokens must be balanced within the
	// returned sequence.
	DisplayTokensRec(style F) []display.RecTok[T]

	// Size reports the on-screen extent of this node's rendering for
	// the given style, consistent with DisplayTokensRec.
	Size(style F) display.Size

	// Equal reports structural equality with other.  Reference
	// identity is irrelevant: two separately allocated but
	// identically shaped trees are equal.
	Equal(other T) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64
}

// DisplayTokens flattens root's recursive self-description into a
// single ordered stream, pairing every literal token with the node
// that produced it.  Child references are expanded depth-first by
// recursing into the child's own stream, so a node controls exactly
// where its children appear (including punctuation between them).
func DisplayTokens[T Ast[T, F], F any](root T, style F) []display.NodeToken[T] {
	var out []display.NodeToken[T]
	return appendTokens(out, root, style)
}

func appendTokens[T Ast[T, F], F any](out []display.NodeToken[T], node T, style F) []display.NodeToken[T] {
	for _, rt := range node.DisplayTokensRec(style) {
		if child, ok := rt.AsChild(); ok {
			out = appendTokens(out, child, style)
			continue
		}
		out = append(out, display.NodeToken[T]{Node: node, Tok: rt.Token()})
	}
	return out
}

// IsReplaceChar reports whether c is one of node's replace shortcuts.
func IsReplaceChar(node interface{ ReplaceChars() []rune }, c rune) bool {
	for _, r := range node.ReplaceChars() {
		if r == c {
			return true
		}
	}
	return false
}

// IsInsertChar reports whether c is one of node's insert shortcuts.
func IsInsertChar(node interface{ InsertChars() []rune }, c rune) bool {
	for _, r := range node.InsertChars() {
		if r == c {
			return true
		}
	}
	return false
}

// SizeOf measures the rendered extent of root by flattening and
// measuring its token stream.  Grammars whose Size has no cheaper
// formulation can delegate to it directly.
func SizeOf[T Ast[T, F], F any](root T, style F) display.Size {
	return display.Measure(DisplayTokens(root, style))
}
