package json

import "hash/maphash"

// Equal reports structural equality: same kind, same payload, and
// pairwise-equal children.  Arena identity is irrelevant.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.Kind != other.Kind || n.Str != other.Str {
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

// hashSeed is shared so equal nodes hash equally for the process
// lifetime.
var hashSeed = maphash.MakeSeed()

// Hash returns a structural hash consistent with Equal.  It panics if
// n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("json: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Kind))
	if n.Kind == StrKind {
		h.WriteString(n.Str)
	}
	for _, child := range n.children {
		child.hashTo(h)
	}
	// Terminator so sibling lists of different shapes don't collide.
	h.WriteByte(0xff)
}
