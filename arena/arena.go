// Package arena provides allocation-only node storage for one tree.
//
// An Arena owns every node of a tree for the lifetime of an editing
// session.  Nodes reference each other only through pointers handed out
// by Alloc; the arena never frees or moves a node, so those pointers
// stay valid until the whole arena is dropped.
package arena

// chunkSize is the number of nodes per backing chunk.  Chunks are
// allocated at full capacity and never grown, so node addresses are
// stable across later allocations.
const chunkSize = 64

// Arena owns a growable collection of nodes of type N.
//
// The zero Arena is ready to use.  An Arena must be confined to a
// single goroutine; a concurrent host must serialize access externally.
type Arena[N any] struct {
	chunks [][]N
	count  int
}

// New returns an empty arena.
func New[N any]() *Arena[N] {
	return &Arena[N]{}
}

// Alloc copies v into the arena and returns a pointer to the stored
// node.  The pointer is valid for the arena's entire lifetime.
func (a *Arena[N]) Alloc(v N) *N {
	last := len(a.chunks) - 1
	if last < 0 || len(a.chunks[last]) == cap(a.chunks[last]) {
		a.chunks = append(a.chunks, make([]N, 0, chunkSize))
		last++
	}
	a.chunks[last] = append(a.chunks[last], v)
	a.count++
	return &a.chunks[last][len(a.chunks[last])-1]
}

// NewNode allocates a zero node.  It exists so that *Arena[N]
// satisfies allocator interfaces taking *N.
func (a *Arena[N]) NewNode() *N {
	var zero N
	return a.Alloc(zero)
}

// Len returns the number of nodes allocated so far.
func (a *Arena[N]) Len() int {
	return a.count
}

// Each calls f for every allocated node in allocation order, stopping
// early if f returns false.
func (a *Arena[N]) Each(f func(*N) bool) {
	for _, c := range a.chunks {
		for i := range c {
			if !f(&c[i]) {
				return
			}
		}
	}
}
