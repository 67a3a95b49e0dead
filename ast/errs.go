package ast

import "fmt"

// TooManyChildrenError reports an insertion that would push a node
// past its type's child-count ceiling.  The node is left unmodified.
type TooManyChildrenError struct {
	Name        string
	MaxChildren int
}

func (e *TooManyChildrenError) Error() string {
	return fmt.Sprintf("can't exceed child count limit of %d in %s", e.MaxChildren, e.Name)
}

// TooFewChildrenError reports a deletion that would leave a node with
// fewer children than its type permits.  The node is left unmodified.
type TooFewChildrenError struct {
	Name        string
	MinChildren int
}

func (e *TooFewChildrenError) Error() string {
	return fmt.Sprintf("node type %s can't have fewer than %d children", e.Name, e.MinChildren)
}

// IndexOutOfRangeError reports a deletion index outside the node's
// children.  Callers are expected never to produce one, but the
// contract promises an error rather than a panic if they do.
type IndexOutOfRangeError struct {
	Len   int
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("deleting child index %d is out of range 0..%d", e.Index, e.Len)
}
