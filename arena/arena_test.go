package arena

import "testing"

type testNode struct {
	id   int
	next *testNode
}

func TestAllocStablePointers(t *testing.T) {
	a := New[testNode]()
	var ptrs []*testNode
	// Cross several chunk boundaries.
	for i := 0; i < 10*chunkSize+7; i++ {
		ptrs = append(ptrs, a.Alloc(testNode{id: i}))
	}
	if got := a.Len(); got != 10*chunkSize+7 {
		t.Fatalf("Len() = %d, want %d", got, 10*chunkSize+7)
	}
	for i, p := range ptrs {
		if p.id != i {
			t.Fatalf("node %d relocated or overwritten: id = %d", i, p.id)
		}
	}
}

func TestAllocLinks(t *testing.T) {
	a := New[testNode]()
	first := a.Alloc(testNode{id: 1})
	second := a.Alloc(testNode{id: 2, next: first})
	// Force more chunks; earlier links must survive.
	for i := 0; i < 3*chunkSize; i++ {
		a.Alloc(testNode{id: 100 + i})
	}
	if second.next != first {
		t.Fatal("link to earlier node broken after growth")
	}
	if second.next.id != 1 {
		t.Fatalf("linked node corrupted: id = %d", second.next.id)
	}
}

func TestNewNode(t *testing.T) {
	a := New[testNode]()
	n := a.NewNode()
	if n.id != 0 || n.next != nil {
		t.Fatalf("NewNode() not zero: %+v", n)
	}
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
}

func TestEach(t *testing.T) {
	a := New[testNode]()
	for i := 0; i < chunkSize+3; i++ {
		a.Alloc(testNode{id: i})
	}
	var seen []int
	a.Each(func(n *testNode) bool {
		seen = append(seen, n.id)
		return true
	})
	if len(seen) != chunkSize+3 {
		t.Fatalf("visited %d nodes, want %d", len(seen), chunkSize+3)
	}
	for i, id := range seen {
		if id != i {
			t.Fatalf("allocation order not preserved at %d: got id %d", i, id)
		}
	}
	// Early stop.
	count := 0
	a.Each(func(*testNode) bool {
		count++
		return count < 5
	})
	if count != 5 {
		t.Fatalf("early stop visited %d nodes, want 5", count)
	}
}
