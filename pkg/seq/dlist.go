package seq

import "github.com/positionless/positionless/pkg/position"

// DList is a circular doubly linked list with a sentinel root node. Its
// positions move both ways but do not support constant-time arithmetic,
// which exercises the step-by-step paths of the partition machinery.
type DList[T any] struct {
	root *dlistNode[T]
	size int
}

type dlistNode[T any] struct {
	value T
	prev  *dlistNode[T]
	next  *dlistNode[T]
}

// NewDList returns a list holding elems in order.
func NewDList[T any](elems ...T) *DList[T] {
	root := &dlistNode[T]{}
	root.prev = root
	root.next = root
	r := &DList[T]{root: root}
	for _, v := range elems {
		r.PushBack(v)
	}
	return r
}

// PushBack appends v to the list.
func (r *DList[T]) PushBack(v T) {
	n := &dlistNode[T]{value: v, prev: r.root.prev, next: r.root}
	r.root.prev.next = n
	r.root.prev = n
	r.size++
}

// Begin returns the position of the first element.
func (r *DList[T]) Begin() DListPos[T] {
	return DListPos[T]{node: r.root.next}
}

// End returns the past-the-end position.
func (r *DList[T]) End() DListPos[T] {
	return DListPos[T]{node: r.root}
}

// Len returns the number of elements.
func (r *DList[T]) Len() int {
	return r.size
}

// Elems returns the elements in order.
func (r *DList[T]) Elems() []T {
	elems := make([]T, 0, r.size)
	for n := r.root.next; n != r.root; n = n.next {
		elems = append(elems, n.value)
	}
	return elems
}

// DListPos is a bidirectional, mutable position over a DList.
type DListPos[T any] struct {
	node *dlistNode[T]
}

var (
	_ position.Bidirectional[DListPos[int], int] = DListPos[int]{}
	_ position.Mutable[DListPos[int], int]       = DListPos[int]{}
)

func (r DListPos[T]) Next() DListPos[T] {
	return DListPos[T]{node: r.node.next}
}

func (r DListPos[T]) Prev() DListPos[T] {
	return DListPos[T]{node: r.node.prev}
}

func (r DListPos[T]) Get() T {
	return r.node.value
}

func (r DListPos[T]) Set(v T) {
	r.node.value = v
}

func (r DListPos[T]) Equal(q DListPos[T]) bool {
	return r.node == q.node
}
