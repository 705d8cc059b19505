package seq

import "github.com/positionless/positionless/pkg/position"

// List is a singly linked list. Its positions can only move forward, which
// makes it the minimal sequence the partition machinery supports.
type List[T any] struct {
	head *listNode[T]
	tail *listNode[T]
	size int
}

type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// NewList returns a list holding elems in order.
func NewList[T any](elems ...T) *List[T] {
	r := &List[T]{}
	for _, v := range elems {
		r.PushBack(v)
	}
	return r
}

// PushBack appends v to the list.
func (r *List[T]) PushBack(v T) {
	n := &listNode[T]{value: v}
	if r.tail == nil {
		r.head = n
	} else {
		r.tail.next = n
	}
	r.tail = n
	r.size++
}

// Begin returns the position of the first element.
func (r *List[T]) Begin() ListPos[T] {
	return ListPos[T]{node: r.head}
}

// End returns the past-the-end position.
func (r *List[T]) End() ListPos[T] {
	return ListPos[T]{}
}

// Len returns the number of elements.
func (r *List[T]) Len() int {
	return r.size
}

// Elems returns the elements in order.
func (r *List[T]) Elems() []T {
	elems := make([]T, 0, r.size)
	for n := r.head; n != nil; n = n.next {
		elems = append(elems, n.value)
	}
	return elems
}

// ListPos is a forward-only, mutable position over a List.
type ListPos[T any] struct {
	node *listNode[T]
}

var _ position.Mutable[ListPos[int], int] = ListPos[int]{}

func (r ListPos[T]) Next() ListPos[T] {
	return ListPos[T]{node: r.node.next}
}

func (r ListPos[T]) Get() T {
	return r.node.value
}

func (r ListPos[T]) Set(v T) {
	r.node.value = v
}

func (r ListPos[T]) Equal(q ListPos[T]) bool {
	return r.node == q.node
}
