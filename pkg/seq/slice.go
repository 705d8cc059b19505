// Package seq provides ready-made sequences whose positions satisfy the
// capability interfaces of the position package: a slice view with random
// access, a singly linked list with forward-only positions, and a doubly
// linked list with backward-capable but not random access positions.
package seq

import "github.com/positionless/positionless/pkg/position"

// Slice is a view over a Go slice. Positions index into the shared backing
// array, so writes through a position are visible to every other position
// of the same view.
type Slice[T any] struct {
	elems []T
}

// NewSlice returns a view over elems. The view aliases elems, it does not
// copy it.
func NewSlice[T any](elems []T) Slice[T] {
	return Slice[T]{elems: elems}
}

// Begin returns the position of the first element.
func (r Slice[T]) Begin() SlicePos[T] {
	return SlicePos[T]{elems: r.elems}
}

// End returns the past-the-end position.
func (r Slice[T]) End() SlicePos[T] {
	return SlicePos[T]{elems: r.elems, idx: len(r.elems)}
}

// Len returns the number of elements.
func (r Slice[T]) Len() int {
	return len(r.elems)
}

// Elems returns the backing slice.
func (r Slice[T]) Elems() []T {
	return r.elems
}

// SlicePos is a random access, mutable position over a Slice.
type SlicePos[T any] struct {
	elems []T
	idx   int
}

var (
	_ position.RandomAccess[SlicePos[int], int] = SlicePos[int]{}
	_ position.Mutable[SlicePos[int], int]      = SlicePos[int]{}
)

func (r SlicePos[T]) Next() SlicePos[T] {
	return SlicePos[T]{elems: r.elems, idx: r.idx + 1}
}

func (r SlicePos[T]) Prev() SlicePos[T] {
	return SlicePos[T]{elems: r.elems, idx: r.idx - 1}
}

func (r SlicePos[T]) Get() T {
	return r.elems[r.idx]
}

func (r SlicePos[T]) Set(v T) {
	r.elems[r.idx] = v
}

func (r SlicePos[T]) Equal(q SlicePos[T]) bool {
	return r.idx == q.idx
}

func (r SlicePos[T]) Advance(n int) SlicePos[T] {
	return SlicePos[T]{elems: r.elems, idx: r.idx + n}
}

func (r SlicePos[T]) Distance(q SlicePos[T]) int {
	return q.idx - r.idx
}
