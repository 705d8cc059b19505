// Package partition implements a separation of an ordered range into
// multiple contiguous parts.
//
// A partition is constructed from a (begin, end) position pair. The
// underlying sequence must remain valid for the lifetime of the partition
// and the positions given to the constructor must not be invalidated.
package partition

import (
	"github.com/positionless/positionless/pkg/contract"
	"github.com/positionless/positionless/pkg/position"
)

// Partition separates the range [begin, end) into PartsCount() contiguous,
// non-overlapping parts whose concatenation is the whole range.
//
// Invariant: PartsCount() >= 1.
type Partition[T any, P position.Forward[P, T]] struct {
	// boundaries delimits the parts. The first element is the begin
	// position of the range, the last element its end position; every
	// boundary in between ends one part and starts the next.
	boundaries []P
}

// New returns a partition covering the range [begin, end), having just
// one part.
func New[T any, P position.Forward[P, T]](begin, end P) *Partition[T, P] {
	boundaries := make([]P, 0, 10)
	boundaries = append(boundaries, begin, end)
	return &Partition[T, P]{boundaries: boundaries}
}

// PartsCount returns the number of parts in the partition.
func (r *Partition[T, P]) PartsCount() int {
	return len(r.boundaries) - 1
}

// Part returns the positions delimiting the ith part as a [begin, end) pair.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) Part(i int) (P, P) {
	contract.Assert(i >= 0 && i < r.PartsCount(), "partition.Part",
		"part index %d out of range [0,%d)", i, r.PartsCount())
	return r.boundaries[i], r.boundaries[i+1]
}

// IsPartEmpty reports whether the ith part is empty.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) IsPartEmpty(i int) bool {
	begin, end := r.Part(i)
	return begin.Equal(end)
}

// PartSize returns the number of elements in the ith part. Constant time
// for random access positions, a traversal otherwise.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) PartSize(i int) int {
	begin, end := r.Part(i)
	return position.Distance[T](begin, end)
}

// Grow enlarges the ith part by moving its end boundary forward one
// element, shrinking the next part.
//
// Precondition: 0 <= i and i+1 < PartsCount().
// Precondition: !IsPartEmpty(i + 1).
func (r *Partition[T, P]) Grow(i int) {
	contract.Assert(i >= 0 && i+1 < r.PartsCount(), "partition.Grow",
		"part index %d out of range [0,%d)", i, r.PartsCount()-1)
	contract.Assert(!r.IsPartEmpty(i+1), "partition.Grow",
		"part %d is empty", i+1)
	r.boundaries[i+1] = r.boundaries[i+1].Next()
}

// GrowBy enlarges the ith part by moving its end boundary forward n
// elements, shrinking the next part. Constant time for random access
// positions, n single steps otherwise.
//
// Precondition: 0 <= i and i+1 < PartsCount().
// Precondition: PartSize(i+1) >= n.
func (r *Partition[T, P]) GrowBy(i, n int) {
	contract.Assert(i >= 0 && i+1 < r.PartsCount(), "partition.GrowBy",
		"part index %d out of range [0,%d)", i, r.PartsCount()-1)
	contract.Assert(n >= 0, "partition.GrowBy", "negative count %d", n)

	if ra, ok := position.AsRandomAccess[T](r.boundaries[i+1]); ok {
		contract.Assert(r.PartSize(i+1) >= n, "partition.GrowBy",
			"part %d has %d elements, need %d", i+1, r.PartSize(i+1), n)
		r.boundaries[i+1] = ra.Advance(n)
		return
	}
	for k := 0; k < n; k++ {
		contract.Assert(!r.IsPartEmpty(i+1), "partition.GrowBy",
			"part %d exhausted after %d of %d steps", i+1, k, n)
		r.boundaries[i+1] = r.boundaries[i+1].Next()
	}
}

// Shrink reduces the ith part by moving its end boundary back one element,
// enlarging the next part. Requires backward-capable positions.
//
// Precondition: 0 <= i and i+1 < PartsCount().
// Precondition: !IsPartEmpty(i).
func (r *Partition[T, P]) Shrink(i int) {
	contract.Assert(i >= 0 && i+1 < r.PartsCount(), "partition.Shrink",
		"part index %d out of range [0,%d)", i, r.PartsCount()-1)
	contract.Assert(!r.IsPartEmpty(i), "partition.Shrink",
		"part %d is empty", i)
	b, ok := position.AsBidirectional[T](r.boundaries[i+1])
	contract.Assert(ok, "partition.Shrink",
		"position type %T is forward-only", r.boundaries[i+1])
	r.boundaries[i+1] = b.Prev()
}

// ShrinkBy reduces the ith part by moving its end boundary back n
// elements, enlarging the next part. Requires backward-capable positions;
// constant time for random access positions, n single steps otherwise.
//
// Precondition: 0 <= i and i+1 < PartsCount().
// Precondition: PartSize(i) >= n.
func (r *Partition[T, P]) ShrinkBy(i, n int) {
	contract.Assert(i >= 0 && i+1 < r.PartsCount(), "partition.ShrinkBy",
		"part index %d out of range [0,%d)", i, r.PartsCount()-1)
	contract.Assert(n >= 0, "partition.ShrinkBy", "negative count %d", n)

	if ra, ok := position.AsRandomAccess[T](r.boundaries[i+1]); ok {
		contract.Assert(r.PartSize(i) >= n, "partition.ShrinkBy",
			"part %d has %d elements, need %d", i, r.PartSize(i), n)
		r.boundaries[i+1] = ra.Advance(-n)
		return
	}
	b, ok := position.AsBidirectional[T](r.boundaries[i+1])
	contract.Assert(ok, "partition.ShrinkBy",
		"position type %T is forward-only", r.boundaries[i+1])
	for k := 0; k < n; k++ {
		contract.Assert(!r.IsPartEmpty(i), "partition.ShrinkBy",
			"part %d exhausted after %d of %d steps", i, k, n)
		r.boundaries[i+1] = b.Prev()
		b, _ = position.AsBidirectional[T](r.boundaries[i+1])
	}
}

// TransferToPrev moves all the elements of the ith part into part i-1,
// leaving the ith part empty.
//
// Precondition: 0 < i < PartsCount().
func (r *Partition[T, P]) TransferToPrev(i int) {
	contract.Assert(i > 0 && i < r.PartsCount(), "partition.TransferToPrev",
		"part index %d out of range (0,%d)", i, r.PartsCount())
	r.boundaries[i] = r.boundaries[i+1]
}

// TransferToNext moves all the elements of the ith part into part i+1,
// leaving the ith part empty.
//
// Precondition: 0 <= i < PartsCount()-1.
func (r *Partition[T, P]) TransferToNext(i int) {
	contract.Assert(i >= 0 && i < r.PartsCount()-1, "partition.TransferToNext",
		"part index %d out of range [0,%d)", i, r.PartsCount()-1)
	r.boundaries[i+1] = r.boundaries[i]
}

// AddPartEnd inserts a new empty part immediately after the ith part.
// No element moves; the ith part's end boundary is duplicated.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) AddPartEnd(i int) {
	contract.Assert(i >= 0 && i < r.PartsCount(), "partition.AddPartEnd",
		"part index %d out of range [0,%d)", i, r.PartsCount())
	r.insertBoundaries(i+1, r.boundaries[i+1], 1)
}

// AddPartBegin inserts a new empty part immediately before the ith part.
// No element moves; the ith part's begin boundary is duplicated.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) AddPartBegin(i int) {
	contract.Assert(i >= 0 && i < r.PartsCount(), "partition.AddPartBegin",
		"part index %d out of range [0,%d)", i, r.PartsCount())
	r.insertBoundaries(i, r.boundaries[i], 1)
}

// AddPartsEnd inserts count new empty parts immediately after the ith
// part. Equivalent to calling AddPartEnd(i) count times.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) AddPartsEnd(i, count int) {
	contract.Assert(i >= 0 && i < r.PartsCount(), "partition.AddPartsEnd",
		"part index %d out of range [0,%d)", i, r.PartsCount())
	contract.Assert(count >= 0, "partition.AddPartsEnd", "negative count %d", count)
	r.insertBoundaries(i+1, r.boundaries[i+1], count)
}

// AddPartsBegin inserts count new empty parts immediately before the ith
// part. Equivalent to calling AddPartBegin(i) count times.
//
// Precondition: 0 <= i < PartsCount().
func (r *Partition[T, P]) AddPartsBegin(i, count int) {
	contract.Assert(i >= 0 && i < r.PartsCount(), "partition.AddPartsBegin",
		"part index %d out of range [0,%d)", i, r.PartsCount())
	contract.Assert(count >= 0, "partition.AddPartsBegin", "negative count %d", count)
	r.insertBoundaries(i, r.boundaries[i], count)
}

// RemovePart deletes the ith part, growing the previous part to cover its
// range. This removes a structural slot regardless of whether the part
// currently holds elements.
//
// Precondition: 0 < i < PartsCount().
func (r *Partition[T, P]) RemovePart(i int) {
	contract.Assert(i > 0 && i < r.PartsCount(), "partition.RemovePart",
		"part index %d out of range (0,%d)", i, r.PartsCount())
	copy(r.boundaries[i:], r.boundaries[i+1:])
	r.boundaries = r.boundaries[:len(r.boundaries)-1]
}

// insertBoundaries inserts count copies of boundary at index at.
func (r *Partition[T, P]) insertBoundaries(at int, boundary P, count int) {
	if count == 0 {
		return
	}
	grown := make([]P, 0, len(r.boundaries)+count)
	grown = append(grown, r.boundaries[:at]...)
	for k := 0; k < count; k++ {
		grown = append(grown, boundary)
	}
	grown = append(grown, r.boundaries[at:]...)
	r.boundaries = grown
}
