// Package handletable implements the allocator that binds logical cursor
// handles to parts of a shared partition.
//
// A handle is a small integer row index into the table. A row holds either
// a part index of the owned partition, the sentinel value PartsCount()
// meaning "resolves to the end of the last part", or Tombstone for a freed
// row. Rows 0 and 1 are reserved at construction for the begin and end of
// the range and are never tombstoned.
//
// At most one live row references any given part: duplicating a handle
// always first inserts a fresh empty part so the duplicate gets a part of
// its own. Moving a handle then only ever relocates the single boundary
// adjacent to real elements, no matter how many empty parts (parked
// cursors) sit at the same spot.
//
// A table is owned by one logical thread; it performs no locking.
package handletable

import (
	"github.com/go-logr/logr"

	"github.com/positionless/positionless/pkg/contract"
	"github.com/positionless/positionless/pkg/partition"
	"github.com/positionless/positionless/pkg/position"
)

// Tombstone marks a freed table row, eligible for reuse by a later Copy.
const Tombstone = -1

// Option configures a Table.
type Option func(*options)

type options struct {
	logger logr.Logger
}

// WithLogger sets the logger used for motion traces. Traces are emitted at
// verbosity 1; the default logger discards everything.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Table owns a partition over [begin, end) and the handle rows bound to
// its parts.
type Table[T any, P position.Forward[P, T]] struct {
	partition *partition.Partition[T, P]
	rows      []int
	log       logr.Logger
}

// New returns a table over the range [begin, end) with one part and the
// two bootstrap rows: row 0 bound to part 0, row 1 bound to the sentinel.
func New[T any, P position.Forward[P, T]](begin, end P, opts ...Option) *Table[T, P] {
	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T, P]{
		partition: partition.New[T](begin, end),
		rows:      []int{0, 1},
		log:       o.logger,
	}
}

// Partition returns the owned partition, for collaborators that operate on
// raw part boundaries.
func (r *Table[T, P]) Partition() *partition.Partition[T, P] {
	return r.partition
}

// Rows returns a copy of the handle rows, tombstones included.
func (r *Table[T, P]) Rows() []int {
	rows := make([]int, len(r.rows))
	copy(rows, r.rows)
	return rows
}

// Live returns the number of rows not tombstoned.
func (r *Table[T, P]) Live() int {
	live := 0
	for _, p := range r.rows {
		if p != Tombstone {
			live++
		}
	}
	return live
}

// part returns the part index bound to handle h.
//
// Precondition: h is a valid, non-tombstoned handle.
func (r *Table[T, P]) part(h int) int {
	contract.Assert(h >= 0 && h < len(r.rows), "handletable",
		"handle %d out of range [0,%d)", h, len(r.rows))
	p := r.rows[h]
	contract.Assert(p != Tombstone, "handletable", "handle %d is tombstoned", h)
	return p
}

// Base resolves handle h to its concrete position: the begin boundary of
// its part, or the end boundary of the last part when bound to the
// sentinel.
//
// Precondition: h is a valid, non-tombstoned handle.
func (r *Table[T, P]) Base(h int) P {
	p := r.part(h)
	count := r.partition.PartsCount()
	if p == count {
		_, end := r.partition.Part(count - 1)
		return end
	}
	begin, _ := r.partition.Part(p)
	return begin
}

// CreateBegin returns a fresh handle resolving to the begin of the range.
func (r *Table[T, P]) CreateBegin() int {
	h := r.Copy(0)
	r.log.V(1).Info("created begin handle", "handle", h)
	return h
}

// CreateEnd returns a fresh handle resolving to the end of the range.
func (r *Table[T, P]) CreateEnd() int {
	h := r.Copy(1)
	r.log.V(1).Info("created end handle", "handle", h)
	return h
}

// Copy returns a new handle resolving to the same position as h, movable
// independently from it. A fresh empty part is inserted at h's part so the
// new handle gets a part of its own; every row referencing a part at or
// after that point keeps denoting the same logical part by shifting up by
// one. The first tombstoned row is reused if one exists, otherwise a row
// is appended.
//
// Precondition: h is a valid, non-tombstoned handle.
func (r *Table[T, P]) Copy(h int) int {
	p := r.part(h)
	if p == r.partition.PartsCount() {
		// Sentinel: the fresh empty part goes after the last part, where
		// it resolves to the end boundary. Rows at the sentinel shift up
		// with everything else, so they stay sentinels.
		r.partition.AddPartEnd(p - 1)
	} else {
		r.partition.AddPartBegin(p)
	}
	for i, v := range r.rows {
		if v != Tombstone && v >= p {
			r.rows[i] = v + 1
		}
	}

	nh := Tombstone
	for i, v := range r.rows {
		if v == Tombstone {
			nh = i
			break
		}
	}
	if nh != Tombstone {
		r.rows[nh] = p
	} else {
		r.rows = append(r.rows, p)
		nh = len(r.rows) - 1
	}
	r.log.V(1).Info("copied handle", "from", h, "to", nh, "part", p)
	return nh
}

// Destroy tombstones handle h. The part it referenced stays in the
// partition; only motion of surviving handles shrinks it.
//
// Precondition: h is a valid, non-tombstoned handle.
func (r *Table[T, P]) Destroy(h int) {
	r.part(h)
	r.rows[h] = Tombstone
	r.log.V(1).Info("destroyed handle", "handle", h)
}

// Increment moves handle h forward one element.
//
// When h's part is non-empty, growing the previous part moves the boundary
// that is h's resolved position. When h's part is empty, h is parked among
// other cursors: h swaps part bindings with the handle owning the nearest
// non-empty part ahead, then that part's predecessor grows. The swap keeps
// the cost independent of how many parked cursors are skipped.
//
// Precondition: h is a valid, non-tombstoned handle.
// Precondition: h does not resolve to the end of the range.
func (r *Table[T, P]) Increment(h int) {
	p := r.part(h)
	contract.Assert(!r.Base(h).Equal(r.Base(1)), "handletable.Increment",
		"handle %d is at the end of the range", h)

	if !r.partition.IsPartEmpty(p) {
		r.partition.Grow(p - 1)
	} else {
		q := p + 1
		for q < r.partition.PartsCount() && r.partition.IsPartEmpty(q) {
			q++
		}
		contract.Assert(q < r.partition.PartsCount(), "handletable.Increment",
			"no non-empty part ahead of handle %d", h)

		other := r.owner(q)
		contract.Assert(other >= 0, "handletable.Increment",
			"part %d has no owning handle", q)
		r.rows[other], r.rows[h] = r.rows[h], r.rows[other]

		r.partition.Grow(q - 1)
	}
	r.log.V(1).Info("incremented handle", "handle", h)
}

// IncrementBy moves handle h forward n elements, as n single steps.
//
// Precondition: h is a valid, non-tombstoned handle.
// Precondition: at least n elements remain before the end of the range.
func (r *Table[T, P]) IncrementBy(h, n int) {
	contract.Assert(n >= 0, "handletable.IncrementBy", "negative count %d", n)
	// TODO: an O(1) path for random access positions, once the observable
	// binding reshuffles are specified for bulk motion.
	for i := 0; i < n; i++ {
		r.Increment(h)
	}
}

// Decrement moves handle h backward one element. Symmetric to Increment:
// the simple case shrinks the previous part; the parked case swaps h's
// binding with the handle owning the part after the nearest non-empty part
// behind, then shrinks that part. Requires backward-capable positions.
//
// Precondition: h is a valid, non-tombstoned handle bound to a part > 0.
// Precondition: h does not resolve to the begin of the range.
func (r *Table[T, P]) Decrement(h int) {
	p := r.part(h)
	contract.Assert(p > 0 && p < r.partition.PartsCount(), "handletable.Decrement",
		"handle %d part %d is not decrementable", h, p)
	contract.Assert(!r.Base(h).Equal(r.Base(0)), "handletable.Decrement",
		"handle %d is at the begin of the range", h)

	if !r.partition.IsPartEmpty(p - 1) {
		r.partition.Shrink(p - 1)
	} else {
		q := p - 1
		for q > 0 && r.partition.IsPartEmpty(q) {
			q--
		}
		contract.Assert(!r.partition.IsPartEmpty(q), "handletable.Decrement",
			"no non-empty part behind handle %d", h)

		other := r.owner(q + 1)
		contract.Assert(other >= 0, "handletable.Decrement",
			"part %d has no owning handle", q+1)
		r.rows[other], r.rows[h] = r.rows[h], r.rows[other]

		r.partition.Shrink(q)
	}
	r.log.V(1).Info("decremented handle", "handle", h)
}

// DecrementBy moves handle h backward n elements, as n single steps.
//
// Precondition: h is a valid, non-tombstoned handle.
// Precondition: at least n elements remain before the begin of the range.
func (r *Table[T, P]) DecrementBy(h, n int) {
	contract.Assert(n >= 0, "handletable.DecrementBy", "negative count %d", n)
	for i := 0; i < n; i++ {
		r.Decrement(h)
	}
}

// owner returns the row bound to part p, or -1 when the part is orphaned.
func (r *Table[T, P]) owner(p int) int {
	for i, v := range r.rows {
		if v == p {
			return i
		}
	}
	return -1
}
