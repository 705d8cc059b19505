// Package cursor provides the user-facing cursor over a shared handle
// table. Any number of cursors produced from one MakePair call traverse
// the same underlying sequence independently: advancing one never
// invalidates or repositions another, even over forward-only sequences.
//
// A cursor owns exactly one handle in the shared table. Cloning a cursor
// allocates a new handle; Close releases it. Passing a *Cursor around
// transfers ownership without touching the table. All cursors sharing one
// table must be driven from a single logical thread.
package cursor

import (
	"github.com/positionless/positionless/pkg/contract"
	"github.com/positionless/positionless/pkg/handletable"
	"github.com/positionless/positionless/pkg/position"
)

// released marks a cursor whose handle has been given up, either by Close
// or by Assign taking a new one.
const released = -1

// Cursor is one logical position over a shared sequence.
type Cursor[T any, P position.Forward[P, T]] struct {
	table  *handletable.Table[T, P]
	handle int
}

// MakePair returns a (begin, end) cursor pair over the range [begin, end),
// backed by a freshly created partition and handle table shared by the two
// cursors and every clone derived from them.
func MakePair[T any, P position.Forward[P, T]](begin, end P, opts ...handletable.Option) (*Cursor[T, P], *Cursor[T, P]) {
	table := handletable.New[T](begin, end, opts...)
	return &Cursor[T, P]{table: table, handle: table.CreateBegin()},
		&Cursor[T, P]{table: table, handle: table.CreateEnd()}
}

// Table returns the shared handle table, for collaborators needing raw
// partition access.
func (r *Cursor[T, P]) Table() *handletable.Table[T, P] {
	return r.table
}

// Value returns the element at the cursor.
//
// Precondition: the cursor is open and not at the end of the range.
func (r *Cursor[T, P]) Value() T {
	r.mustBeOpen("cursor.Value")
	base := r.table.Base(r.handle)
	contract.Assert(!base.Equal(r.table.Base(1)), "cursor.Value",
		"cannot dereference the end of the range")
	return base.Get()
}

// Next moves the cursor forward one element, returning the receiver.
//
// Precondition: the cursor is open and not at the end of the range.
func (r *Cursor[T, P]) Next() *Cursor[T, P] {
	r.mustBeOpen("cursor.Next")
	r.table.Increment(r.handle)
	return r
}

// PostNext moves the cursor forward one element, returning a clone equal
// to the cursor's state before the move. It costs one handle copy more
// than Next.
//
// Precondition: the cursor is open and not at the end of the range.
func (r *Cursor[T, P]) PostNext() *Cursor[T, P] {
	prev := r.Clone()
	r.table.Increment(r.handle)
	return prev
}

// NextN moves the cursor forward n elements, as n single steps.
//
// Precondition: the cursor is open, with at least n elements ahead.
func (r *Cursor[T, P]) NextN(n int) *Cursor[T, P] {
	r.mustBeOpen("cursor.NextN")
	r.table.IncrementBy(r.handle, n)
	return r
}

// Prev moves the cursor backward one element, returning the receiver.
// Requires backward-capable positions.
//
// Precondition: the cursor is open and not at the begin of the range.
func (r *Cursor[T, P]) Prev() *Cursor[T, P] {
	r.mustBeOpen("cursor.Prev")
	r.table.Decrement(r.handle)
	return r
}

// PostPrev moves the cursor backward one element, returning a clone equal
// to the cursor's state before the move. Requires backward-capable
// positions.
//
// Precondition: the cursor is open and not at the begin of the range.
func (r *Cursor[T, P]) PostPrev() *Cursor[T, P] {
	prev := r.Clone()
	r.table.Decrement(r.handle)
	return prev
}

// PrevN moves the cursor backward n elements, as n single steps. Requires
// backward-capable positions.
//
// Precondition: the cursor is open, with at least n elements behind.
func (r *Cursor[T, P]) PrevN(n int) *Cursor[T, P] {
	r.mustBeOpen("cursor.PrevN")
	r.table.DecrementBy(r.handle, n)
	return r
}

// Clone returns a new cursor at the same position, movable independently
// from the receiver.
//
// Precondition: the cursor is open.
func (r *Cursor[T, P]) Clone() *Cursor[T, P] {
	r.mustBeOpen("cursor.Clone")
	return &Cursor[T, P]{table: r.table, handle: r.table.Copy(r.handle)}
}

// Assign repositions the receiver to other's position, releasing the
// receiver's current handle first. The two cursors stay independent
// afterwards.
//
// Precondition: other is open.
func (r *Cursor[T, P]) Assign(other *Cursor[T, P]) *Cursor[T, P] {
	if r == other {
		return r
	}
	other.mustBeOpen("cursor.Assign")
	if r.handle != released {
		r.table.Destroy(r.handle)
	}
	r.table = other.table
	r.handle = r.table.Copy(other.handle)
	return r
}

// Equal reports whether the two cursors share a table and resolve to the
// same position. Equality is positional: distinct handles parked at the
// same spot compare equal.
//
// Precondition: both cursors are open.
func (r *Cursor[T, P]) Equal(other *Cursor[T, P]) bool {
	r.mustBeOpen("cursor.Equal")
	other.mustBeOpen("cursor.Equal")
	return r.table == other.table &&
		r.table.Base(r.handle).Equal(other.table.Base(other.handle))
}

// Close releases the cursor's handle. Safe to call more than once; only
// the first call tombstones the handle.
func (r *Cursor[T, P]) Close() {
	if r.handle == released {
		return
	}
	r.table.Destroy(r.handle)
	r.handle = released
}

func (r *Cursor[T, P]) mustBeOpen(op string) {
	contract.Assert(r.handle != released, op, "cursor is closed")
}
