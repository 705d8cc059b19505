// Package position defines the capability model for positions over an
// ordered sequence. A position is an opaque value pointing at one element
// (or one past the last element) of some caller-owned sequence.
//
// Capabilities form a sealed hierarchy: every position can move forward,
// some can also move backward, and some additionally support constant-time
// arithmetic. Operations that need a stronger capability than the position
// type provides are contract violations, detected at run time via the
// probes below.
package position

import "github.com/positionless/positionless/pkg/contract"

// Forward is the minimum capability of a position: single-step forward
// movement, element read, and position comparison. The type parameter P is
// the implementing type itself.
type Forward[P any, T any] interface {
	// Next returns the position one element after the receiver.
	// Behavior is undefined when the receiver is the past-the-end position.
	Next() P

	// Get returns the element at the receiver.
	// Behavior is undefined when the receiver is the past-the-end position.
	Get() T

	// Equal reports whether the receiver and q denote the same position
	// of the same sequence.
	Equal(q P) bool
}

// Bidirectional is a position that can also move backward one step.
type Bidirectional[P any, T any] interface {
	Forward[P, T]

	// Prev returns the position one element before the receiver.
	// Behavior is undefined when the receiver is the first position.
	Prev() P
}

// RandomAccess is a position supporting constant-time movement by an
// arbitrary offset and constant-time distance computation.
type RandomAccess[P any, T any] interface {
	Bidirectional[P, T]

	// Advance returns the position n elements after the receiver;
	// n may be negative.
	Advance(n int) P

	// Distance returns the number of elements between the receiver and q;
	// negative when q precedes the receiver.
	Distance(q P) int
}

// Mutable is a position through which the element it points at can be
// replaced in place.
type Mutable[P any, T any] interface {
	Forward[P, T]

	// Set replaces the element at the receiver with v.
	Set(v T)
}

// AsBidirectional reports whether p supports backward movement, returning
// the stronger view when it does.
func AsBidirectional[T any, P Forward[P, T]](p P) (Bidirectional[P, T], bool) {
	b, ok := any(p).(Bidirectional[P, T])
	return b, ok
}

// AsRandomAccess reports whether p supports constant-time arithmetic,
// returning the stronger view when it does.
func AsRandomAccess[T any, P Forward[P, T]](p P) (RandomAccess[P, T], bool) {
	r, ok := any(p).(RandomAccess[P, T])
	return r, ok
}

// AsMutable reports whether elements can be written through p, returning
// the stronger view when they can.
func AsMutable[T any, P Forward[P, T]](p P) (Mutable[P, T], bool) {
	m, ok := any(p).(Mutable[P, T])
	return m, ok
}

// Advance returns the position n elements after p; n may be negative.
// Constant time when P is RandomAccess, |n| single steps otherwise.
// Moving backward requires a backward-capable position.
func Advance[T any, P Forward[P, T]](p P, n int) P {
	if r, ok := AsRandomAccess[T](p); ok {
		return r.Advance(n)
	}
	if n < 0 {
		b, ok := AsBidirectional[T](p)
		contract.Assert(ok, "position.Advance",
			"position type %T is forward-only, cannot move by %d", p, n)
		for ; n < 0; n++ {
			p = b.Prev()
			b, _ = AsBidirectional[T](p)
		}
		return p
	}
	for ; n > 0; n-- {
		p = p.Next()
	}
	return p
}

// Distance returns the number of elements in [p, q). Constant time when P
// is RandomAccess, a traversal otherwise. Behavior is undefined when q is
// not reachable from p.
func Distance[T any, P Forward[P, T]](p, q P) int {
	if r, ok := AsRandomAccess[T](p); ok {
		return r.Distance(q)
	}
	n := 0
	for !p.Equal(q) {
		p = p.Next()
		n++
	}
	return n
}
