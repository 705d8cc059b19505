package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/positionless/positionless/pkg/contract"
	"github.com/positionless/positionless/pkg/position"
	"github.com/positionless/positionless/pkg/seq"
)

func TestCapabilities(t *testing.T) {
	slice := seq.NewSlice([]int{1, 2, 3})
	list := seq.NewList(1, 2, 3)
	dlist := seq.NewDList(1, 2, 3)

	t.Run("Slice", func(t *testing.T) {
		_, bidi := position.AsBidirectional[int](slice.Begin())
		_, random := position.AsRandomAccess[int](slice.Begin())
		_, mutable := position.AsMutable[int](slice.Begin())
		assert.True(t, bidi)
		assert.True(t, random)
		assert.True(t, mutable)
	})
	t.Run("List", func(t *testing.T) {
		_, bidi := position.AsBidirectional[int](list.Begin())
		_, random := position.AsRandomAccess[int](list.Begin())
		_, mutable := position.AsMutable[int](list.Begin())
		assert.False(t, bidi)
		assert.False(t, random)
		assert.True(t, mutable)
	})
	t.Run("DList", func(t *testing.T) {
		_, bidi := position.AsBidirectional[int](dlist.Begin())
		_, random := position.AsRandomAccess[int](dlist.Begin())
		_, mutable := position.AsMutable[int](dlist.Begin())
		assert.True(t, bidi)
		assert.False(t, random)
		assert.True(t, mutable)
	})
}

func TestAdvanceDistance(t *testing.T) {
	t.Run("RandomAccessPath", func(t *testing.T) {
		s := seq.NewSlice([]int{10, 20, 30, 40})
		p := position.Advance[int](s.Begin(), 2)
		assert.Equal(t, 30, p.Get())
		assert.Equal(t, 4, position.Distance[int](s.Begin(), s.End()))
		assert.Equal(t, 2, position.Distance[int](s.Begin(), p))
	})
	t.Run("TraversalPath", func(t *testing.T) {
		l := seq.NewList(10, 20, 30, 40)
		p := position.Advance[int](l.Begin(), 2)
		assert.Equal(t, 30, p.Get())
		assert.Equal(t, 4, position.Distance[int](l.Begin(), l.End()))
		assert.Equal(t, 2, position.Distance[int](l.Begin(), p))
	})
	t.Run("ZeroSteps", func(t *testing.T) {
		l := seq.NewList(10)
		p := position.Advance[int](l.Begin(), 0)
		assert.True(t, p.Equal(l.Begin()))
	})
	t.Run("BackwardRandomAccessPath", func(t *testing.T) {
		s := seq.NewSlice([]int{10, 20, 30, 40})
		p := position.Advance[int](s.End(), -3)
		assert.Equal(t, 20, p.Get())
	})
	t.Run("BackwardTraversalPath", func(t *testing.T) {
		l := seq.NewDList(10, 20, 30, 40)
		p := position.Advance[int](l.End(), -2)
		assert.Equal(t, 30, p.Get())
		assert.True(t, position.Advance[int](p, -2).Equal(l.Begin()))
	})
}

func TestAdvanceBackwardForwardOnly(t *testing.T) {
	l := seq.NewList(10, 20)

	defer func() {
		if _, ok := recover().(*contract.Violation); !ok {
			t.Fatal("expected *contract.Violation panic")
		}
	}()
	position.Advance[int](l.Begin().Next(), -1)
	t.Fatal("expected panic")
}
