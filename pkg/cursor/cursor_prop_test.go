package cursor

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/positionless/positionless/pkg/seq"
)

func TestPropAccessesAllElements(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Int(), 0, 64).Draw(t, "elems")
		s := seq.NewSlice(elems)

		begin, end := MakePair[int](s.Begin(), s.End())
		defer begin.Close()
		defer end.Close()

		it := begin.Clone()
		defer it.Close()
		i := 0
		for ; !it.Equal(end); it.Next() {
			if i >= len(elems) {
				t.Fatalf("cursor ran past the %d source elements", len(elems))
			}
			if got := it.Value(); got != elems[i] {
				t.Fatalf("element %d: got %d, want %d", i, got, elems[i])
			}
			i++
		}
		if i != len(elems) {
			t.Fatalf("visited %d of %d elements", i, len(elems))
		}
	})
}

func TestPropAccessesAllElementsForwardOnly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Int(), 0, 64).Draw(t, "elems")
		l := seq.NewList(elems...)

		begin, end := MakePair[int](l.Begin(), l.End())
		defer begin.Close()
		defer end.Close()

		it := begin.Clone()
		defer it.Close()
		i := 0
		for ; !it.Equal(end); it.Next() {
			if got := it.Value(); got != elems[i] {
				t.Fatalf("element %d: got %d, want %d", i, got, elems[i])
			}
			i++
		}
		if i != len(elems) {
			t.Fatalf("visited %d of %d elements", i, len(elems))
		}
	})
}

func TestPropPreAndPostIncrementInSync(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Int(), 0, 32).Draw(t, "elems")
		s := seq.NewSlice(elems)

		begin, end := MakePair[int](s.Begin(), s.End())
		defer begin.Close()
		defer end.Close()

		it1 := begin.Clone()
		defer it1.Close()
		it2 := begin.Clone()
		defer it2.Close()

		for !it1.Equal(end) && !it2.Equal(end) {
			if it1.Value() != it2.Value() {
				t.Fatalf("cursors diverged: %d vs %d", it1.Value(), it2.Value())
			}
			post := it2.PostNext()
			if !it1.Equal(post) {
				t.Fatal("post-increment result differs from the pre-move state")
			}
			if it1.Equal(it2) {
				t.Fatal("cursor did not move")
			}
			it1.Next()
			if !it1.Equal(it2) {
				t.Fatal("cursors out of sync after one step each")
			}
			post.Close()
		}
	})
}

func TestPropReverseTraversal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Int(), 1, 64).Draw(t, "elems")
		s := seq.NewSlice(elems)

		begin, end := MakePair[int](s.Begin(), s.End())
		defer begin.Close()
		defer end.Close()

		it := end.Clone()
		defer it.Close()

		i := len(elems) - 1
		for {
			it.Prev()
			if got := it.Value(); got != elems[i] {
				t.Fatalf("element %d: got %d, want %d", i, got, elems[i])
			}
			if it.Equal(begin) {
				break
			}
			i--
		}
		if i != 0 {
			t.Fatalf("stopped at element %d, want 0", i)
		}
	})
}
