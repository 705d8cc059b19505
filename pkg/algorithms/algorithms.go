// Package algorithms holds stateless conveniences built on the raw part
// accessors of a partition. They need no cursor safety: they only read and
// write through current part boundaries.
package algorithms

import (
	"github.com/positionless/positionless/pkg/contract"
	"github.com/positionless/positionless/pkg/partition"
	"github.com/positionless/positionless/pkg/position"
)

// SwapFirst exchanges the first element of part i with the first element
// of part j, in place, with no other observable effect. Swapping a part
// with itself is a no-op.
//
// Precondition: i and j are valid part indices of p.
// Precondition: parts i and j are not empty.
// Precondition: the position type supports element writes.
func SwapFirst[T any, P position.Forward[P, T]](p *partition.Partition[T, P], i, j int) {
	contract.Assert(i >= 0 && i < p.PartsCount(), "algorithms.SwapFirst",
		"part index %d out of range [0,%d)", i, p.PartsCount())
	contract.Assert(j >= 0 && j < p.PartsCount(), "algorithms.SwapFirst",
		"part index %d out of range [0,%d)", j, p.PartsCount())
	contract.Assert(!p.IsPartEmpty(i), "algorithms.SwapFirst", "part %d is empty", i)
	contract.Assert(!p.IsPartEmpty(j), "algorithms.SwapFirst", "part %d is empty", j)

	beginI, _ := p.Part(i)
	beginJ, _ := p.Part(j)

	mi, ok := position.AsMutable[T](beginI)
	contract.Assert(ok, "algorithms.SwapFirst",
		"position type %T does not support element writes", beginI)
	mj, _ := position.AsMutable[T](beginJ)

	vi, vj := beginI.Get(), beginJ.Get()
	mi.Set(vj)
	mj.Set(vi)
}
