package main

import (
	"flag"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/positionless/positionless/pkg/algorithms"
	"github.com/positionless/positionless/pkg/cursor"
	"github.com/positionless/positionless/pkg/handletable"
	"github.com/positionless/positionless/pkg/partition"
	"github.com/positionless/positionless/pkg/seq"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	log := klog.NewKlogr()

	data := seq.NewSlice([]int{1, 2, 3, 4, 5, 6})

	begin, end := cursor.MakePair[int](data.Begin(), data.End(),
		handletable.WithLogger(log))
	defer begin.Close()
	defer end.Close()

	// Two independent cursors over the same sequence: advancing it does
	// not move mid.
	mid := begin.Clone()
	defer mid.Close()
	mid.NextN(3)

	it := begin.Clone()
	defer it.Close()
	fmt.Print("forward: ")
	for ; !it.Equal(end); it.Next() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println()
	fmt.Println("mid still at:", mid.Value())

	fmt.Print("reverse: ")
	for {
		it.Prev()
		fmt.Print(it.Value(), " ")
		if it.Equal(begin) {
			break
		}
	}
	fmt.Println()

	// Raw partition access: split [1..6] into [1,2,3][4,5,6] and swap the
	// first elements of the two parts.
	p := partition.New[int](data.Begin(), data.End())
	p.AddPartBegin(0)
	p.GrowBy(0, 3)
	algorithms.SwapFirst(p, 0, 1)
	fmt.Println("after swap:", data.Elems())
}
