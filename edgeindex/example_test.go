package edgeindex_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlviz/edgeindex"
)

// ExampleFromAdjacency demonstrates converting a binary adjacency matrix
// into an edge index.
func ExampleFromAdjacency() {
	// 0→1, 1→2 path.
	m := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		0, 0, 0,
	})

	idx, err := edgeindex.FromAdjacency(m)
	if err != nil {
		fmt.Println("convert:", err)
		return
	}

	fmt.Println("edges:", idx.Len())
	fmt.Println("src:", idx.Src)
	fmt.Println("dst:", idx.Dst)
	fmt.Println("nodes:", idx.NumNodes())

	// Output:
	// edges: 2
	// src: [0 1]
	// dst: [1 2]
	// nodes: 3
}
