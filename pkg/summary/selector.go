package summary

import (
	"slices"

	"github.com/m1-s/graphsum/pkg/errors"
)

// selectFormat resolves FormatAuto to a concrete strategy:
//
//  1. Edge attribute printing enabled and the graph has edge attributes:
//     edgelist.
//  2. Median out-degree strictly below 3: compressed.
//  3. Otherwise: adjlist.
//
// Callers only reach the selector when the graph has edges, but it refuses
// a zero-vertex view on its own rather than computing an undefined median.
func selectFormat(g View, printEdgeAttributes bool) (Format, error) {
	if printEdgeAttributes && len(g.EdgeAttributes()) > 0 {
		return FormatEdgeList, nil
	}
	med, err := medianOutDegree(g)
	if err != nil {
		return FormatAuto, err
	}
	if med < 3 {
		return FormatCompressed, nil
	}
	return FormatAdjacency, nil
}

// medianOutDegree computes the median of all vertices' out-degrees after
// an ascending sort. An even-sized sequence yields the mean of the two
// middle values. A zero-vertex view fails with EMPTY_INPUT.
func medianOutDegree(g View) (float64, error) {
	n := g.VertexCount()
	if n == 0 {
		return 0, errors.New(errors.ErrCodeEmptyInput, "median out-degree of a graph with no vertices")
	}

	degrees := make([]int, n)
	for v := range degrees {
		degrees[v] = g.OutDegree(v)
	}
	slices.Sort(degrees)

	mid := n / 2
	if n%2 == 0 {
		return float64(degrees[mid-1]+degrees[mid]) / 2, nil
	}
	return float64(degrees[mid]), nil
}
