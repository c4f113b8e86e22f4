// Package tsp_test verifies Prim's MST (O(n^2)) and its preorder linearization.
// Focus:
//  1. Correct total weight and tree structure on small instances.
//  2. Deterministic tie-breaking (lowest index wins).
//  3. Preorder visits every vertex once, children in ascending order.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/tsp"
)

func TestMST_Line_WeightAndStructure(t *testing.T) {
	in := mustInstance(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	tree := tsp.MinimumSpanningTree(tsp.NewDistanceTable(in))

	require.InDelta(t, 3.0, tree.Weight, epsTiny)
	require.Equal(t, []int{-1, 0, 1, 2}, tree.Parent)
	require.Len(t, tree.Edges, 3)
	require.Equal(t, tsp.Tour{0, 1, 2, 3}, tree.Preorder())
}

func TestMST_UnitSquare_TieBreakLowestIndex(t *testing.T) {
	tree := tsp.MinimumSpanningTree(tsp.NewDistanceTable(unitSquare(t)))

	// Vertex 1 and 3 tie at weight 1 from the root; 1 joins first, then 2
	// (via 1), and 3 keeps parent 0, the lower of its equally light neighbours.
	require.Equal(t, []int{-1, 0, 1, 0}, tree.Parent)
	require.Equal(t, []tsp.Edge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 2, W: 1},
		{U: 0, V: 3, W: 1},
	}, tree.Edges)
	require.Equal(t, []int{1, 3}, tree.Children[0])
	require.Equal(t, tsp.Tour{0, 1, 2, 3}, tree.Preorder())
}

func TestMST_EqualEdgesPreferLowerParent(t *testing.T) {
	// 2 joins before 1, and 3 is equidistant from both. The parent must not
	// depend on which of them entered the tree first.
	in := mustInstance(t, [][2]float64{{0, 0}, {2, 0}, {1, 0}, {1.5, 2}})
	tree := tsp.MinimumSpanningTree(tsp.NewDistanceTable(in))
	pts := in.Points()

	require.Equal(t, []int{-1, 2, 0, 1}, tree.Parent)
	require.Equal(t, []tsp.Edge{
		{U: 0, V: 2, W: 1},
		{U: 2, V: 1, W: 1},
		{U: 1, V: 3, W: tsp.Distance(pts[1], pts[3])},
	}, tree.Edges)
	require.Equal(t, tsp.Tour{0, 2, 1, 3}, tree.Preorder())
}

func TestMST_Star_ChildrenAscending(t *testing.T) {
	in := mustInstance(t, [][2]float64{{0, 0}, {0, 5}, {5, 0}, {0, -5}, {-5, 0}})
	tree := tsp.MinimumSpanningTree(tsp.NewDistanceTable(in))

	require.Equal(t, []int{1, 2, 3, 4}, tree.Children[0])
	require.InDelta(t, 20.0, tree.Weight, epsTiny)
	require.Equal(t, tsp.Tour{0, 1, 2, 3, 4}, tree.Preorder())
}

func TestMST_SinglePoint(t *testing.T) {
	tree := tsp.MinimumSpanningTree(tsp.NewDistanceTable(mustInstance(t, [][2]float64{{1, 2}})))
	require.Zero(t, tree.Weight)
	require.Empty(t, tree.Edges)
	require.Equal(t, tsp.Tour{0}, tree.Preorder())
}

func TestMST_PreorderIsPermutation(t *testing.T) {
	for _, n := range []int{2, 3, 17, 64} {
		in := randomInstance(t, n, int64(n))
		tree := tsp.MinimumSpanningTree(tsp.NewDistanceTable(in))
		require.Len(t, tree.Edges, n-1)
		require.NoError(t, tsp.ValidateTour(tree.Preorder(), n))

		var sum float64
		for _, e := range tree.Edges {
			sum += e.W
			require.Equal(t, e.U, tree.Parent[e.V])
		}
		require.InDelta(t, tree.Weight, sum, epsTiny)
	}
}
