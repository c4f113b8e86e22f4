package tsp

import (
	"math"
	"sort"
)

// Edge is an undirected MST edge with its Euclidean weight.
type Edge struct {
	U, V int
	W    float64
}

// SpanningTree is a minimum spanning tree rooted at vertex 0.
type SpanningTree struct {
	// Parent[v] is v's parent, -1 for the root.
	Parent []int
	// Children[v] lists v's children in ascending index order.
	Children [][]int
	// Edges in the order Prim added them.
	Edges []Edge
	// Weight is the total edge weight.
	Weight float64
}

// MinimumSpanningTree grows an MST from root 0 over the complete Euclidean
// graph (Prim, dense form). For every vertex outside the tree it keeps the
// lightest edge into the tree; each round the globally lightest candidate joins.
// Ties are broken deterministically: among equally light candidates the lowest
// vertex index joins first, and a vertex with several equally light edges into
// the tree takes the lowest-index tree vertex as its parent.
//
// Time:  O(n²).
// Space: O(n).
func MinimumSpanningTree(dist *DistanceTable) SpanningTree {
	var n = dist.Len()
	// Track which vertices are in the tree.
	inTree := make([]bool, n)
	// Best edge weight to connect each vertex to the growing tree.
	bestCost := make([]float64, n)

	t := SpanningTree{
		Parent:   make([]int, n),
		Children: make([][]int, n),
		Edges:    make([]Edge, 0, max(n-1, 0)),
	}

	var v int
	for v = range bestCost {
		bestCost[v] = math.Inf(1)
		t.Parent[v] = -1
	}
	if n == 0 {
		return t
	}
	bestCost[0] = 0

	var (
		it, u int
		minW  float64
		w     float64
	)
	for it = 0; it < n; it++ {
		// (a) Lightest candidate; ascending scan with strict < keeps the lowest index.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		// (b) Add u to the tree.
		inTree[u] = true
		if p := t.Parent[u]; p >= 0 {
			t.Children[p] = append(t.Children[p], u)
			t.Edges = append(t.Edges, Edge{U: p, V: u, W: minW})
			t.Weight += minW
		}
		// (c) Relax candidates through u.
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			w = dist.At(u, v)
			if w < bestCost[v] || (w == bestCost[v] && u < t.Parent[v]) {
				bestCost[v] = w
				t.Parent[v] = u
			}
		}
	}

	for v = range t.Children {
		sort.Ints(t.Children[v])
	}

	return t
}

// Preorder walks the tree depth-first from the root, visiting a node before
// its children and children in ascending index order. The explicit stack keeps
// deep trees (e.g. points on a line) off the call stack.
//
// Complexity: O(n).
func (t SpanningTree) Preorder() Tour {
	var n = len(t.Parent)
	out := make(Tour, 0, n)
	if n == 0 {
		return out
	}

	stack := make([]int, 0, n)
	stack = append(stack, 0)

	var (
		u  int
		i  int
		ch []int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, u)
		// Push in reverse so the smallest child is popped first.
		ch = t.Children[u]
		for i = len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}

	return out
}
