// Package tsp - distance model shared by all solvers.
//
// Distance and TourLength are the reference definitions; DistanceTable is the
// precomputed form solvers use in their hot loops. Both yield identical values
// because the table stores exactly Distance(p, q) for every pair.
//
// Design:
//   - No rounding anywhere; output formatting belongs to writers.
//   - The table is built per solver call and owned by it, so the Instance itself
//     stays immutable and free of caches.
//   - Above MaxTableSize points the table degrades to on-the-fly evaluation to
//     keep memory bounded (a dense n×n table is O(n²)).
package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxTableSize is the largest instance for which a dense distance table is built.
const MaxTableSize = 2048

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	var (
		dx = p.X - q.X
		dy = p.Y - q.Y
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// TourLength returns the cyclic length of t over in: the sum of consecutive
// distances plus the closing edge from the last point back to the first.
// A one-point tour has length 0. Callers guarantee len(t) ≥ 1 and valid indices.
//
// Complexity: O(n).
func TourLength(in *Instance, t Tour) float64 {
	var n = len(t)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += Distance(in.points[t[i]], in.points[t[i+1]])
	}
	sum += Distance(in.points[t[n-1]], in.points[t[0]])

	return sum
}

// DistanceTable is a symmetric distance lookup over an Instance.
// It is not safe for concurrent mutation, but is never mutated after
// construction, so read-only sharing is fine.
type DistanceTable struct {
	pts []Point
	sym *mat.SymDense // nil when the instance exceeds MaxTableSize
}

// NewDistanceTable precomputes all pairwise distances of in (upper triangle
// mirrored by SymDense).
//
// Complexity: O(n²) time and space for n ≤ MaxTableSize, O(1) otherwise.
func NewDistanceTable(in *Instance) *DistanceTable {
	var (
		n = len(in.points)
		d = &DistanceTable{pts: in.points}
	)
	if n > MaxTableSize {
		return d
	}

	d.sym = mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.sym.SetSym(i, j, Distance(in.points[i], in.points[j]))
		}
	}

	return d
}

// Len returns the number of points covered by the table.
func (d *DistanceTable) Len() int { return len(d.pts) }

// Dense reports whether distances are served from a precomputed matrix.
func (d *DistanceTable) Dense() bool { return d.sym != nil }

// At returns the distance between points i and j.
func (d *DistanceTable) At(i, j int) float64 {
	if d.sym != nil {
		return d.sym.At(i, j)
	}

	return Distance(d.pts[i], d.pts[j])
}

// Length is TourLength evaluated through the table.
//
// Complexity: O(n).
func (d *DistanceTable) Length(t Tour) float64 {
	var n = len(t)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d.At(t[i], t[i+1])
	}

	return sum + d.At(t[n-1], t[0])
}
