// Package tsp_test covers the distance model and tour utilities.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/tsp"
)

func TestDistance_Euclidean(t *testing.T) {
	p := tsp.Point{X: 0, Y: 0}
	q := tsp.Point{X: 3, Y: 4}
	require.Equal(t, 5.0, tsp.Distance(p, q))
	require.Equal(t, tsp.Distance(p, q), tsp.Distance(q, p))
	require.Zero(t, tsp.Distance(q, q))
}

func TestTourLength_ClosesTheCycle(t *testing.T) {
	in := unitSquare(t)
	require.InDelta(t, 4.0, tsp.TourLength(in, tsp.Tour{0, 1, 2, 3}), epsTiny)
	require.InDelta(t, 2+2*math.Sqrt2, tsp.TourLength(in, tsp.Tour{0, 2, 1, 3}), epsTiny)
	require.Zero(t, tsp.TourLength(in, tsp.Tour{2}))
}

func TestTourLength_RotationAndReversalInvariant(t *testing.T) {
	in := randomInstance(t, 12, 21)
	base := tsp.IdentityTour(in.Len())
	want := tsp.TourLength(in, base)

	for start := 0; start < in.Len(); start++ {
		rot, err := tsp.RotateToStart(base, start)
		require.NoError(t, err)
		require.Equal(t, start, rot[0])
		require.InDelta(t, want, tsp.TourLength(in, rot), epsTiny)
		require.InDelta(t, want, tsp.TourLength(in, tsp.Reversed(rot)), epsTiny)
		require.True(t, tsp.SameCycle(base, rot))
		require.True(t, tsp.SameCycle(base, tsp.Reversed(rot)))
	}
}

func TestDistanceTable_AgreesWithTourLength(t *testing.T) {
	in := randomInstance(t, 40, 13)
	dist := tsp.NewDistanceTable(in)
	require.True(t, dist.Dense())
	require.Equal(t, in.Len(), dist.Len())

	tour := tsp.Reversed(tsp.IdentityTour(in.Len()))
	require.InDelta(t, tsp.TourLength(in, tour), dist.Length(tour), epsTiny)
	require.Equal(t, dist.At(3, 7), dist.At(7, 3))
	require.Zero(t, dist.At(5, 5))
}

func TestDistanceTable_SparseAboveLimit(t *testing.T) {
	in := randomInstance(t, tsp.MaxTableSize+1, 3)
	dist := tsp.NewDistanceTable(in)
	require.False(t, dist.Dense())
	require.Equal(t, tsp.Distance(in.Point(10), in.Point(20)), dist.At(10, 20))
}

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour(tsp.Tour{2, 0, 1}, 3))

	cases := map[string]tsp.Tour{
		"short":     {0, 1},
		"repeat":    {0, 1, 1},
		"negative":  {0, -1, 2},
		"too large": {0, 1, 3},
	}
	for name, tour := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tsp.ValidateTour(tour, 3), tsp.ErrInvalidTour)
		})
	}
	require.ErrorIs(t, tsp.ValidateTour(nil, 0), tsp.ErrInvalidTour)
}

func TestRotateToStart_Missing(t *testing.T) {
	_, err := tsp.RotateToStart(tsp.Tour{0, 1, 2}, 5)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestSameCycle(t *testing.T) {
	require.True(t, tsp.SameCycle(tsp.Tour{0, 1, 2, 3}, tsp.Tour{2, 3, 0, 1}))
	require.True(t, tsp.SameCycle(tsp.Tour{0, 1, 2, 3}, tsp.Tour{0, 3, 2, 1}))
	require.False(t, tsp.SameCycle(tsp.Tour{0, 1, 2, 3}, tsp.Tour{0, 2, 1, 3}))
	require.False(t, tsp.SameCycle(tsp.Tour{0, 1}, tsp.Tour{0, 1, 2}))
}

func TestTour_LabelsAndClone(t *testing.T) {
	tour := tsp.Tour{0, 2, 1}
	require.Equal(t, []int{1, 3, 2}, tour.Labels())

	cp := tour.Clone()
	cp[0] = 9
	require.Equal(t, 0, tour[0])
	require.Nil(t, tsp.Tour(nil).Clone())
	require.Equal(t, "[0 2 1 ↺]", tsp.DebugString(tour))
}
