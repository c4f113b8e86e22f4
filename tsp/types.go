// Package tsp - shared types, algorithm names and sentinel errors.
//
// Every error returned by this package is one of the sentinels below (possibly
// wrapped with context by outer layers); callers match them with errors.Is.
package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrInvalidInstance is returned when an instance is empty or carries
	// non-finite coordinates.
	ErrInvalidInstance = errors.New("tsp: invalid instance")

	// ErrInvalidAlgorithm is returned by the facade for an unknown algorithm name.
	ErrInvalidAlgorithm = errors.New("tsp: invalid algorithm")

	// ErrInvalidTimeBudget is returned when a time-bounded solver receives a
	// zero or negative budget.
	ErrInvalidTimeBudget = errors.New("tsp: invalid time budget")

	// ErrInvalidTour signals that a sequence is not a permutation of [0..n-1].
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidSchedule signals an annealing schedule outside its domain
	// (Initial>0, Min>0, 0<Alpha<1).
	ErrInvalidSchedule = errors.New("tsp: invalid annealing schedule")
)

// Algorithm names one of the three interchangeable solving strategies.
// The string values are the short selectors used on the command line.
type Algorithm string

const (
	// BruteForce enumerates every tour under a fixed start (exact, time-bounded).
	BruteForce Algorithm = "BF"

	// Approximation builds an MST and linearizes it by preorder walk (≤ 2·OPT).
	Approximation Algorithm = "Approx"

	// LocalSearch runs simulated annealing over swap neighborhoods (time-bounded).
	LocalSearch Algorithm = "LS"
)

// Algorithms lists the supported algorithms in canonical order.
var Algorithms = []Algorithm{BruteForce, Approximation, LocalSearch}

// ParseAlgorithm maps a selector to an Algorithm. Both short (BF, Approx, LS)
// and long (BruteForce, Approximation, LocalSearch) names are accepted,
// case-insensitively. Unknown names yield ErrInvalidAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bf", "bruteforce", "brute_force":
		return BruteForce, nil
	case "approx", "approximation":
		return Approximation, nil
	case "ls", "localsearch", "local_search":
		return LocalSearch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case BruteForce, Approximation, LocalSearch:
		return true
	}

	return false
}

// TimeBounded reports whether the algorithm requires a positive time budget.
func (a Algorithm) TimeBounded() bool {
	return a == BruteForce || a == LocalSearch
}

// String returns the short selector.
func (a Algorithm) String() string { return string(a) }

// Point is a labeled location in the plane. ID is the 0-based position the
// point had when the instance was loaded; output writers print ID+1.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// Tour is a permutation of point indices [0..n-1] read as a cycle: after the
// last element the tour returns to the first. No closing vertex is stored.
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Labels returns the 1-based labels of the tour's points (index + 1).
func (t Tour) Labels() []int {
	out := make([]int, len(t))
	var i int
	for i = range t {
		out[i] = t[i] + 1
	}

	return out
}

// Instance is an immutable set of points indexed 0..n-1.
// It is safe for concurrent use by any number of solver invocations.
type Instance struct {
	name   string
	points []Point
}

// NewInstance copies pts into a new Instance. Point IDs are reassigned to
// their positions so that IDs always match indices.
//
// Errors: ErrInvalidInstance when pts is empty or a coordinate is NaN/±Inf.
//
// Complexity: O(n).
func NewInstance(name string, pts []Point) (*Instance, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrInvalidInstance)
	}
	cp := make([]Point, len(pts))

	var (
		i int
		p Point
	)
	for i, p = range pts {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: point %d has non-finite coordinates", ErrInvalidInstance, i)
		}
		cp[i] = Point{ID: i, X: p.X, Y: p.Y}
	}

	return &Instance{name: name, points: cp}, nil
}

// FromCoords is a convenience constructor over raw (x, y) pairs.
func FromCoords(name string, coords [][2]float64) (*Instance, error) {
	pts := make([]Point, len(coords))
	var i int
	for i = range coords {
		pts[i] = Point{ID: i, X: coords[i][0], Y: coords[i][1]}
	}

	return NewInstance(name, pts)
}

// Name returns the instance name (may be empty).
func (in *Instance) Name() string { return in.name }

// Len returns the number of points.
func (in *Instance) Len() int { return len(in.points) }

// Point returns the i-th point. It panics if i is out of range, like a slice index.
func (in *Instance) Point(i int) Point { return in.points[i] }

// Points returns a copy of the points.
func (in *Instance) Points() []Point {
	out := make([]Point, len(in.points))
	copy(out, in.points)

	return out
}

// StopReason records why a solver returned.
type StopReason int

const (
	// StopExhausted means brute force enumerated every permutation.
	StopExhausted StopReason = iota
	// StopDeadline means the time budget expired first.
	StopDeadline
	// StopFrozen means the annealing temperature fell below its minimum.
	StopFrozen
	// StopConstructed means a constructive algorithm produced its tour.
	StopConstructed
	// StopTrivial means the instance was too small for the search to run.
	StopTrivial
)

func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopDeadline:
		return "deadline"
	case StopFrozen:
		return "frozen"
	case StopConstructed:
		return "constructed"
	case StopTrivial:
		return "trivial"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result is the normalized outcome of one solver invocation.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Length is the cyclic length of Tour.
	Length float64

	// Tour is an independent snapshot; the solver never touches it again.
	Tour Tour

	// Elapsed is the wall-clock time spent inside the solver.
	Elapsed time.Duration

	// Complete is true only when brute force enumerated every permutation
	// before its deadline. Always false for Approximation and LocalSearch.
	Complete bool

	// Iterations counts permutations evaluated (BF) or annealing steps (LS).
	Iterations int64

	// Seed is the effective random seed (LS only).
	Seed int64

	// StopReason tells which termination path was taken.
	StopReason StopReason

	// LowerBound is the MST weight for Approximation (≤ OPT), 0 otherwise.
	LowerBound float64
}

// ElapsedSeconds returns Elapsed as fractional seconds.
func (r Result) ElapsedSeconds() float64 { return r.Elapsed.Seconds() }

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
