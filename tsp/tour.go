// Package tsp - tour utilities shared by exact/heuristic solvers.
//
// This file contains compact utilities that operate purely on tour structure
// (index sequences), without depending on distances.
// Provided helpers:
//   - ValidateTour: verify a permutation over {0..n-1}.
//   - IdentityTour: the canonical tour 0,1,…,n-1.
//   - RotateToStart: cyclic shift so that a given vertex comes first.
//   - Reversed: the same cycle traversed backwards (start kept in place).
//   - SameCycle: equality under rotation and reversal.
//   - reverseSegment: in-place segment reversal (2-opt core).
//   - DebugString: compact printable representation for tests/debug.
//
// Tours are open sequences: the closing edge back to t[0] is implicit.
package tsp

import (
	"fmt"
	"strings"
)

// ValidateTour checks that t is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int) error {
	if n <= 0 || len(t) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(t), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d out of range at position %d", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: index %d repeated", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}

// IdentityTour returns [0, 1, …, n-1].
//
// Complexity: O(n).
func IdentityTour(n int) Tour {
	t := make(Tour, n)
	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}

	return t
}

// RotateToStart returns a fresh copy of t shifted so that out[0] == start.
//
// Errors: ErrInvalidTour when start does not occur in t.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(t Tour, start int) (Tour, error) {
	var (
		n     = len(t)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("%w: start %d not in tour", ErrInvalidTour, start)
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out, nil
}

// Reversed returns the cycle traversed in the opposite direction, keeping t[0]
// first: [a, b, c, d] → [a, d, c, b].
//
// Complexity: O(n).
func Reversed(t Tour) Tour {
	out := t.Clone()
	if len(out) > 2 {
		reverseSegment(out, 1, len(out)-1)
	}

	return out
}

// SameCycle reports whether a and b describe the same undirected cycle, i.e.
// they are equal up to rotation and reversal.
//
// Complexity: O(n).
func SameCycle(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rb, err := RotateToStart(b, a[0])
	if err != nil {
		return false
	}
	if equalTours(a, rb) {
		return true
	}

	return equalTours(a, Reversed(rb))
}

func equalTours(a, b Tour) bool {
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// reverseSegment reverses the inclusive segment t[i..k] in place.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(t Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

// DebugString returns a compact printable representation, e.g. "[0 3 1 2 ↺]"
// where the arrow marks the implicit closing edge.
func DebugString(t Tour) string {
	var (
		b strings.Builder
		i int
	)
	b.WriteByte('[')
	for i = range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", t[i])
	}
	b.WriteString(" ↺]")

	return b.String()
}
