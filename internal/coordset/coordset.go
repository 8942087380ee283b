// Package coordset provides small set-algebra helpers over board.Coord,
// shared by the solver's subset reasoning (R3, R5) and the generator's
// mine-shuffling helper.
package coordset

import (
	"sort"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
)

// Set is an unordered collection of coordinates.
type Set map[board.Coord]struct{}

// New builds a Set from a slice of coordinates.
func New(coords []board.Coord) Set {
	s := make(Set, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Slice returns the set's members in row-major order.
func (s Set) Slice() []board.Coord {
	out := make([]board.Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Contains reports whether c is a member of s.
func (s Set) Contains(c board.Coord) bool {
	_, ok := s[c]
	return ok
}

// Diff returns the members of s not in other (s \ other).
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for c := range s {
		if !other.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Intersect returns the members common to both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for c := range small {
		if big.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Equal reports whether the two sets have identical membership.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}
