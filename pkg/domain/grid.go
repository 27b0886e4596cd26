package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

// GridSize is the edge length of the board; BoxSize is the edge length of one
// of the nine non-overlapping sub-boxes.
const (
	GridSize = 9
	BoxSize  = 3
)

// Grid is the 9x9 Sudoku board state, row-major. 0 marks an empty cell,
// 1-9 a filled digit. The grid is mutated in place by the deduction loop and
// owned by the caller for its whole lifetime.
type Grid [GridSize][GridSize]uint8

// Placement is a deduced value for a currently-empty cell, ready to apply.
type Placement struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Digit uint8 `json:"digit"`
}

// Apply writes the placement's digit into the grid.
func (g *Grid) Apply(p Placement) {
	g[p.Row][p.Col] = p.Digit
}

// EmptyCells returns the number of cells still holding 0.
func (g *Grid) EmptyCells() int {
	n := 0
	for r := range GridSize {
		for c := range GridSize {
			if g[r][c] == 0 {
				n++
			}
		}
	}

	return n
}

// Full reports whether every cell holds a digit.
func (g *Grid) Full() bool {
	return g.EmptyCells() == 0
}

// Encode returns the canonical 81-character row-major digit string for the
// grid ("0" for empty cells). It is used as the de-duplication key for
// background solve jobs: two submissions of the same board share one job.
func (g *Grid) Encode() string {
	var sb strings.Builder
	sb.Grow(GridSize * GridSize)
	for r := range GridSize {
		for c := range GridSize {
			sb.WriteByte('0' + g[r][c])
		}
	}

	return sb.String()
}

// ParseGrid decodes an 81-character digit string produced by Encode.
func ParseGrid(s string) (*Grid, error) {
	if len(s) != GridSize*GridSize {
		return nil, fmt.Errorf("grid key must be %d characters, got %d", GridSize*GridSize, len(s))
	}

	var g Grid
	for i := range len(s) {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("grid key has invalid character %q at position %d", ch, i)
		}
		g[i/GridSize][i%GridSize] = ch - '0'
	}

	return &g, nil
}

// DigitSet is a set of Sudoku digits 1-9 backed by a bitmask. The zero value
// is the empty set.
type DigitSet uint16

// AllDigits is the full set {1..9}. It is the shared read-only constant every
// missing-set computation starts from.
const AllDigits DigitSet = 0b1111111110

// Add returns the set with digit v included. Values outside 1-9 are ignored.
func (s DigitSet) Add(v uint8) DigitSet {
	if v < 1 || v > 9 {
		return s
	}

	return s | 1<<v
}

// Has reports whether digit v is in the set.
func (s DigitSet) Has(v uint8) bool {
	return v >= 1 && v <= 9 && s&(1<<v) != 0
}

// Len returns the number of digits in the set.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Intersect returns the digits present in both sets.
func (s DigitSet) Intersect(o DigitSet) DigitSet {
	return s & o
}

// Sole returns the single digit in the set. ok is false unless the set has
// exactly one element.
func (s DigitSet) Sole() (uint8, bool) {
	if s.Len() != 1 {
		return 0, false
	}

	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Digits returns the set's members in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Len())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}

	return out
}

// String renders the set like "{1 4 9}" for logs and test failures.
func (s DigitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.Digits() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte('}')

	return sb.String()
}
