package deduce

import "sudoku/pkg/domain"

// Valid reports whether the grid has no repeated digit in any row, column or
// 3x3 box. Empty cells are ignored and never count as duplicates of each
// other. The grid is not mutated.
func Valid(g *domain.Grid) bool {
	// rows
	for r := range domain.GridSize {
		seen := domain.DigitSet(0)
		for c := range domain.GridSize {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if seen.Has(v) {
				return false
			}
			seen = seen.Add(v)
		}
	}
	// cols
	for c := range domain.GridSize {
		seen := domain.DigitSet(0)
		for r := range domain.GridSize {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if seen.Has(v) {
				return false
			}
			seen = seen.Add(v)
		}
	}
	// boxes
	for br := range domain.BoxSize {
		for bc := range domain.BoxSize {
			seen := domain.DigitSet(0)
			for dr := range domain.BoxSize {
				for dc := range domain.BoxSize {
					v := g[br*domain.BoxSize+dr][bc*domain.BoxSize+dc]
					if v == 0 {
						continue
					}
					if seen.Has(v) {
						return false
					}
					seen = seen.Add(v)
				}
			}
		}
	}

	return true
}

// Solved reports whether the grid is complete: every cell filled and no
// constraint violated.
func Solved(g *domain.Grid) bool {
	return g.Full() && Valid(g)
}
