package deduce

import "sudoku/pkg/domain"

// MissingRows returns, for each row, the set of digits 1-9 not present in
// that row. Empty cells are ignored; duplicate digits in a row have no effect
// here since set membership absorbs them (validity is a separate concern).
func MissingRows(g *domain.Grid) [domain.GridSize]domain.DigitSet {
	var missing [domain.GridSize]domain.DigitSet
	for r := range domain.GridSize {
		present := domain.DigitSet(0)
		for c := range domain.GridSize {
			present = present.Add(g[r][c])
		}
		missing[r] = domain.AllDigits &^ present
	}

	return missing
}

// MissingCols is the column counterpart of MissingRows.
func MissingCols(g *domain.Grid) [domain.GridSize]domain.DigitSet {
	var missing [domain.GridSize]domain.DigitSet
	for c := range domain.GridSize {
		present := domain.DigitSet(0)
		for r := range domain.GridSize {
			present = present.Add(g[r][c])
		}
		missing[c] = domain.AllDigits &^ present
	}

	return missing
}
