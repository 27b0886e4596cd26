package deduce

import (
	"context"
	"sudoku/pkg/domain"
	"sudoku/pkg/logger"

	"go.uber.org/zap"
)

// UniqueIntersections scans the grid for empty cells where the intersection
// of the row's and column's missing digits contains exactly one candidate,
// and returns a placement for each. The grid is not mutated.
//
// Cells are enumerated column-major (outer loop over columns, inner over
// rows), which fixes the order of the returned placements. Both missing-set
// collections are computed once from the grid as passed in, so placements
// found in the same scan never observe each other; each targets a distinct
// empty cell.
//
// Every find is logged at discovery time for observability.
func UniqueIntersections(ctx context.Context, g *domain.Grid) []domain.Placement {
	missingRows := MissingRows(g)
	missingCols := MissingCols(g)

	var found []domain.Placement
	for c := range domain.GridSize {
		for r := range domain.GridSize {
			if g[r][c] != 0 {
				continue
			}

			digit, ok := missingRows[r].Intersect(missingCols[c]).Sole()
			if !ok {
				continue
			}

			logger.Debug(ctx, "unique intersection found",
				zap.Int("row", r),
				zap.Int("col", c),
				zap.Uint8("digit", digit))
			found = append(found, domain.Placement{Row: r, Col: c, Digit: digit})
		}
	}

	return found
}
