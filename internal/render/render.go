// Package render produces human-readable text for Sudoku boards.
package render

import (
	"strings"
	"sudoku/pkg/domain"
)

const (
	headerWidth = 37
	title       = "SUDOKU PUZZLE"
)

// Grid renders the board with box separators, using a dot for empty cells:
//
//	═════════════════════════════════════
//	            SUDOKU PUZZLE
//	═════════════════════════════════════
//	│ 5 3 · │ · 7 · │ · · · │
//	...
func Grid(g *domain.Grid) string {
	var sb strings.Builder

	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("═", headerWidth) + "\n")
	sb.WriteString(strings.Repeat(" ", (headerWidth-len(title))/2) + title + "\n")
	sb.WriteString(strings.Repeat("═", headerWidth) + "\n")

	for r := range domain.GridSize {
		if r%domain.BoxSize == 0 && r > 0 {
			sb.WriteString("├" + strings.Repeat("─", 7) + "┼" + strings.Repeat("─", 7) + "┼" + strings.Repeat("─", 7) + "┤\n")
		}

		sb.WriteString("│ ")
		for c := range domain.GridSize {
			if c%domain.BoxSize == 0 && c > 0 {
				sb.WriteString("│ ")
			}
			if g[r][c] == 0 {
				sb.WriteString("· ")
			} else {
				sb.WriteByte('0' + g[r][c])
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("│\n")
	}

	sb.WriteString(strings.Repeat("═", headerWidth) + "\n")

	return sb.String()
}
