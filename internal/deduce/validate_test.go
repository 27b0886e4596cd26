package deduce_test

import (
	"sudoku/internal/deduce"
	"sudoku/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

const solvedKey = "" +
	"534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

func TestValid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(g *domain.Grid)
		key    string
		valid  bool
	}{
		{
			name:  "classic puzzle",
			key:   classicPuzzleKey,
			valid: true,
		},
		{
			name:  "solved board",
			key:   solvedKey,
			valid: true,
		},
		{
			name:  "empty board has no duplicates",
			key:   "",
			valid: true,
		},
		{
			name: "two fives in row 0",
			mutate: func(g *domain.Grid) {
				g[0][0] = 5
				g[0][4] = 5
			},
			valid: false,
		},
		{
			name: "duplicate in column",
			mutate: func(g *domain.Grid) {
				g[1][3] = 7
				g[6][3] = 7
			},
			valid: false,
		},
		{
			name: "duplicate in box but not row or column",
			mutate: func(g *domain.Grid) {
				g[0][0] = 9
				g[1][1] = 9
			},
			valid: false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var g *domain.Grid
			if tt.key != "" {
				g = mustGrid(t, tt.key)
			} else {
				g = &domain.Grid{}
			}
			if tt.mutate != nil {
				tt.mutate(g)
			}

			require.Equal(t, tt.valid, deduce.Valid(g))
		})
	}
}

func TestSolved(t *testing.T) {
	require.True(t, deduce.Solved(mustGrid(t, solvedKey)))

	// valid but incomplete
	require.False(t, deduce.Solved(mustGrid(t, classicPuzzleKey)))
	require.False(t, deduce.Solved(&domain.Grid{}))

	// complete but invalid: swap two cells in a solved board
	g := mustGrid(t, solvedKey)
	g[0][0], g[0][1] = g[0][1], g[0][0]
	require.False(t, deduce.Solved(g))
}

// Validity is preserved by symmetry-group transformations, e.g. swapping two
// of the three row bands.
func TestValid_BandSwapInvariance(t *testing.T) {
	g := mustGrid(t, solvedKey)
	require.True(t, deduce.Valid(g))

	var swapped domain.Grid
	for r := range domain.GridSize {
		src := r
		switch {
		case r < 3:
			src = r + 3
		case r < 6:
			src = r - 3
		}
		swapped[r] = g[src]
	}

	require.True(t, deduce.Valid(&swapped))
	require.True(t, deduce.Solved(&swapped))
}
