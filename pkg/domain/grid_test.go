package domain_test

import (
	"strings"
	"sudoku/pkg/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicKey = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseGrid_RoundTrip(t *testing.T) {
	g, err := domain.ParseGrid(classicKey)
	require.NoError(t, err)

	assert.Equal(t, uint8(5), g[0][0])
	assert.Equal(t, uint8(7), g[0][4])
	assert.Equal(t, uint8(9), g[8][8])
	assert.Equal(t, classicKey, g.Encode())
}

func TestParseGrid_RejectsBadInput(t *testing.T) {
	_, err := domain.ParseGrid("12345")
	require.ErrorContains(t, err, "81 characters")

	_, err = domain.ParseGrid(strings.Repeat("0", 80) + "x")
	require.ErrorContains(t, err, "invalid character")
}

func TestGrid_Apply(t *testing.T) {
	g, err := domain.ParseGrid(classicKey)
	require.NoError(t, err)

	g.Apply(domain.Placement{Row: 0, Col: 2, Digit: 4})
	assert.Equal(t, uint8(4), g[0][2])
}

func TestGrid_EmptyCellsAndFull(t *testing.T) {
	var g domain.Grid
	assert.Equal(t, 81, g.EmptyCells())
	assert.False(t, g.Full())

	classic, err := domain.ParseGrid(classicKey)
	require.NoError(t, err)
	assert.Equal(t, 51, classic.EmptyCells())

	for r := range domain.GridSize {
		for c := range domain.GridSize {
			g[r][c] = 1
		}
	}
	assert.Equal(t, 0, g.EmptyCells())
	assert.True(t, g.Full())
}

func TestDigitSet_AddHasLen(t *testing.T) {
	var s domain.DigitSet
	assert.Equal(t, 0, s.Len())

	s = s.Add(3).Add(7).Add(3)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(4))

	// Out-of-range values are ignored.
	assert.Equal(t, s, s.Add(0))
	assert.Equal(t, s, s.Add(10))
	assert.False(t, s.Has(0))
}

func TestDigitSet_AllDigits(t *testing.T) {
	assert.Equal(t, 9, domain.AllDigits.Len())
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, domain.AllDigits.Digits())
}

func TestDigitSet_Intersect(t *testing.T) {
	a := domain.DigitSet(0).Add(1).Add(4).Add(9)
	b := domain.DigitSet(0).Add(4).Add(5).Add(9)

	got := a.Intersect(b)
	assert.Equal(t, []uint8{4, 9}, got.Digits())
	assert.Equal(t, domain.DigitSet(0), a.Intersect(domain.DigitSet(0)))
}

func TestDigitSet_Sole(t *testing.T) {
	v, ok := domain.DigitSet(0).Add(6).Sole()
	require.True(t, ok)
	assert.Equal(t, uint8(6), v)

	_, ok = domain.DigitSet(0).Sole()
	assert.False(t, ok)

	_, ok = domain.DigitSet(0).Add(2).Add(8).Sole()
	assert.False(t, ok)
}

func TestDigitSet_String(t *testing.T) {
	s := domain.DigitSet(0).Add(1).Add(4).Add(9)
	assert.Equal(t, "{1 4 9}", s.String())
	assert.Equal(t, "{}", domain.DigitSet(0).String())
}
