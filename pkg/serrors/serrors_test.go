package serrors_test

import (
	"errors"
	"fmt"
	"sudoku/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrInvalidPuzzle, "row 0 repeats digit %d", 5)

	require.ErrorIs(t, err, serrors.ErrInvalidPuzzle)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "row 0 repeats digit 5", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrInternal, cause, "could not solve")

	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "could not solve: boom", err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrNotFound))

	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestKindOnly(t *testing.T) {
	err := serrors.KindOnly(serrors.ErrBadRequest)

	require.Equal(t, "BAD_REQUEST", err.Error())
	require.Equal(t, serrors.ErrBadRequest, err.Kind())
	require.Empty(t, err.Message())
}

func TestAs_FindsWrapper(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.With(serrors.ErrConflict, "duplicate"))

	var serr *serrors.Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, serrors.ErrConflict, serr.Kind())
	require.Equal(t, "duplicate", serr.Message())
}
