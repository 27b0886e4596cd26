package solver_test

import (
	"context"
	"errors"
	"strings"
	"sudoku/internal/solver"
	"testing"
	"time"

	mockstorage "sudoku/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"sudoku/pkg/domain"
	"sudoku/pkg/serrors"
	"sudoku/pkg/storage"
)

const (
	gridKey = "" +
		"530070000" +
		"600195000" +
		"098000060" +
		"800060003" +
		"400803001" +
		"700020006" +
		"060000280" +
		"000419005" +
		"000080079"

	// same board with a duplicated 5 in the first row
	contradictoryKey = "" +
		"550070000" +
		"600195000" +
		"098000060" +
		"800060003" +
		"400803001" +
		"700020006" +
		"060000280" +
		"000419005" +
		"000080079"

	solvedKey = "" +
		"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

func newTestSolver(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, solver.Solver) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := solver.New(st, solver.Options{MaxAttempts: 3, ResultCacheTTL: time.Hour})

	return ctrl, st, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestSolver_Enqueue_JobAdded(t *testing.T) {
	ctrl, st, s := newTestSolver(t)

	userID := domain.UserID{}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// Expect storing the puzzle
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) {
				// return the same puzzle with an ID
				ret := puzzles
				if len(ret) != 1 {
					t.Fatalf("expected one puzzle input")
				}
				ret[0].ID = domain.PuzzleID{} // zero is fine for test

				return ret, nil
			},
		)
		// Expect adding a job and report it was added
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	puzzle, err := s.Enqueue(context.Background(), userID, gridKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if puzzle == nil {
		t.Fatalf("expected puzzle, got nil")
	}
	if puzzle.GridKey != gridKey {
		t.Fatalf("expected grid key %q got %q", gridKey, puzzle.GridKey)
	}
	if puzzle.Status != domain.PuzzleStatusPending {
		t.Fatalf("expected status PENDING, got %s", puzzle.Status)
	}
}

func TestSolver_Enqueue_UsesLastFinishedResult(t *testing.T) {
	ctrl, st, s := newTestSolver(t)

	userID := domain.UserID{}
	finished := domain.Puzzle{Status: domain.PuzzleStatusStalled, Result: domain.PuzzleResult{Passes: 3}}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) {
				ret := puzzles
				ret[0].ID = domain.PuzzleID{}

				return ret, nil
			},
		)
		// Job not added (already exists)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		// There is a previously finished puzzle for the board
		tx.EXPECT().LastFinishedPuzzleByGridKey(gomock.Any(), gridKey).Return(&finished, nil)
		// Update the newly created puzzle to take over that status and result
		tx.EXPECT().UpdatePuzzleByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PuzzleID, updates storage.PuzzleUpdates) (*domain.Puzzle, error) {
				if updates.Status != domain.PuzzleStatusStalled || updates.Result == nil {
					t.Fatalf("expected stalled update with result")
				}
				res := domain.Puzzle{Status: updates.Status, Result: *updates.Result}

				return &res, nil
			},
		)
	})

	puzzle, err := s.Enqueue(context.Background(), userID, gridKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if puzzle.Status != domain.PuzzleStatusStalled {
		t.Fatalf("expected status STALLED, got %s", puzzle.Status)
	}
	if puzzle.Result.Passes != 3 {
		t.Fatalf("expected reused result, got %+v", puzzle.Result)
	}
}

func TestSolver_Enqueue_PendingWhenJobExistsWithoutResult(t *testing.T) {
	ctrl, st, s := newTestSolver(t)
	userID := domain.UserID{}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) {
				ret := puzzles
				ret[0].ID = domain.PuzzleID{}

				return ret, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastFinishedPuzzleByGridKey(gomock.Any(), gridKey).Return(nil, nil)
	})

	puzzle, err := s.Enqueue(context.Background(), userID, gridKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if puzzle.Status != domain.PuzzleStatusPending {
		t.Fatalf("expected status PENDING, got %s", puzzle.Status)
	}
}

func TestSolver_Enqueue_MalformedGrid(t *testing.T) {
	_, st, s := newTestSolver(t)
	// No storage calls expected

	_, err := s.Enqueue(context.Background(), domain.UserID{}, "12345")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	// ensure no calls were made on storage
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
}

func TestSolver_Enqueue_ContradictoryGrid(t *testing.T) {
	_, st, s := newTestSolver(t)

	_, err := s.Enqueue(context.Background(), domain.UserID{}, contradictoryKey)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrInvalidPuzzle) {
		t.Fatalf("expected ErrInvalidPuzzle, got %v", err)
	}
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
}

func TestSolver_Enqueue_PropagatesErrors(t *testing.T) {
	ctrl, st, s := newTestSolver(t)
	userID := domain.UserID{}

	// error from StorePuzzles
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := s.Enqueue(context.Background(), userID, gridKey); err == nil {
		t.Fatalf("expected error from StorePuzzles")
	}

	// error from AddJob
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) {
				return puzzles, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := s.Enqueue(context.Background(), userID, gridKey); err == nil {
		t.Fatalf("expected error from AddJob")
	}

	// error from LastFinishedPuzzleByGridKey
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) { return puzzles, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastFinishedPuzzleByGridKey(gomock.Any(), gridKey).Return(nil, errors.New("last err"))
	})
	if _, err := s.Enqueue(context.Background(), userID, gridKey); err == nil {
		t.Fatalf("expected error from LastFinishedPuzzleByGridKey")
	}

	// error from UpdatePuzzleByID
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePuzzles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) { return puzzles, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastFinishedPuzzleByGridKey(gomock.Any(), gridKey).
			Return(&domain.Puzzle{Status: domain.PuzzleStatusSolved}, nil)
		tx.EXPECT().UpdatePuzzleByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("update err"))
	})
	if _, err := s.Enqueue(context.Background(), userID, gridKey); err == nil {
		t.Fatalf("expected error from UpdatePuzzleByID")
	}
}

func TestSolver_SolveNow(t *testing.T) {
	_, _, s := newTestSolver(t)

	// full valid board with the center cell blanked, a single forced placement
	missingCenterKey := solvedKey[:40] + "0" + solvedKey[41:]

	res, err := s.SolveNow(context.Background(), missingCenterKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved {
		t.Fatalf("expected board to be solved, got %+v", res)
	}
	if len(res.Placements) != 1 {
		t.Fatalf("expected one placement, got %d", len(res.Placements))
	}
	if !res.Grid.Full() {
		t.Fatalf("expected full final grid")
	}
	if got := res.Grid.Encode(); got != solvedKey {
		t.Fatalf("expected final grid %q, got %q", solvedKey, got)
	}
}

func TestSolver_SolveNow_StallsOnEmptyBoard(t *testing.T) {
	_, _, s := newTestSolver(t)

	emptyKey := strings.Repeat("0", 81)
	res, err := s.SolveNow(context.Background(), emptyKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Solved {
		t.Fatalf("expected an empty board to stall")
	}
	if res.Passes != 1 {
		t.Fatalf("expected a single empty pass, got %d", res.Passes)
	}
	if len(res.Placements) != 0 {
		t.Fatalf("expected no placements, got %d", len(res.Placements))
	}
}

func TestSolver_SolveNow_RejectsBadBoards(t *testing.T) {
	_, _, s := newTestSolver(t)

	if _, err := s.SolveNow(context.Background(), "x"); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, err := s.SolveNow(context.Background(), contradictoryKey); !errors.Is(err, serrors.ErrInvalidPuzzle) {
		t.Fatalf("expected ErrInvalidPuzzle, got %v", err)
	}
}

func TestSolver_UserPuzzles_SuccessAndPagination(t *testing.T) {
	_, st, s := newTestSolver(t)
	userID := domain.UserID{}
	status := domain.PuzzleStatusPending
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339)

	page := storage.UserPuzzles{
		Puzzles: []domain.Puzzle{{GridKey: gridKey}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	st.EXPECT().UserPuzzles(gomock.Any(), userID, status, cursorTime, uint(10)).Return(page, nil)

	puzzles, next, err := s.UserPuzzles(context.Background(), userID, status, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(puzzles) != 1 || puzzles[0].GridKey != gridKey {
		t.Fatalf("unexpected puzzles: %+v", puzzles)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestSolver_UserPuzzles_InvalidCursor(t *testing.T) {
	_, _, s := newTestSolver(t)
	_, _, err := s.UserPuzzles(context.Background(), domain.UserID{}, "", "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestSolver_Result(t *testing.T) {
	_, st, s := newTestSolver(t)
	userID := domain.UserID{}
	id := domain.PuzzleID{}

	// found
	st.EXPECT().PuzzleByID(gomock.Any(), userID, id).Return(&domain.Puzzle{GridKey: gridKey}, nil)
	puzzle, err := s.Result(context.Background(), userID, id)
	if err != nil || puzzle == nil || puzzle.GridKey != gridKey {
		t.Fatalf("unexpected: puzzle=%+v err=%v", puzzle, err)
	}

	// not found
	st.EXPECT().PuzzleByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = s.Result(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().PuzzleByID(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	_, err = s.Result(context.Background(), userID, id)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestSolver_Delete(t *testing.T) {
	_, st, s := newTestSolver(t)
	userID := domain.UserID{}
	id := domain.PuzzleID{}

	// success
	st.EXPECT().DeletePuzzle(gomock.Any(), userID, id).Return(&domain.Puzzle{}, nil)
	if err := s.Delete(context.Background(), userID, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeletePuzzle(gomock.Any(), userID, id).Return(nil, nil)
	err := s.Delete(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeletePuzzle(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	if err := s.Delete(context.Background(), userID, id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
