package postgres_test

import (
	"context"
	"strings"
	"sudoku/pkg/domain"
	"sudoku/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testGridKey(prefix string) string {
	// 81-character key with a distinguishable prefix
	return (prefix + strings.Repeat("0", 81))[:81]
}

func TestPgSQL_StorePuzzles(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("store single puzzle", func(t *testing.T) {
		p := domain.Puzzle{
			UserID:  userID,
			GridKey: testGridKey("1"),
			Status:  domain.PuzzleStatusPending,
		}

		res, err := pgSQL.StorePuzzles(ctx, p)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, testGridKey("1"), res[0].GridKey)
		require.NotEqual(t, domain.PuzzleID(uuid.Nil), res[0].ID)
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple puzzles", func(t *testing.T) {
		p1 := domain.Puzzle{UserID: userID, GridKey: testGridKey("2"), Status: domain.PuzzleStatusPending}
		p2 := domain.Puzzle{UserID: userID, GridKey: testGridKey("3"), Status: domain.PuzzleStatusPending}

		res, err := pgSQL.StorePuzzles(ctx, p1, p2)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store nothing", func(t *testing.T) {
		res, err := pgSQL.StorePuzzles(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingPuzzlesByGridKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	keyA := testGridKey("4")
	keyB := testGridKey("5")

	p1 := domain.Puzzle{UserID: userID, GridKey: keyA, Status: domain.PuzzleStatusPending}
	p2 := domain.Puzzle{UserID: userID, GridKey: keyA, Status: domain.PuzzleStatusPending}
	p3 := domain.Puzzle{UserID: userID, GridKey: keyA, Status: domain.PuzzleStatusSolved}
	p4 := domain.Puzzle{UserID: userID, GridKey: keyB, Status: domain.PuzzleStatusPending}
	ins, err := pgSQL.StorePuzzles(ctx, p1, p2, p3, p4)
	require.NoError(t, err)
	require.Len(t, ins, 4)

	empty := ""
	err = pgSQL.UpdatePendingPuzzlesByGridKey(ctx, keyA, storage.PuzzleUpdates{
		Status:    domain.PuzzleStatusStalled,
		Result:    &domain.PuzzleResult{Passes: 1},
		LastError: &empty,
	})
	require.NoError(t, err)

	page, err := pgSQL.UserPuzzles(ctx, userID, "", time.Time{}, 50)
	require.NoError(t, err)

	byID := map[uuid.UUID]domain.Puzzle{}
	for _, p := range page.Puzzles {
		byID[uuid.UUID(p.ID)] = p
	}

	// the two pending puzzles for keyA were updated
	for i := range 2 {
		p := byID[uuid.UUID(ins[i].ID)]
		require.Equal(t, domain.PuzzleStatusStalled, p.Status)
		require.Equal(t, 1, p.Result.Passes)
		require.EqualValues(t, 1, p.Attempts)
		require.False(t, p.UpdatedAt.IsZero())
	}
	// the already-finished puzzle and the other key were untouched
	require.Equal(t, domain.PuzzleStatusSolved, byID[uuid.UUID(ins[2].ID)].Status)
	require.EqualValues(t, 0, byID[uuid.UUID(ins[2].ID)].Attempts)
	require.Equal(t, domain.PuzzleStatusPending, byID[uuid.UUID(ins[3].ID)].Status)
}

func TestPgSQL_UpdatePendingPuzzles_FailedRespectsMaxAttempts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	key := testGridKey("6")
	ins, err := pgSQL.StorePuzzles(ctx, domain.Puzzle{
		UserID:  userID,
		GridKey: key,
		Status:  domain.PuzzleStatusPending,
	})
	require.NoError(t, err)

	lastErr := "worker crashed"
	updates := storage.PuzzleUpdates{
		Status:      domain.PuzzleStatusFailed,
		LastError:   &lastErr,
		MaxAttempts: 2,
	}

	// first attempt: budget not exhausted, stays pending
	require.NoError(t, pgSQL.UpdatePendingPuzzlesByGridKey(ctx, key, updates))
	p, err := pgSQL.PuzzleByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.PuzzleStatusPending, p.Status)
	require.EqualValues(t, 1, p.Attempts)
	require.Equal(t, lastErr, p.LastError)

	// second attempt: budget exhausted, becomes failed
	require.NoError(t, pgSQL.UpdatePendingPuzzlesByGridKey(ctx, key, updates))
	p, err = pgSQL.PuzzleByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.PuzzleStatusFailed, p.Status)
	require.EqualValues(t, 2, p.Attempts)
}

func TestPgSQL_PendingPuzzleCountByGridKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	key := testGridKey("7")
	_, err := pgSQL.StorePuzzles(ctx,
		domain.Puzzle{UserID: domain.UserID(uuid.New()), GridKey: key, Status: domain.PuzzleStatusPending},
		domain.Puzzle{UserID: domain.UserID(uuid.New()), GridKey: key, Status: domain.PuzzleStatusPending},
		domain.Puzzle{UserID: domain.UserID(uuid.New()), GridKey: key, Status: domain.PuzzleStatusSolved},
	)
	require.NoError(t, err)

	count, err := pgSQL.PendingPuzzleCountByGridKey(ctx, key)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	count, err = pgSQL.PendingPuzzleCountByGridKey(ctx, testGridKey("8"))
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPgSQL_DeletePuzzle(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StorePuzzles(ctx, domain.Puzzle{
		UserID:  userID,
		GridKey: testGridKey("9"),
		Status:  domain.PuzzleStatusPending,
	})
	require.NoError(t, err)

	deleted, err := pgSQL.DeletePuzzle(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	// reads exclude soft-deleted rows
	p, err := pgSQL.PuzzleByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.Nil(t, p)

	// deleting twice reports not found
	deleted, err = pgSQL.DeletePuzzle(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.Nil(t, deleted)

	// other users cannot delete the record
	other := domain.UserID(uuid.New())
	deleted, err = pgSQL.DeletePuzzle(ctx, other, ins[0].ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_UserPuzzles_PaginationAndFilter(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	for i := range 5 {
		status := domain.PuzzleStatusPending
		if i%2 == 0 {
			status = domain.PuzzleStatusSolved
		}
		_, err := pgSQL.StorePuzzles(ctx, domain.Puzzle{
			UserID:  userID,
			GridKey: testGridKey("1"),
			Status:  status,
		})
		require.NoError(t, err)
		// spread created_at so cursor ordering is deterministic
		time.Sleep(10 * time.Millisecond)
	}

	// first page
	page, err := pgSQL.UserPuzzles(ctx, userID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Puzzles, 2)
	require.NotNil(t, page.NextCursor)
	require.True(t, page.Puzzles[0].CreatedAt.After(page.Puzzles[1].CreatedAt))

	// second page via cursor
	page2, err := pgSQL.UserPuzzles(ctx, userID, "", *page.NextCursor, 50)
	require.NoError(t, err)
	require.Len(t, page2.Puzzles, 3)
	require.Nil(t, page2.NextCursor)

	// status filter
	solvedPage, err := pgSQL.UserPuzzles(ctx, userID, domain.PuzzleStatusSolved, time.Time{}, 50)
	require.NoError(t, err)
	require.Len(t, solvedPage.Puzzles, 3)
	for _, p := range solvedPage.Puzzles {
		require.Equal(t, domain.PuzzleStatusSolved, p.Status)
	}
}

func TestPgSQL_LastFinishedPuzzleByGridKey(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	key := testGridKey("2")

	// nothing finished yet
	p, err := pgSQL.LastFinishedPuzzleByGridKey(ctx, key)
	require.NoError(t, err)
	require.Nil(t, p)

	ins, err := pgSQL.StorePuzzles(ctx,
		domain.Puzzle{UserID: userID, GridKey: key, Status: domain.PuzzleStatusPending},
	)
	require.NoError(t, err)

	// still nothing: pending does not count as finished
	p, err = pgSQL.LastFinishedPuzzleByGridKey(ctx, key)
	require.NoError(t, err)
	require.Nil(t, p)

	res := domain.PuzzleResult{Solved: true, Passes: 3}
	_, err = pgSQL.UpdatePuzzleByID(ctx, ins[0].ID, storage.PuzzleUpdates{
		Status: domain.PuzzleStatusSolved,
		Result: &res,
	})
	require.NoError(t, err)

	p, err = pgSQL.LastFinishedPuzzleByGridKey(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, domain.PuzzleStatusSolved, p.Status)
	require.True(t, p.Result.Solved)
	require.Equal(t, 3, p.Result.Passes)
}
