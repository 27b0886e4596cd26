package storage

import (
	"context"
	"sudoku/pkg/domain"
	"time"
)

// PuzzleUpdates describes optional fields applied to existing puzzles during
// an update. Only non-nil fields are written.
type PuzzleUpdates struct {
	// Status is the new status to set.
	Status domain.PuzzleStatus
	// Result, when provided, replaces the stored solve result payload.
	Result *domain.PuzzleResult
	// LastError, when provided, sets the last error text. An empty string
	// clears the column (sets it to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, only lets the
	// status move to Failed once the attempts after increment exceed this
	// threshold. A value <= 0 disables the guard.
	MaxAttempts int
}

// UserPuzzles groups a page of puzzles for a user with an optional NextCursor
// for pagination.
type UserPuzzles struct {
	// Puzzles contains the current page of records.
	Puzzles []domain.Puzzle
	// NextCursor is the timestamp cursor for the next page, nil on the last page.
	NextCursor *time.Time
}

// PuzzleStorage defines CRUD and query operations for puzzles. Records are
// soft-deleted; implementations exclude deleted rows from reads.
type PuzzleStorage interface {
	// StorePuzzles inserts one or more puzzles and returns the stored rows as
	// they exist in the database, including generated fields.
	StorePuzzles(ctx context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error)
	// UpdatePendingPuzzlesByGridKey updates all pending puzzles sharing the
	// grid key. Attempts is incremented and updated_at set automatically. If
	// Status is Failed and MaxAttempts > 0, status only becomes Failed when
	// attempts after increment exceed MaxAttempts; otherwise it stays Pending.
	UpdatePendingPuzzlesByGridKey(ctx context.Context, gridKey string, updates PuzzleUpdates) error
	// PendingPuzzleCountByGridKey returns the number of pending puzzles for
	// the grid key across all users.
	PendingPuzzleCountByGridKey(ctx context.Context, gridKey string) (int64, error)
	// UpdatePuzzleByID updates a single puzzle and returns the updated row,
	// or nil when not found.
	UpdatePuzzleByID(ctx context.Context, ID domain.PuzzleID, updates PuzzleUpdates) (*domain.Puzzle, error)
	// DeletePuzzle soft-deletes the puzzle for the given user and returns the
	// deleted row, or nil when not found.
	DeletePuzzle(ctx context.Context, userID domain.UserID, ID domain.PuzzleID) (*domain.Puzzle, error)
	// UserPuzzles returns a page of the user's puzzles created before the
	// optional cursor time. If status is non-empty, results are filtered to it.
	UserPuzzles(ctx context.Context,
		userID domain.UserID,
		status domain.PuzzleStatus,
		cursor time.Time,
		limit uint) (UserPuzzles, error)
	// PuzzleByID fetches a puzzle by ID for the given user, or nil when not found.
	PuzzleByID(ctx context.Context, userID domain.UserID, ID domain.PuzzleID) (*domain.Puzzle, error)
	// LastFinishedPuzzleByGridKey returns the most recent puzzle for the grid
	// key whose deduction run finished (SOLVED or STALLED), across all users.
	// Returns nil when none exists.
	LastFinishedPuzzleByGridKey(ctx context.Context, gridKey string) (*domain.Puzzle, error)
}
