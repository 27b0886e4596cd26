package solver

import (
	"context"
	"sudoku/pkg/domain"
)

//go:generate mockgen -package mocksolver -source=interface.go -destination=mock/mocksolver.go *
type Solver interface {
	Enqueue(ctx context.Context, userID domain.UserID, gridKey string) (*domain.Puzzle, error)
	SolveNow(ctx context.Context, gridKey string) (*domain.PuzzleResult, error)
	UserPuzzles(ctx context.Context,
		userID domain.UserID,
		status domain.PuzzleStatus,
		cursor string,
		limit uint) ([]domain.Puzzle, string, error)
	Result(ctx context.Context, userID domain.UserID, puzzleID domain.PuzzleID) (*domain.Puzzle, error)
	Delete(ctx context.Context, userID domain.UserID, puzzleID domain.PuzzleID) error
}
