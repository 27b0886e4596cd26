// Package solver coordinates puzzle persistence, background job enqueueing
// and synchronous deduction runs.
package solver

import (
	"context"
	"fmt"
	"sudoku/internal/config"
	"sudoku/internal/deduce"
	"sudoku/pkg/domain"
	"sudoku/pkg/serrors"
	"sudoku/pkg/storage"
	"time"
)

// Options configure how solve jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a solve job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a finished result makes new
	// solve requests for the same board reuse that result instead of enqueueing
	// a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Solver.MaxAttempts,
		ResultCacheTTL: cfg.Solver.ResultCacheTTL,
	}
}

// solver is the concrete implementation of the Solver interface.
// It coordinates persistence with the storage layer and job enqueueing.
type solver struct {
	// options holds runtime configuration that affects enqueueing and caching.
	options Options
	// storage is the persistence layer used to store puzzles and manage jobs.
	storage storage.Storage
}

// parseBoard decodes and checks a submitted board. Unparsable input maps to a
// bad-request error, a well-formed board that already violates Sudoku
// constraints maps to an invalid-puzzle error.
func parseBoard(gridKey string) (*domain.Grid, error) {
	g, err := domain.ParseGrid(gridKey)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid grid")
	}
	if !deduce.Valid(g) {
		return nil, serrors.With(serrors.ErrInvalidPuzzle, "board violates sudoku constraints")
	}

	return g, nil
}

// Enqueue stores a new puzzle for the given board and user, and attempts
// to enqueue a background job to process it. If a recent finished result exists
// for the same board (within ResultCacheTTL), the new puzzle immediately takes
// over that result and status.
func (s solver) Enqueue(ctx context.Context, userID domain.UserID, gridKey string) (*domain.Puzzle, error) {
	var puzzle *domain.Puzzle
	g, err := parseBoard(gridKey)
	if err != nil {
		return nil, err
	}
	gridKey = g.Encode()

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StorePuzzles(ctx, domain.Puzzle{
			UserID:  userID,
			GridKey: gridKey,
			Status:  domain.PuzzleStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store puzzle: %w", err)
		}
		puzzle = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			GridKey:         gridKey,
			maxAttempts:     s.options.MaxAttempts,
			uniqueJobPeriod: s.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, it means that another job already exists for
		// this board. river unique jobs prevent having duplicate jobs for the
		// same board.
		if !jobAdded {
			// if the existing job already finished, we should get its result
			// from db and update the new puzzle
			lastResult, err := tx.LastFinishedPuzzleByGridKey(ctx, gridKey)
			if err != nil {
				return fmt.Errorf("could not get last finished puzzle: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdatePuzzleByID(ctx, puzzle.ID, storage.PuzzleUpdates{
					Status: lastResult.Status,
					Result: &lastResult.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update puzzle: %w", err)
				}
				puzzle = updated
			} // else: the job is in the queue and will be processed soon.
			// Job will automatically update all pending puzzles by grid key upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue puzzle: %w", err)
	}

	return puzzle, nil
}

// SolveNow runs the deduction loop synchronously on the given board and
// returns the outcome without persisting anything.
func (s solver) SolveNow(ctx context.Context, gridKey string) (*domain.PuzzleResult, error) {
	g, err := parseBoard(gridKey)
	if err != nil {
		return nil, err
	}

	res := deduce.Run(ctx, g)

	return &domain.PuzzleResult{
		Solved:     res.Outcome == deduce.OutcomeSolved,
		Grid:       *g,
		Passes:     len(res.Passes),
		Placements: res.Placements(),
	}, nil
}

// UserPuzzles returns a page of puzzles for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s solver) UserPuzzles(ctx context.Context,
	userID domain.UserID,
	status domain.PuzzleStatus,
	cursor string,
	limit uint) ([]domain.Puzzle, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserPuzzles(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user puzzles: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Puzzles, next, nil
}

// Result fetches a single puzzle by ID for the given user. It returns a
// not-found error when no matching puzzle exists.
func (s solver) Result(ctx context.Context, userID domain.UserID, puzzleID domain.PuzzleID) (*domain.Puzzle, error) {
	res, err := s.storage.PuzzleByID(ctx, userID, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("could not get puzzle result: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "puzzle not found")
	}

	return res, nil
}

// Delete removes a puzzle belonging to the given user. If the puzzle does not
// exist, a not-found error is returned. Jobs are not cancelled here because
// other pending puzzles may still depend on the same board job.
func (s solver) Delete(ctx context.Context, userID domain.UserID, puzzleID domain.PuzzleID) error {
	res, err := s.storage.DeletePuzzle(ctx, userID, puzzleID)
	if err != nil {
		return fmt.Errorf("could not delete puzzle: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "puzzle not found")
	}

	// we don't delete jobs from the queue here because there might be other
	// puzzles depending on the job. the job worker makes sure there are still
	// pending puzzles for the board before processing.

	return nil
}

// New creates a new Solver instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Solver {
	return &solver{
		options: options,
		storage: storage,
	}
}
