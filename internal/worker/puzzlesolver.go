package worker

import (
	"context"
	"fmt"
	"sudoku/internal/deduce"
	"sudoku/internal/solver"
	"sudoku/pkg/domain"
	"sudoku/pkg/logger"
	"sudoku/pkg/metrics"
	"sudoku/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PuzzleSolverWorker is a River worker that runs the deduction loop for a
// board and fans the outcome out to every pending puzzle sharing the same
// grid key. Jobs are unique per board, so a single run serves all users who
// submitted the same puzzle.
//
// Boards are re-checked before solving: the enqueue path validates input, but
// a job may outlive the puzzles that requested it (all deleted meanwhile), in
// which case the run is skipped entirely.
//
// Error handling: an unsolvable input (decode failure or constraint
// violation) is a permanent condition, so affected puzzles are marked failed
// and the job is canceled rather than retried. Storage errors are returned to
// River for retry; the attempts guard in the storage layer flips puzzles to
// failed only once the retry budget is exhausted.
type PuzzleSolverWorker struct {
	river.WorkerDefaults[solver.JobArgs]

	// storage is the persistence layer used to look up and update puzzles.
	storage storage.Storage
	// options carries the retry budget used for the failure guard.
	options solver.Options
}

// NewPuzzleSolverWorker constructs a PuzzleSolverWorker backed by the given storage.
func NewPuzzleSolverWorker(store storage.Storage, options solver.Options) *PuzzleSolverWorker {
	return &PuzzleSolverWorker{
		storage: store,
		options: options,
	}
}

// Work executes a single solve job. It skips boards nobody is waiting for,
// cancels jobs for boards that cannot be solved, and otherwise runs the
// deduction loop and persists the outcome.
func (w *PuzzleSolverWorker) Work(ctx context.Context, job *river.Job[solver.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("gridKey", job.Args.GridKey))

	pending, err := w.storage.PendingPuzzleCountByGridKey(ctx, job.Args.GridKey)
	if err != nil {
		return fmt.Errorf("could not count pending puzzles: %w", err)
	}
	if pending == 0 {
		logger.Info(ctx, "no pending puzzles for board, skipping")

		return nil
	}

	g, err := domain.ParseGrid(job.Args.GridKey)
	if err != nil {
		return w.fail(ctx, job.Args.GridKey, fmt.Errorf("could not decode board: %w", err))
	}
	if !deduce.Valid(g) {
		return w.fail(ctx, job.Args.GridKey, fmt.Errorf("board violates sudoku constraints"))
	}

	start := time.Now()
	res := deduce.Run(ctx, g)
	status := domain.PuzzleStatusStalled
	if res.Outcome == deduce.OutcomeSolved {
		status = domain.PuzzleStatusSolved
	}
	metrics.SolveDuration.WithLabelValues(string(status)).Observe(time.Since(start).Seconds())
	metrics.SolvePasses.Observe(float64(len(res.Passes)))

	result := domain.PuzzleResult{
		Solved:     res.Outcome == deduce.OutcomeSolved,
		Grid:       *g,
		Passes:     len(res.Passes),
		Placements: res.Placements(),
	}
	if err := w.storage.UpdatePendingPuzzlesByGridKey(ctx, job.Args.GridKey, storage.PuzzleUpdates{
		Status: status,
		Result: &result,
	}); err != nil {
		return fmt.Errorf("could not update pending puzzles: %w", err)
	}

	logger.Info(ctx, "board processed",
		zap.String("status", string(status)),
		zap.Int("passes", result.Passes),
		zap.Int("placements", len(result.Placements)))

	return nil
}

// fail marks every pending puzzle for the board as failed and cancels the
// job. Unsolvable input never changes on retry.
func (w *PuzzleSolverWorker) fail(ctx context.Context, gridKey string, cause error) error {
	logger.Error(ctx, "cannot process board", zap.Error(cause))

	msg := cause.Error()
	if err := w.storage.UpdatePendingPuzzlesByGridKey(ctx, gridKey, storage.PuzzleUpdates{
		Status:    domain.PuzzleStatusFailed,
		LastError: &msg,
	}); err != nil {
		return fmt.Errorf("could not mark puzzles failed: %w", err)
	}

	return river.JobCancel(cause) //nolint: wrapcheck
}
