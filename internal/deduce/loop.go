package deduce

import (
	"context"
	"sudoku/pkg/domain"
	"sudoku/pkg/logger"

	"go.uber.org/zap"
)

// Outcome is the terminal state of the deduction loop.
type Outcome string

const (
	// OutcomeSolved means the final board is full and valid.
	OutcomeSolved Outcome = "SOLVED"
	// OutcomeStalled means a pass found no placements before the board was full.
	OutcomeStalled Outcome = "STALLED"
)

// Pass records the placements applied during one pass of the loop, in
// discovery order.
type Pass struct {
	Placements []domain.Placement
}

// Result is the outcome of a full run of the deduction loop.
type Result struct {
	// Outcome is SOLVED or STALLED.
	Outcome Outcome
	// Passes holds every pass that applied at least one placement, followed
	// by the empty pass that ended the loop (absent when the board was
	// already full on entry).
	Passes []Pass
}

// Placements flattens the per-pass trace into a single discovery-ordered slice.
func (r Result) Placements() []domain.Placement {
	var out []domain.Placement
	for _, p := range r.Passes {
		out = append(out, p.Placements...)
	}

	return out
}

// PassFunc observes the board after a productive pass. It is called once per
// pass that applied at least one placement, after all of that pass's
// placements have been written to the grid.
type PassFunc func(pass int, placements []domain.Placement)

// Run drives the cross-intersection technique to its fixpoint, mutating g in
// place. Each pass recomputes the missing sets from scratch (a single
// placement can change the missing sets of its whole row and column, so
// incremental updates are not worth the subtlety), collects this pass's
// unique intersections, and applies them all before the next pass.
//
// Run always terminates: every pass either fills at least one of the at most
// 81 empty cells or ends the loop. It never fails; an unsolvable or even
// contradictory board simply stalls. Callers that care about validity must
// gate on Valid before running and inspect the outcome after.
func Run(ctx context.Context, g *domain.Grid) Result {
	return RunObserved(ctx, g, nil)
}

// RunObserved is Run with a per-pass callback, used to show intermediate
// boards during long solves. A nil onPass behaves like Run.
func RunObserved(ctx context.Context, g *domain.Grid, onPass PassFunc) Result {
	var res Result
	for pass := 1; !g.Full(); pass++ {
		placements := UniqueIntersections(ctx, g)
		res.Passes = append(res.Passes, Pass{Placements: placements})

		if len(placements) == 0 {
			logger.Debug(ctx, "no more unique intersections", zap.Int("pass", pass))
			res.Outcome = OutcomeStalled

			return res
		}

		for _, p := range placements {
			g.Apply(p)
		}
		logger.Debug(ctx, "pass applied",
			zap.Int("pass", pass),
			zap.Int("placements", len(placements)),
			zap.Int("emptyCells", g.EmptyCells()))

		if onPass != nil {
			onPass(pass, placements)
		}
	}

	// The board is full; it is solved only if no constraint is violated.
	if Solved(g) {
		res.Outcome = OutcomeSolved
	} else {
		res.Outcome = OutcomeStalled
	}

	return res
}
