package main

import (
	"context"
	"fmt"
	"sudoku/internal/config"
	"sudoku/internal/deduce"
	"sudoku/internal/ingest"
	"sudoku/internal/render"
	"sudoku/pkg/domain"
	"sudoku/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// solveCommand constructs the 'solve' subcommand that reads a board from a
// CSV file, runs the deduction loop locally and prints the result.
func solveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solves a puzzle from a CSV file locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			g, err := ingest.ReadGridFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read puzzle: %w", err)
			}

			if !deduce.Valid(g) {
				return fmt.Errorf("board violates sudoku constraints")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Grid(g))

			// re-render the board after every productive pass so progress is
			// visible while the loop runs
			res := deduce.RunObserved(ctx, g, func(int, []domain.Placement) {
				fmt.Fprintln(out, render.Grid(g))
			})

			switch res.Outcome {
			case deduce.OutcomeSolved:
				logger.Info(ctx, "puzzle solved",
					zap.Int("passes", len(res.Passes)),
					zap.Int("placements", len(res.Placements())))
			case deduce.OutcomeStalled:
				logger.Info(ctx, "no further deductions possible",
					zap.Int("passes", len(res.Passes)),
					zap.Int("placements", len(res.Placements())),
					zap.Int("emptyCells", g.EmptyCells()))
			}

			return nil
		},
	}

	return cmd
}
