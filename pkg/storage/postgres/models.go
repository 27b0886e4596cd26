package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sudoku/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgPuzzle is the database row shape for the puzzles table.
type PgPuzzle struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	GridKey string          `db:"grid_key"`
	Status  string          `db:"status"`
	Result  json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPuzzle) ToDomain() (*domain.Puzzle, error) {
	var result domain.PuzzleResult
	if len(p.Result) > 0 {
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal puzzle result: %w", err)
		}
	}

	return &domain.Puzzle{
		ID:        domain.PuzzleID(p.ID),
		UserID:    domain.UserID(p.UserID),
		GridKey:   p.GridKey,
		Status:    domain.PuzzleStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgPuzzle) FromDomain(puzzle domain.Puzzle) error {
	result, err := json.Marshal(puzzle.Result)
	if err != nil {
		return fmt.Errorf("could not marshal puzzle result: %w", err)
	}

	*p = PgPuzzle{
		ID:       uuid.UUID(puzzle.ID),
		UserID:   uuid.UUID(puzzle.UserID),
		GridKey:  puzzle.GridKey,
		Status:   string(puzzle.Status),
		Result:   result,
		Attempts: puzzle.Attempts,
		LastError: sql.NullString{
			String: puzzle.LastError,
			Valid:  puzzle.LastError != "",
		},
		CreatedAt: puzzle.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  puzzle.UpdatedAt,
			Valid: !puzzle.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  puzzle.DeletedAt,
			Valid: !puzzle.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainPuzzlesToPg(puzzles []domain.Puzzle) ([]PgPuzzle, error) {
	out := make([]PgPuzzle, len(puzzles))
	for i := range out {
		if err := out[i].FromDomain(puzzles[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgPuzzlesToDomain(puzzles []PgPuzzle) ([]domain.Puzzle, error) {
	out := make([]domain.Puzzle, 0, len(puzzles))
	for _, p := range puzzles {
		d, err := p.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
