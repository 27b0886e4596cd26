package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sudoku/pkg/domain"
	"sudoku/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	puzzlesTable = "puzzles"
)

func (p *PgSQL) StorePuzzles(ctx context.Context, puzzles ...domain.Puzzle) ([]domain.Puzzle, error) {
	if len(puzzles) == 0 {
		return nil, nil
	}

	pgPuzzles, err := domainPuzzlesToPg(puzzles)
	if err != nil {
		return nil, err
	}

	var result []PgPuzzle
	if err := p.Builder.Insert(puzzlesTable).
		Rows(pgPuzzles).
		Returning(&PgPuzzle{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store puzzles into pg: %w", err)
	}

	return pgPuzzlesToDomain(result)
}

// updateRecord builds the goqu record shared by the update queries. Attempts
// is incremented and updated_at set on every update.
func updateRecord(updates storage.PuzzleUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}

	if updates.Status == domain.PuzzleStatusFailed && updates.MaxAttempts > 0 {
		// only give up once the attempt budget is exhausted
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.PuzzleStatusFailed))
	} else {
		rec["status"] = string(updates.Status)
	}

	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingPuzzlesByGridKey updates all pending puzzles for the grid key
// with the provided fields.
func (p *PgSQL) UpdatePendingPuzzlesByGridKey(ctx context.Context,
	gridKey string,
	updates storage.PuzzleUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(puzzlesTable).
		Set(rec).Where(
		goqu.I("grid_key").Eq(gridKey),
		goqu.I("status").Eq(string(domain.PuzzleStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending puzzles by grid key in pg: %w", err)
	}

	return nil
}

// PendingPuzzleCountByGridKey counts pending, non-deleted puzzles for the
// grid key across all users.
func (p *PgSQL) PendingPuzzleCountByGridKey(ctx context.Context, gridKey string) (int64, error) {
	count, err := p.Builder.From(puzzlesTable).
		Where(
			goqu.I("grid_key").Eq(gridKey),
			goqu.I("status").Eq(string(domain.PuzzleStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending puzzles by grid key: %w", err)
	}

	return count, nil
}

// UpdatePuzzleByID updates a single puzzle, ignoring soft-deleted rows, and
// returns the updated row or nil when not found.
func (p *PgSQL) UpdatePuzzleByID(ctx context.Context,
	id domain.PuzzleID,
	updates storage.PuzzleUpdates) (*domain.Puzzle, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgPuzzle
	found, err := p.Builder.Update(puzzlesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPuzzle{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update puzzle by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeletePuzzle soft-deletes by setting deleted_at for the given puzzle and
// user, returning the deleted record.
func (p *PgSQL) DeletePuzzle(ctx context.Context,
	userID domain.UserID,
	id domain.PuzzleID) (*domain.Puzzle, error) {
	var row PgPuzzle
	found, err := p.Builder.Update(puzzlesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPuzzle{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete puzzle in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserPuzzles returns a page of puzzles for a user ordered by created_at
// DESC, id DESC, with an optional status filter and created-before cursor.
func (p *PgSQL) UserPuzzles(ctx context.Context,
	userID domain.UserID,
	status domain.PuzzleStatus,
	cursor time.Time,
	limit uint) (storage.UserPuzzles, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(puzzlesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgPuzzle
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPuzzles{}, fmt.Errorf("could not fetch user puzzles from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgPuzzlesToDomain(rows)
	if err != nil {
		return storage.UserPuzzles{}, err
	}

	return storage.UserPuzzles{
		Puzzles:    domainRows,
		NextCursor: nextCursor,
	}, nil
}

// PuzzleByID returns a puzzle by ID for the given user, excluding
// soft-deleted rows.
func (p *PgSQL) PuzzleByID(ctx context.Context,
	userID domain.UserID,
	id domain.PuzzleID) (*domain.Puzzle, error) {
	var row PgPuzzle
	found, err := p.Builder.From(puzzlesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch puzzle by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastFinishedPuzzleByGridKey returns the most recent puzzle for the grid key
// whose deduction run finished, in either outcome, across all users.
func (p *PgSQL) LastFinishedPuzzleByGridKey(ctx context.Context, gridKey string) (*domain.Puzzle, error) {
	var row PgPuzzle
	found, err := p.Builder.From(puzzlesTable).
		Where(
			goqu.I("grid_key").Eq(gridKey),
			goqu.I("status").In(
				string(domain.PuzzleStatusSolved),
				string(domain.PuzzleStatusStalled),
			),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last finished puzzle by grid key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
