package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sudoku/internal/deduce"
	"sudoku/pkg/domain"
	"sudoku/pkg/serrors"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is the page size used when a list request does not set one.
const DefaultLimit = 20

// Placement is the JSON view of a single deduced cell.
type Placement struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Digit uint8 `json:"digit"`
}

// PuzzleResult is the JSON view of a finished deduction run. The grid is
// encoded as an 81-character row-major digit string.
type PuzzleResult struct {
	Solved     bool        `json:"solved"`
	Grid       string      `json:"grid"`
	Passes     int         `json:"passes"`
	Placements []Placement `json:"placements,omitempty"`
}

// Puzzle is the JSON view of a stored puzzle.
type Puzzle struct {
	ID        uuid.UUID     `json:"id"`
	GridKey   string        `json:"gridKey"`
	Status    string        `json:"status"`
	Result    *PuzzleResult `json:"result,omitempty"`
	Attempts  uint          `json:"attempts"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// PuzzleList is a page of puzzles with an optional pagination cursor.
type PuzzleList struct {
	Items      []Puzzle `json:"items"`
	NextCursor string   `json:"nextCursor,omitempty"`
}

// DomainResultToV1 converts a domain result into its JSON view.
func DomainResultToV1(in *domain.PuzzleResult) *PuzzleResult {
	placements := make([]Placement, 0, len(in.Placements))
	for _, p := range in.Placements {
		placements = append(placements, Placement{Row: p.Row, Col: p.Col, Digit: p.Digit})
	}

	return &PuzzleResult{
		Solved:     in.Solved,
		Grid:       in.Grid.Encode(),
		Passes:     in.Passes,
		Placements: placements,
	}
}

// DomainPuzzleToV1 converts a domain puzzle into its JSON view. The result is
// omitted while the puzzle is still pending.
func DomainPuzzleToV1(in *domain.Puzzle) *Puzzle {
	out := Puzzle{
		ID:        uuid.UUID(in.ID),
		GridKey:   in.GridKey,
		Status:    string(in.Status),
		Attempts:  in.Attempts,
		CreatedAt: in.CreatedAt,
	}
	// a pending puzzle has no meaningful result yet
	if in.Status != domain.PuzzleStatusPending {
		out.Result = DomainResultToV1(&in.Result)
	}
	if !in.UpdatedAt.IsZero() {
		updatedAt := in.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return &out
}

// gridRequest is the request payload shared by the endpoints that accept a board.
type gridRequest struct {
	// Grid is the 81-character row-major digit string, 0 for empty cells.
	Grid string `json:"grid"`
}

func decodeGridRequest(r *http.Request) (string, error) {
	var req gridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON payload")
	}
	if req.Grid == "" {
		return "", serrors.With(serrors.ErrBadRequest, "grid is required")
	}

	return req.Grid, nil
}

func puzzleIDFromPath(r *http.Request) (domain.PuzzleID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.PuzzleID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid puzzle id")
	}

	return domain.PuzzleID(id), nil
}

// createPuzzle schedules a background solve for the submitted board.
func (h *Handler) createPuzzle(w http.ResponseWriter, r *http.Request) {
	grid, err := decodeGridRequest(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	p, err := h.deps.Solver.Enqueue(r.Context(), GetUserIDFromContext(r.Context()), grid)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainPuzzleToV1(p))
}

// listPuzzles returns a paginated list of the caller's puzzles.
func (h *Handler) listPuzzles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			WriteError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	puzzles, nextCursor, err := h.deps.Solver.UserPuzzles(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.PuzzleStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	items := make([]Puzzle, 0, len(puzzles))
	for i := range puzzles {
		items = append(items, *DomainPuzzleToV1(&puzzles[i]))
	}

	writeJSON(w, http.StatusOK, PuzzleList{
		Items:      items,
		NextCursor: nextCursor,
	})
}

// getPuzzle returns details of a puzzle by ID.
func (h *Handler) getPuzzle(w http.ResponseWriter, r *http.Request) {
	id, err := puzzleIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	p, err := h.deps.Solver.Result(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainPuzzleToV1(p))
}

// deletePuzzle deletes a puzzle by ID.
func (h *Handler) deletePuzzle(w http.ResponseWriter, r *http.Request) {
	id, err := puzzleIDFromPath(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	if err := h.deps.Solver.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// solvePuzzle runs the deduction loop synchronously and returns the outcome
// without storing anything.
func (h *Handler) solvePuzzle(w http.ResponseWriter, r *http.Request) {
	grid, err := decodeGridRequest(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	res, err := h.deps.Solver.SolveNow(r.Context(), grid)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainResultToV1(res))
}

// validateResponse reports whether a board satisfies the Sudoku constraints
// and whether it is already completely solved.
type validateResponse struct {
	Valid  bool `json:"valid"`
	Solved bool `json:"solved"`
}

// validatePuzzle checks the submitted board without solving it.
func (h *Handler) validatePuzzle(w http.ResponseWriter, r *http.Request) {
	grid, err := decodeGridRequest(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	g, err := domain.ParseGrid(grid)
	if err != nil {
		WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid grid"))

		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:  deduce.Valid(g),
		Solved: deduce.Solved(g),
	})
}
