package domain

import (
	"time"

	"github.com/google/uuid"
)

// PuzzleID uniquely identifies a submitted puzzle.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PuzzleID uuid.UUID

// PuzzleStatus represents the lifecycle state of a submitted puzzle.
type PuzzleStatus string

const (
	// PuzzleStatusPending indicates the puzzle has been enqueued but not processed yet.
	PuzzleStatusPending PuzzleStatus = "PENDING"
	// PuzzleStatusSolved indicates the deduction loop filled the whole board.
	PuzzleStatusSolved PuzzleStatus = "SOLVED"
	// PuzzleStatusStalled indicates the deduction loop reached a pass with no
	// placements before the board was full. This is a normal outcome of the
	// technique, not a failure.
	PuzzleStatusStalled PuzzleStatus = "STALLED"
	// PuzzleStatusFailed indicates the puzzle could not be processed at all,
	// e.g. the submitted board already violated Sudoku constraints.
	PuzzleStatusFailed PuzzleStatus = "FAILED"
)

// Terminal reports whether the status is an end state for a puzzle.
func (s PuzzleStatus) Terminal() bool {
	return s == PuzzleStatusSolved || s == PuzzleStatusStalled || s == PuzzleStatusFailed
}

// PuzzleResult holds the outcome of running the deduction loop on a board.
type PuzzleResult struct {
	// Solved reports whether the final board is complete and valid.
	Solved bool `json:"solved"`
	// Grid is the board after the loop terminated.
	Grid Grid `json:"grid"`
	// Passes is the number of passes the loop ran, counting the final
	// empty pass that ended it.
	Passes int `json:"passes"`
	// Placements lists every deduced placement in discovery order.
	Placements []Placement `json:"placements,omitempty"`
}

// Puzzle represents a single solve request and its current state.
type Puzzle struct {
	// ID is the unique identifier of the puzzle record.
	ID PuzzleID `json:"id"`
	// UserID is the identifier of the user who submitted the puzzle.
	UserID UserID `json:"userId"`

	// GridKey is the canonical 81-character encoding of the submitted board.
	// Puzzle records with the same key share one background solve job.
	GridKey string `json:"gridKey"`
	// Status is the current lifecycle state of the puzzle.
	Status PuzzleStatus `json:"status"`
	// Result contains the latest known outcome for the puzzle.
	Result PuzzleResult `json:"result"`

	// Attempts is the number of times the system has tried to process this puzzle.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered while processing.
	LastError string `json:"-"`

	// CreatedAt is the time the puzzle was submitted.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the puzzle was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the puzzle was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Grid decodes the puzzle's submitted board from its GridKey.
func (p *Puzzle) Grid() (*Grid, error) {
	return ParseGrid(p.GridKey)
}
