// Package ingest reads Sudoku boards from tabular text sources and enforces
// the shape and value-range invariants the solver relies on. A board that
// passes ingestion is well-formed (9x9, every cell 0-9); whether it satisfies
// Sudoku constraints is a separate check owned by the solver.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sudoku/pkg/domain"
)

// ReadGrid parses a 9x9 board from CSV. Each record must have exactly 9
// fields; an empty field or "0" marks an empty cell, and any other field must
// be a digit 1-9. More or fewer than 9 records is an error.
func ReadGrid(r io.Reader) (*domain.Grid, error) {
	reader := csv.NewReader(r)
	// record length is validated per row for precise error messages
	reader.FieldsPerRecord = -1

	var g domain.Grid
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read CSV record: %w", err)
		}

		if rows >= domain.GridSize {
			return nil, fmt.Errorf("board has more than %d rows", domain.GridSize)
		}
		if len(record) != domain.GridSize {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", rows, len(record), domain.GridSize)
		}

		for c, field := range record {
			v, err := parseCell(field)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", rows, c, err)
			}
			g[rows][c] = v
		}
		rows++
	}

	if rows != domain.GridSize {
		return nil, fmt.Errorf("board has %d rows, expected %d", rows, domain.GridSize)
	}

	return &g, nil
}

// ReadGridFile opens path and parses it with ReadGrid.
func ReadGridFile(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open board file: %w", err)
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return g, nil
}

// parseCell converts one CSV field to a cell value. Empty fields and "0" mean
// an empty cell.
func parseCell(field string) (uint8, error) {
	field = strings.TrimSpace(field)
	if field == "" || field == "0" {
		return 0, nil
	}

	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q, expected a number 0-9", field)
	}
	if v < 0 || v > 9 {
		return 0, fmt.Errorf("value %d out of range, expected 0-9", v)
	}

	return uint8(v), nil
}
