// Package domain contains the core domain entities and types used by the
// application: the Sudoku grid and its derived digit sets, deduced placements,
// and persisted puzzle records. These types are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
