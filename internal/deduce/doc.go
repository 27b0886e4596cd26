// Package deduce implements the cross-intersection solving technique: for
// every empty cell, the digits missing from its row are intersected with the
// digits missing from its column, and the cell is filled when exactly one
// candidate remains. The loop repeats until a pass finds nothing or the board
// is complete.
//
// The technique ignores box constraints while deducing (boxes are only used
// for validity checking), so boards that need box-aware reasoning or search
// stall rather than solve. That is the intended behavior of the technique,
// not a defect.
package deduce
