// Package grid holds the bit-packed cell and grid primitives the solver
// engine works on. A cell is a uint16: bit 0 is the solved flag, bits 1..9
// say which values are still possible. A grid is 81 cells plus a counter of
// how many of them are solved.
package grid

import "math/bits"

// Cell encodes the candidate set and solved state of one cell.
//
//	0b1111111110  fresh cell, values 1-9 open, unsolved
//	0b1000010000  values 9 and 4 still possible, unsolved
//	0b0000001001  solved with value 3
type Cell uint16

const (
	solvedFlag Cell = 1 << 0
	// AllCandidates has bits 1..9 set and the solved flag clear.
	AllCandidates Cell = 0x3FE
)

// CellOf returns a solved cell holding value v (1..9).
func CellOf(v uint8) Cell {
	return 1<<v | solvedFlag
}

// Solved reports whether the solved flag is set.
func (c Cell) Solved() bool { return c&solvedFlag != 0 }

// Has reports whether value v is still a candidate.
func (c Cell) Has(v uint8) bool { return c&(1<<v) != 0 }

// Candidates returns just the candidate bits.
func (c Cell) Candidates() Cell { return c & AllCandidates }

// CandidateCount returns the number of values still possible.
func (c Cell) CandidateCount() int {
	return bits.OnesCount16(uint16(c & AllCandidates))
}

// Value returns the solved value, or 0 if the cell is unsolved.
func (c Cell) Value() uint8 {
	if !c.Solved() {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(c & AllCandidates)))
}

// Single returns the lone remaining candidate when exactly one value is
// still possible.
func (c Cell) Single() (uint8, bool) {
	if c.CandidateCount() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(c & AllCandidates))), true
}

// Invalid reports the contradictory state: no candidate bits left.
func (c Cell) Invalid() bool { return c&AllCandidates == 0 }

// normalize sets the solved flag on a cell that has dropped to exactly one
// candidate. Cells with more (or fewer) candidates pass through unchanged.
func (c Cell) normalize() Cell {
	if c.CandidateCount() == 1 {
		return c | solvedFlag
	}
	return c
}
