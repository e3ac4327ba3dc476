package grid

import (
	"errors"

	"svw.info/sudoku-solver/internal/domain"
)

// ErrContradiction means a cell was left with no possible value. It is the
// solver's pruning signal, not a user-facing failure.
var ErrContradiction = errors.New("grid: cell has no remaining candidates")

// Grid is the working state of a puzzle: 9×9 cells and a count of how many
// are solved. It is a value type; assignment copies the whole state, which
// is what the search relies on when it branches.
type Grid struct {
	cells  [9][9]Cell
	solved int
}

// New returns a grid with every value open in every cell.
func New() Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.cells[r][c] = AllCandidates
		}
	}
	return g
}

// FromBoard builds a grid from a board, assigning each non-zero value as a
// solved clue. It does not check the clues against each other; propagation
// surfaces conflicting clues as a contradiction.
func FromBoard(b *domain.Board) Grid {
	g := New()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v >= 1 && v <= 9 {
				g.Assign(r, c, v)
			}
		}
	}
	return g
}

// Board flattens the grid back to plain values; unsolved cells become 0.
func (g *Grid) Board() domain.Board {
	var b domain.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = g.cells[r][c].Value()
		}
	}
	return b
}

// Cell returns the cell at (r, c).
func (g *Grid) Cell(r, c int) Cell { return g.cells[r][c] }

// SolvedCount returns the number of solved cells.
func (g *Grid) SolvedCount() int { return g.solved }

// Complete reports whether all 81 cells are solved.
func (g *Grid) Complete() bool { return g.solved == 81 }

// Assign forces cell (r, c) to the single value v, discarding any other
// candidates. The solved counter moves only if the cell was not already
// solved. Assign and Eliminate are the only two writes to cell state, so
// the counter invariant lives entirely here.
func (g *Grid) Assign(r, c int, v uint8) {
	if !g.cells[r][c].Solved() {
		g.solved++
	}
	g.cells[r][c] = CellOf(v)
}

// Eliminate removes value v from the candidates of cell (r, c). It reports
// whether the cell actually changed, and ErrContradiction if the removal
// emptied the candidate set. A cell that drops to one candidate is marked
// solved and counted.
func (g *Grid) Eliminate(r, c int, v uint8) (bool, error) {
	cell := g.cells[r][c]
	if !cell.Has(v) {
		return false, nil
	}
	next := (cell &^ (1 << v)).normalize()
	g.cells[r][c] = next
	if next.Invalid() {
		return true, ErrContradiction
	}
	if next.Solved() && !cell.Solved() {
		g.solved++
	}
	return true, nil
}
