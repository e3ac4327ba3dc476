// Package solver implements the constraint-propagation and backtracking
// search engine. Propagation eliminates candidates a solved peer rules out;
// when it stalls, the search guesses the cell with the fewest candidates and
// recurses on an independent copy of the grid per guess.
package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/grid"
	"svw.info/sudoku-solver/internal/ports"
)

// ErrUnsolvable is returned when the search exhausts every branch, meaning
// the clues admit no solution. Cancellation folds into the same error.
var ErrUnsolvable = errors.New("solver: no solution")

// ConstraintSolver satisfies ports.Solver.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

// Solve returns a completed board, or ErrUnsolvable. Givens from the input
// always survive into the result. Nodes in Stats counts guesses tried.
func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	g := grid.FromBoard(b)
	nodes := 0
	out, ok := search(ctx, g, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		return nil, st, ErrUnsolvable
	}
	solved := out.Board()
	solved.Fixed = b.Fixed
	return &solved, st, nil
}

// search is one node of the depth-first search. The grid argument is this
// call's private copy; branches clone it again before mutating, so siblings
// never share state.
func search(ctx context.Context, g grid.Grid, nodes *int) (grid.Grid, bool) {
	if ctx.Err() != nil {
		return grid.Grid{}, false
	}
	if _, err := propagateAll(&g); err != nil {
		return grid.Grid{}, false
	}
	if g.Complete() {
		return g, true
	}
	r, c := chooseBranchCell(&g)
	cell := g.Cell(r, c)
	for v := uint8(1); v <= 9; v++ {
		if !cell.Has(v) {
			continue
		}
		*nodes++
		next := g
		next.Assign(r, c, v)
		if out, ok := search(ctx, next, nodes); ok {
			return out, true
		}
	}
	return grid.Grid{}, false
}

// chooseBranchCell picks the unsolved cell with the fewest candidates,
// breaking ties by first occurrence in row-major order. Branching on the
// tightest cell keeps the fanout small. Callers only reach here on an
// incomplete grid, so an unsolved cell always exists.
func chooseBranchCell(g *grid.Grid) (int, int) {
	br, bc, best := 0, 0, 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := g.Cell(r, c)
			if cell.Solved() {
				continue
			}
			if n := cell.CandidateCount(); n < best {
				br, bc, best = r, c, n
			}
		}
	}
	return br, bc
}
