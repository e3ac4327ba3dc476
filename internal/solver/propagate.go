package solver

import "svw.info/sudoku-solver/internal/grid"

// eliminateFromPeers clears the solved value of cell (r, c) from every peer
// sharing its row, column or 3×3 region. Peers left with a single candidate
// become solved. Returns how many peers changed; an unsolved source is a
// no-op. A peer stripped of its last candidate aborts with
// grid.ErrContradiction — the branch is dead and the caller throws the
// working grid away, so no rollback happens here.
func eliminateFromPeers(g *grid.Grid, r, c int) (int, error) {
	src := g.Cell(r, c)
	if !src.Solved() {
		return 0, nil
	}
	v := src.Value()
	changed := 0
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if i == r && j == c {
				continue
			}
			if i != r && j != c && (i/3 != r/3 || j/3 != c/3) {
				continue
			}
			hit, err := g.Eliminate(i, j, v)
			if hit {
				changed++
			}
			if err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

// propagate runs one row-major elimination pass over every cell. One pass is
// not a fixpoint: a cell solved mid-pass may sit after peers already
// visited, so callers loop until a pass reports zero changes. Convergence
// follows from candidate sets only ever shrinking.
func propagate(g *grid.Grid) (int, error) {
	total := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			n, err := eliminateFromPeers(g, r, c)
			total += n
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// propagateAll repeats propagate until a pass makes no change (the fixpoint)
// or a contradiction surfaces.
func propagateAll(g *grid.Grid) (int, error) {
	total := 0
	for {
		n, err := propagate(g)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}
