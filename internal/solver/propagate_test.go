package solver

import (
	"errors"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/grid"
)

// solvedBoard returns a valid completed Sudoku built from the shifted-row
// pattern (r*3 + r/3 + c) mod 9 + 1.
func solvedBoard() domain.Board {
	var b domain.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	return b
}

func checkInvariants(t *testing.T, g *grid.Grid) {
	t.Helper()
	solved := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := g.Cell(r, c)
			if cell.Invalid() {
				t.Fatalf("invalid cell persisted at (%d,%d)", r, c)
			}
			one := cell.CandidateCount() == 1
			if one != cell.Solved() {
				t.Fatalf("cell (%d,%d): solved=%v candidates=%d", r, c, cell.Solved(), cell.CandidateCount())
			}
			if cell.Solved() {
				solved++
			}
		}
	}
	if solved != g.SolvedCount() {
		t.Fatalf("solved counter %d, actual %d", g.SolvedCount(), solved)
	}
}

func TestEliminateFromPeersUnsolvedSourceIsNoop(t *testing.T) {
	g := grid.New()
	n, err := eliminateFromPeers(&g, 3, 3)
	if n != 0 || err != nil {
		t.Fatalf("unsolved source: changed=%d err=%v", n, err)
	}
}

func TestEliminateFromPeersClearsExactlyThePeers(t *testing.T) {
	g := grid.New()
	g.Assign(4, 4, 7)
	n, err := eliminateFromPeers(&g, 4, 4)
	if err != nil {
		t.Fatalf("propagation failed: %v", err)
	}
	if n != 20 {
		t.Fatalf("changed %d cells, want the 20 peers", n)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			peer := r == 4 || c == 4 || (r/3 == 1 && c/3 == 1)
			has := g.Cell(r, c).Has(7)
			if r == 4 && c == 4 {
				continue
			}
			if peer && has {
				t.Fatalf("peer (%d,%d) kept candidate 7", r, c)
			}
			if !peer && !has {
				t.Fatalf("non-peer (%d,%d) lost candidate 7", r, c)
			}
		}
	}
	checkInvariants(t, &g)
}

func TestPropagateMonotoneAndInvariantPreserving(t *testing.T) {
	b, err := domain.ParseBoardString(samplePuzzle)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g := grid.FromBoard(b)
	var before [9][9]grid.Cell
	for {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				before[r][c] = g.Cell(r, c)
			}
		}
		n, err := propagate(&g)
		if err != nil {
			t.Fatalf("propagate: %v", err)
		}
		checkInvariants(t, &g)
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				after := g.Cell(r, c).Candidates()
				if after&^before[r][c].Candidates() != 0 {
					t.Fatalf("cell (%d,%d) regrew candidates", r, c)
				}
			}
		}
		if n == 0 {
			break
		}
	}
}

func TestPropagateFixpointIsIdempotent(t *testing.T) {
	b, err := domain.ParseBoardString(samplePuzzle)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g := grid.FromBoard(b)
	if _, err := propagateAll(&g); err != nil {
		t.Fatalf("propagateAll: %v", err)
	}
	snapshot := g
	n, err := propagate(&g)
	if n != 0 || err != nil {
		t.Fatalf("pass after fixpoint: changed=%d err=%v", n, err)
	}
	if g != snapshot {
		t.Fatal("fixpoint pass mutated the grid")
	}
}

func TestPropagateDetectsDuplicateClues(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][4] = 5
	g := grid.FromBoard(&b)
	_, err := propagateAll(&g)
	if !errors.Is(err, grid.ErrContradiction) {
		t.Fatalf("expected contradiction, got %v", err)
	}
}

func TestPropagationAloneSolvesOneMissingCell(t *testing.T) {
	b := solvedBoard()
	b.Values[6][2] = 0
	g := grid.FromBoard(&b)
	if _, err := propagateAll(&g); err != nil {
		t.Fatalf("propagateAll: %v", err)
	}
	if !g.Complete() {
		t.Fatalf("grid not complete: %d solved", g.SolvedCount())
	}
	want := solvedBoard().Values[6][2]
	if got := g.Cell(6, 2).Value(); got != want {
		t.Fatalf("filled %d, want %d", got, want)
	}
}
