package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/grid"
	"svw.info/sudoku-solver/internal/validator"
)

// A classic, solvable Sudoku with a unique solution.
const samplePuzzle = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

const sampleSolution = `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`

func TestSolveSamplePuzzle(t *testing.T) {
	in, err := domain.ParseBoardString(samplePuzzle)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want, err := domain.ParseBoardString(sampleSolution)
	if err != nil {
		t.Fatalf("parse solution: %v", err)
	}
	s := NewConstraintSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if out.Values != want.Values {
		t.Fatalf("wrong solution:\n%v", out)
	}
	// givens survive
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := in.Values[r][c]; v != 0 && out.Values[r][c] != v {
				t.Fatalf("clue at (%d,%d) changed from %d to %d", r, c, v, out.Values[r][c])
			}
		}
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveEmptyGridIsDeterministic(t *testing.T) {
	s := NewConstraintSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first, _, err := s.Solve(ctx, &domain.Board{})
	if err != nil {
		t.Fatalf("Solve empty grid: %v", err)
	}
	ok, conf, err := validator.New().Validate(ctx, first)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if first.Values[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	second, _, err := s.Solve(ctx, &domain.Board{})
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if first.Values != second.Values {
		t.Fatal("repeated runs on the empty grid diverged")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	var b domain.Board
	b.Values[0][1] = 5
	b.Values[0][7] = 5 // same value twice in row 0
	s := NewConstraintSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, _, err := s.Solve(ctx, &b)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("expected ErrUnsolvable, got %v", err)
	}
}

func TestSolveNearCompleteWithoutGuessing(t *testing.T) {
	b := solvedBoard()
	b.Values[0][0] = 0
	s := NewConstraintSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if st.Nodes != 0 {
		t.Fatalf("expected pure propagation, got %d guesses", st.Nodes)
	}
	if out.Values != solvedBoard().Values {
		t.Fatalf("wrong completion:\n%v", out)
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewConstraintSolver().Solve(ctx, &domain.Board{})
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("canceled solve should fail, got %v", err)
	}
}

// narrowTo leaves cell (r, c) with only candidates 8 and 9.
func narrowTo(t *testing.T, g *grid.Grid, r, c int) {
	t.Helper()
	for v := uint8(1); v <= 7; v++ {
		if _, err := g.Eliminate(r, c, v); err != nil {
			t.Fatalf("Eliminate(%d,%d,%d): %v", r, c, v, err)
		}
	}
}

func TestChooseBranchCellPrefersTightestCell(t *testing.T) {
	g := grid.New()
	if r, c := chooseBranchCell(&g); r != 0 || c != 0 {
		t.Fatalf("all-equal grid should pick (0,0), got (%d,%d)", r, c)
	}
	narrowTo(t, &g, 2, 5)
	if r, c := chooseBranchCell(&g); r != 2 || c != 5 {
		t.Fatalf("chose (%d,%d), want the two-candidate cell (2,5)", r, c)
	}
}

func TestChooseBranchCellTieBreaksRowMajor(t *testing.T) {
	g := grid.New()
	narrowTo(t, &g, 5, 7)
	narrowTo(t, &g, 3, 4)
	if r, c := chooseBranchCell(&g); r != 3 || c != 4 {
		t.Fatalf("chose (%d,%d), want the first tied cell in row-major order (3,4)", r, c)
	}
}
