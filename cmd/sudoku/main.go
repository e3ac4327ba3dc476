// Command sudoku reads a clue grid from stdin (or a file), solves it, and
// prints the solution. Exit status is 1 when the input cannot be read or
// the puzzle has no solution.
//
// Input format: one line per row, digits 1-9 for clues, '.', '-' or space
// for empty cells.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func main() {
	file := flag.String("f", "", "read clues from file instead of stdin")
	quiet := flag.Bool("q", false, "print only the solution")
	timeout := flag.Duration("timeout", 30*time.Second, "give up after this long")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	board, err := domain.ParseBoard(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read:", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Print(board)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	out, st, err := solver.NewConstraintSolver().Solve(ctx, board)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "failed to solve: gave up after", *timeout)
		} else {
			fmt.Fprintln(os.Stderr, "failed to solve: no solution")
		}
		os.Exit(1)
	}
	fmt.Print(out)
	if !*quiet {
		fmt.Printf("solved in %v, %d guesses\n", st.Duration.Round(time.Microsecond), st.Nodes)
	}
}
