package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/grid"
)

// Singles implements a minimal Hinter that suggests naked singles, using
// the grid package's candidate masks.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := candidates(b, r, c).Single(); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// candidates masks out every value already placed in the cell's row, column
// and box. Placed zeros clear bit 0, which is never a candidate anyway.
func candidates(b *domain.Board, r, c int) grid.Cell {
	m := grid.AllCandidates
	for i := 0; i < 9; i++ {
		m &^= grid.Cell(1) << b.Values[r][i]
		m &^= grid.Cell(1) << b.Values[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			m &^= grid.Cell(1) << b.Values[br+dr][bc+dc]
		}
	}
	return m
}
