package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseBoard reads the plain-text clue layout: one line per row, digits 1-9
// for clues, '.', '-', space or '0' for empty cells. Rows shorter than nine
// cells are padded with empties; missing trailing rows are empty. Anything
// else is an error.
func ParseBoard(r io.Reader) (*Board, error) {
	b := &Board{}
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := sc.Text()
		if row >= 9 {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("parse: more than 9 rows")
			}
			continue
		}
		col := 0
		for _, ch := range line {
			if col >= 9 {
				break
			}
			switch {
			case ch >= '1' && ch <= '9':
				b.Values[row][col] = uint8(ch - '0')
				b.Fixed[row][col] = true
				col++
			case ch == '.' || ch == '-' || ch == ' ' || ch == '0':
				col++
			default:
				return nil, fmt.Errorf("parse: bad character %q at row %d col %d", ch, row, col)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseBoardString is ParseBoard over an in-memory layout.
func ParseBoardString(s string) (*Board, error) {
	return ParseBoard(strings.NewReader(s))
}

const hLine = " ------- ------- ------- "

// String renders the board in the line-art layout of the CLI:
//
//	 ------- ------- -------
//	| 5 3   |   7   |       |
//	...
//
// Empty cells render as blanks.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(hLine + "\n")
	for r := 0; r < 9; r++ {
		sb.WriteString("| ")
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString("  ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
			if c%3 == 2 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")
		if r%3 == 2 {
			sb.WriteString(hLine + "\n")
		}
	}
	return sb.String()
}

// Text renders the board in the same format ParseBoard accepts: nine rows of
// digits with '.' for empty cells.
func (b *Board) Text() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
