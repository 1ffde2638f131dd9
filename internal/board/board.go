// Package board models the 7x7 scroggle grid and its hex-offset adjacency.
package board

import (
	"errors"
	"strings"
)

// Size is the fixed extent of the grid in both dimensions.
const Size = 7

var (
	// ErrBadColumnCount is returned when the letter list does not contain
	// exactly Size column groups.
	ErrBadColumnCount = errors.New("letter list must contain exactly 7 columns")
	// ErrBadRowCount is returned when a column group does not contain
	// exactly Size tiles.
	ErrBadRowCount = errors.New("each column must contain exactly 7 tiles")
)

// Tile is one cell's letter content, lowercased. A tile is a single
// letter except for "qu", which occupies one board position but
// contributes two letters to any word formed through it.
type Tile = string

// Board is the fixed 7x7 tile grid, indexed [row][col].
type Board [Size][Size]Tile

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row int
	Col int
}

// ParseLetterList parses the puzzle API's letter list: a whitespace
// separated sequence of 7 column groups, each a comma separated sequence
// of 7 tile tokens. Tokens are case-insensitive; "Q" and "QU" both denote
// the qu tile. Tiles are assigned column-major, all rows of column 0
// first.
func ParseLetterList(s string) (*Board, error) {
	chunks := strings.Fields(s)
	if len(chunks) != Size {
		return nil, ErrBadColumnCount
	}

	var b Board
	for c, chunk := range chunks {
		tokens := strings.Split(chunk, ",")
		if len(tokens) != Size {
			return nil, ErrBadRowCount
		}
		for r, tok := range tokens {
			t := strings.ToUpper(strings.TrimSpace(tok))
			if t == "Q" || t == "QU" {
				b[r][c] = "qu"
			} else {
				b[r][c] = strings.ToLower(t)
			}
		}
	}

	return &b, nil
}

// Neighbors returns the cells hex-adjacent to (r, c), clipped to the
// board. Every cell has its four orthogonal neighbors plus two diagonals
// whose vertical direction depends on column parity: odd columns reach
// up-left and up-right, even columns reach down-left and down-right. This
// models the brick-offset layout of the puzzle board.
func (b *Board) Neighbors(r, c int) []Cell {
	offsets := [6][2]int{
		{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	}
	if c%2 == 1 {
		offsets[4] = [2]int{-1, -1}
		offsets[5] = [2]int{-1, 1}
	} else {
		offsets[4] = [2]int{1, -1}
		offsets[5] = [2]int{1, 1}
	}

	cells := make([]Cell, 0, 6)
	for _, off := range offsets {
		nr, nc := r+off[0], c+off[1]
		if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
			continue
		}
		cells = append(cells, Cell{Row: nr, Col: nc})
	}
	return cells
}
