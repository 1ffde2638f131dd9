package board_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steved1964/scroggle-clue-site/internal/board"
)

func letterList(cols ...string) string {
	return strings.Join(cols, " ")
}

func TestParseLetterList(t *testing.T) {
	t.Run("assigns tiles column-major", func(t *testing.T) {
		filler := "X,X,X,X,X,X,X"
		b, err := board.ParseLetterList(letterList(
			"A,B,C,D,E,F,G", filler, filler, filler, filler, filler, filler,
		))
		require.NoError(t, err)

		assert.Equal(t, "a", b[0][0])
		assert.Equal(t, "c", b[2][0])
		assert.Equal(t, "g", b[6][0])
		assert.Equal(t, "x", b[0][1])
		assert.Equal(t, "x", b[6][6])
	})

	t.Run("normalizes Q and QU to the qu tile", func(t *testing.T) {
		filler := "X,X,X,X,X,X,X"
		b, err := board.ParseLetterList(letterList(
			"Q,QU,q,qu,X,X,X", filler, filler, filler, filler, filler, filler,
		))
		require.NoError(t, err)

		for r := 0; r < 4; r++ {
			assert.Equal(t, "qu", b[r][0])
		}
	})

	t.Run("trims and lowercases tokens", func(t *testing.T) {
		filler := "X,X,X,X,X,X,X"
		b, err := board.ParseLetterList(letterList(
			" a ,B, c ,D,e,F,g", filler, filler, filler, filler, filler, filler,
		))
		require.NoError(t, err)

		assert.Equal(t, "a", b[0][0])
		assert.Equal(t, "b", b[1][0])
	})

	t.Run("rejects wrong column count", func(t *testing.T) {
		filler := "X,X,X,X,X,X,X"
		_, err := board.ParseLetterList(letterList(filler, filler, filler))
		assert.ErrorIs(t, err, board.ErrBadColumnCount)
	})

	t.Run("rejects wrong row count", func(t *testing.T) {
		filler := "X,X,X,X,X,X,X"
		_, err := board.ParseLetterList(letterList(
			"A,B,C", filler, filler, filler, filler, filler, filler,
		))
		assert.ErrorIs(t, err, board.ErrBadRowCount)
	})
}

func TestNeighbors(t *testing.T) {
	var b board.Board

	t.Run("interior cells have six neighbors", func(t *testing.T) {
		assert.Len(t, b.Neighbors(3, 3), 6)
		assert.Len(t, b.Neighbors(3, 2), 6)
	})

	t.Run("diagonal direction flips with column parity", func(t *testing.T) {
		// Even column: diagonals reach downward.
		even := b.Neighbors(3, 2)
		assert.Contains(t, even, board.Cell{Row: 4, Col: 1})
		assert.Contains(t, even, board.Cell{Row: 4, Col: 3})
		assert.NotContains(t, even, board.Cell{Row: 2, Col: 1})
		assert.NotContains(t, even, board.Cell{Row: 2, Col: 3})

		// Odd column: diagonals reach upward.
		odd := b.Neighbors(3, 3)
		assert.Contains(t, odd, board.Cell{Row: 2, Col: 2})
		assert.Contains(t, odd, board.Cell{Row: 2, Col: 4})
		assert.NotContains(t, odd, board.Cell{Row: 4, Col: 2})
		assert.NotContains(t, odd, board.Cell{Row: 4, Col: 4})
	})

	t.Run("edges clip out-of-bounds neighbors", func(t *testing.T) {
		corner := b.Neighbors(0, 0)
		assert.ElementsMatch(t, []board.Cell{
			{Row: 0, Col: 1},
			{Row: 1, Col: 0},
			{Row: 1, Col: 1},
		}, corner)

		// Bottom corner of an even column: both diagonals point below
		// the board and are clipped.
		bottom := b.Neighbors(6, 6)
		assert.ElementsMatch(t, []board.Cell{
			{Row: 6, Col: 5},
			{Row: 5, Col: 6},
		}, bottom)
	})
}
