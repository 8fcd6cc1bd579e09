package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Rejects boards smaller than 2x2", func(t *testing.T) {
		// When: creating degenerate boards
		_, errOne := NewBoard(1, 1)
		_, errRows := NewBoard(1, 3)
		_, errCols := NewBoard(3, 0)

		// Then: every one is a setup error
		require.ErrorIs(t, errOne, apperror.ErrInvalidSetup)
		require.ErrorIs(t, errRows, apperror.ErrInvalidSetup)
		require.ErrorIs(t, errCols, apperror.ErrInvalidSetup)
	})

	t.Run("Reset yields N*N empty cells", func(t *testing.T) {
		for size := MinBoardSize; size <= 7; size++ {
			// Given: a board with a symbol on it
			board, err := NewBoard(size, size)
			require.NoError(t, err)
			require.NoError(t, board.Place(Coordinate{Col: 1, Row: 1}, SymbolX))

			// When: the board is reset
			board.Reset()

			// Then: all cells are empty
			count := 0
			for _, symbol := range board.Cells() {
				assert.Equal(t, EmptyCell, symbol)
				count++
			}
			assert.Equal(t, size*size, count)
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a symbol on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		// When: X is placed in the center
		err = board.Place(Coordinate{Col: 1, Row: 1}, SymbolX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, SymbolX, board.At(Coordinate{Col: 1, Row: 1}))
	})

	t.Run("Occupied cell fails and keeps the board unchanged", func(t *testing.T) {
		// Given: a board with X at (0,2)
		board, err := NewBoard(3, 3)
		require.NoError(t, err)
		require.NoError(t, board.Place(Coordinate{Col: 0, Row: 2}, SymbolX))
		before := board.Symbols()

		// When: O tries the same cell
		err = board.Place(Coordinate{Col: 0, Row: 2}, SymbolO)

		// Then: ErrCellOccupied is returned with the coordinate
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		var cellErr *CellError
		require.ErrorAs(t, err, &cellErr)
		assert.Equal(t, Coordinate{Col: 0, Row: 2}, cellErr.Coord)
		assert.Equal(t, before, board.Symbols())
	})

	t.Run("Out of range coordinates fail", func(t *testing.T) {
		// Given: a 3 rows by 4 columns board
		board, err := NewBoard(3, 4)
		require.NoError(t, err)

		// Then: anything outside [0,4)x[0,3) is rejected
		for _, c := range []Coordinate{{Col: -1, Row: 0}, {Col: 4, Row: 0}, {Col: 0, Row: 3}, {Col: 0, Row: -1}} {
			err = board.Place(c, SymbolX)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "coordinate %s", c)

			_, err = board.Get(c)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "coordinate %s", c)
		}

		// And: the last column is addressable
		require.NoError(t, board.Place(Coordinate{Col: 3, Row: 2}, SymbolO))
	})
}

func TestBoard_Cells(t *testing.T) {
	// Given: a 2x3 board with a couple of symbols
	board, err := NewBoard(2, 3)
	require.NoError(t, err)
	require.NoError(t, board.Place(Coordinate{Col: 2, Row: 0}, SymbolX))
	require.NoError(t, board.Place(Coordinate{Col: 0, Row: 1}, SymbolO))

	collect := func() []Coordinate {
		var coords []Coordinate
		for c := range board.Cells() {
			coords = append(coords, c)
		}
		return coords
	}

	// When: iterating twice
	first := collect()
	second := collect()

	// Then: the order is row by row and stable
	expected := []Coordinate{
		{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1},
	}
	assert.Equal(t, expected, first)
	assert.Equal(t, first, second)

	// And: early break stops the iteration
	seen := 0
	for range board.Cells() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board, err := NewBoard(3, 3)
	require.NoError(t, err)
	clone := board.Clone()

	// When: the original is mutated
	require.NoError(t, board.Place(Coordinate{Col: 0, Row: 0}, SymbolX))

	// Then: the clone is unaffected
	assert.Equal(t, EmptyCell, clone.At(Coordinate{Col: 0, Row: 0}))
	assert.False(t, board.Full())
}
