package entity

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

const MinBoardSize = 2

// CellError reports a placement that the board refused.
type CellError struct {
	Coord Coordinate
	Err   error
}

func (that *CellError) Error() string {
	return fmt.Sprintf("%s: cell %s", that.Err, that.Coord)
}

func (that *CellError) Unwrap() error {
	return that.Err
}

// Board is a rows x cols grid stored row by row.
type Board struct {
	rows  int
	cols  int
	cells []Symbol
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinBoardSize || cols < MinBoardSize {
		return nil, fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			apperror.ErrInvalidSetup, cols, rows, MinBoardSize, MinBoardSize)
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Symbol, rows*cols),
	}, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) IsSquare() bool {
	return that.rows == that.cols
}

func (that *Board) Size() int {
	return len(that.cells)
}

func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = EmptyCell
	}
}

func (that *Board) Place(c Coordinate, symbol Symbol) error {
	idx, err := that.index(c)
	if err != nil {
		return err
	}

	if that.cells[idx] != EmptyCell {
		return &CellError{Coord: c, Err: apperror.ErrCellOccupied}
	}

	that.cells[idx] = symbol

	return nil
}

func (that *Board) Get(c Coordinate) (Symbol, error) {
	idx, err := that.index(c)
	if err != nil {
		return EmptyCell, err
	}

	return that.cells[idx], nil
}

// At is Get for coordinates already known to be on the board.
func (that *Board) At(c Coordinate) Symbol {
	symbol, _ := that.Get(c)
	return symbol
}

// Cells yields every cell once, row by row and column by column within a row.
func (that *Board) Cells() iter.Seq2[Coordinate, Symbol] {
	return func(yield func(Coordinate, Symbol) bool) {
		for row := range that.rows {
			for col := range that.cols {
				if !yield(Coordinate{Col: col, Row: row}, that.cells[row*that.cols+col]) {
					return
				}
			}
		}
	}
}

func (that *Board) Full() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) Clone() *Board {
	cells := make([]Symbol, len(that.cells))
	copy(cells, that.cells)

	return &Board{rows: that.rows, cols: that.cols, cells: cells}
}

// Symbols returns a row-major copy of the cells.
func (that *Board) Symbols() []Symbol {
	cells := make([]Symbol, len(that.cells))
	copy(cells, that.cells)
	return cells
}

func (that *Board) index(c Coordinate) (int, error) {
	if c.Col < 0 || c.Col >= that.cols || c.Row < 0 || c.Row >= that.rows {
		return 0, &CellError{Coord: c, Err: apperror.ErrOutOfBounds}
	}
	return c.Row*that.cols + c.Col, nil
}
