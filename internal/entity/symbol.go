package entity

import "fmt"

type Symbol string

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"

	EmptyCell Symbol = ""
)

// Symbols returns the playable symbols in seat order.
func Symbols() []Symbol {
	return []Symbol{SymbolX, SymbolO}
}

func (that Symbol) IsValid() bool {
	return that == SymbolX || that == SymbolO
}

func (that Symbol) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

// Coordinate addresses a cell by column and row, both zero-based.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.Col, that.Row)
}
