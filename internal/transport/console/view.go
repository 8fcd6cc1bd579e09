package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

func (that *Console) PlayerSelectionRequested() {
	that.prompt = promptNames
	that.printf("Choose the players.\n")
}

func (that *Console) Initialized() {
	that.printf("\nNew round.\n")
}

func (that *Console) BoardUpdated(board *entity.Board, _ *entity.Coordinate) {
	that.printf("%s", Render(board))
}

func (that *Console) TurnBegan(player entity.Player) {
	that.current = player
}

func (that *Console) MoveRequested() {
	that.prompt = promptMove
}

func (that *Console) GameWon(winner entity.Player, _ []entity.Coordinate) {
	that.prompt = promptAgain
	that.printf("%s (%s) wins!\n", winner.Name, winner.Symbol)
}

func (that *Console) GameDrawn() {
	that.prompt = promptAgain
	that.printf("Draw.\n")
}

func (that *Console) IntentRejected(err error) {
	that.printf("Error: %v\n", err)
}

func (that *Console) Shutdown() {
	that.prompt = promptNone
	that.printf("Bye.\n")
}

// Render draws the board with 1-based column and row labels.
func Render(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString("\n   ")
	for col := range board.Cols() {
		sb.WriteString(" " + strconv.Itoa(col+1) + "  ")
	}
	sb.WriteString("\n")

	for row := range board.Rows() {
		sb.WriteString(" " + strconv.Itoa(row+1) + " ")
		for col := range board.Cols() {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + board.At(entity.Coordinate{Col: col, Row: row}).String() + " ")
		}
		sb.WriteString("\n")

		if row < board.Rows()-1 {
			sb.WriteString("   " + strings.Repeat("---+", board.Cols()-1) + "---\n")
		}
	}

	sb.WriteString("\n")

	return sb.String()
}
