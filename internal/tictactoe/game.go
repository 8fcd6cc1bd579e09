package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// Outcome is the result of the latest evaluation.
type Outcome struct {
	Status string
	Winner *entity.Player
	Line   []entity.Coordinate
}

func (that Outcome) IsFinished() bool {
	return that.Status == entity.StatusWon || that.Status == entity.StatusDraw
}

// Game owns the board, the players and whose turn it is.
type Game struct {
	board   *entity.Board
	lines   [][]entity.Coordinate
	players []entity.Player
	current int
	moves   int
	outcome Outcome
}

func NewGame(board *entity.Board) *Game {
	return &Game{
		board:   board,
		lines:   Lines(board.Rows(), board.Cols()),
		outcome: Outcome{Status: entity.StatusUninitialized},
	}
}

// Initialize clears the board and the outcome. Players are kept, the turn goes back to the first seat.
func (that *Game) Initialize() {
	that.board.Reset()
	that.current = 0
	that.moves = 0
	that.outcome = Outcome{Status: entity.StatusOngoing}
}

func (that *Game) SetPlayers(players []entity.Player) {
	that.players = append([]entity.Player(nil), players...)
	that.current = 0
}

func (that *Game) Players() []entity.Player {
	return append([]entity.Player(nil), that.players...)
}

func (that *Game) CurrentPlayer() (entity.Player, bool) {
	if len(that.players) == 0 {
		return entity.Player{}, false
	}
	return that.players[that.current], true
}

// Board returns a copy of the board.
func (that *Game) Board() *entity.Board {
	return that.board.Clone()
}

func (that *Game) Outcome() Outcome {
	outcome := that.outcome
	outcome.Line = append([]entity.Coordinate(nil), that.outcome.Line...)
	return outcome
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsFinished()
}

// RegisterTurn places the current player's symbol at c and evaluates the board.
func (that *Game) RegisterTurn(c entity.Coordinate) error {
	switch {
	case that.outcome.IsFinished():
		return fmt.Errorf("%w: no more turns after %s", apperror.ErrGameFinished, that.outcome.Status)
	case that.outcome.Status == entity.StatusUninitialized:
		return apperror.ErrGameIsNotStarted
	case len(that.players) == 0:
		return fmt.Errorf("%w: no players assigned", apperror.ErrInvalidSetup)
	}

	player := that.players[that.current]

	if err := that.board.Place(c, player.Symbol); err != nil {
		return err
	}
	that.moves++

	that.updateGameStatus(player)

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus(player entity.Player) {
	if line, ok := that.findWinningLine(); ok {
		that.outcome = Outcome{Status: entity.StatusWon, Winner: &player, Line: line}
		return
	}

	if that.board.Full() {
		that.outcome = Outcome{Status: entity.StatusDraw}
		return
	}

	that.current = (that.current + 1) % len(that.players)
}

func (that *Game) findWinningLine() ([]entity.Coordinate, bool) {
	for _, line := range that.lines {
		first := that.board.At(line[0])
		if first == entity.EmptyCell {
			continue
		}

		won := true
		for _, c := range line[1:] {
			if that.board.At(c) != first {
				won = false
				break
			}
		}

		if won {
			return append([]entity.Coordinate(nil), line...), true
		}
	}

	return nil, false
}

// Lines enumerates the candidate lines in evaluation order:
// row 0, column 0, row 1, column 1, ..., then both diagonals when the board is square.
func Lines(rows, cols int) [][]entity.Coordinate {
	lines := make([][]entity.Coordinate, 0, rows+cols+2)

	for i := range max(rows, cols) {
		if i < rows {
			row := make([]entity.Coordinate, 0, cols)
			for x := range cols {
				row = append(row, entity.Coordinate{Col: x, Row: i})
			}
			lines = append(lines, row)
		}

		if i < cols {
			col := make([]entity.Coordinate, 0, rows)
			for y := range rows {
				col = append(col, entity.Coordinate{Col: i, Row: y})
			}
			lines = append(lines, col)
		}
	}

	if rows != cols {
		return lines
	}

	diagonal := make([]entity.Coordinate, 0, rows)
	antiDiagonal := make([]entity.Coordinate, 0, rows)
	for i := range rows {
		diagonal = append(diagonal, entity.Coordinate{Col: i, Row: i})
		antiDiagonal = append(antiDiagonal, entity.Coordinate{Col: i, Row: rows - 1 - i})
	}

	return append(lines, diagonal, antiDiagonal)
}
