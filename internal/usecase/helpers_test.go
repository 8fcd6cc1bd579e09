package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

// recorderView writes every notification as a short line.
type recorderView struct {
	events []string
	boards []*entity.Board
}

func (that *recorderView) record(format string, args ...any) {
	that.events = append(that.events, fmt.Sprintf(format, args...))
}

func (that *recorderView) PlayerSelectionRequested() { that.record("players:select") }
func (that *recorderView) Initialized()              { that.record("game:initialized") }
func (that *recorderView) MoveRequested()            { that.record("move:requested") }
func (that *recorderView) GameDrawn()                { that.record("game:drawn") }
func (that *recorderView) Shutdown()                 { that.record("shutdown") }

func (that *recorderView) BoardUpdated(board *entity.Board, last *entity.Coordinate) {
	that.boards = append(that.boards, board)
	if last == nil {
		that.record("board:updated -")
		return
	}
	that.record("board:updated %s", last)
}

func (that *recorderView) TurnBegan(player entity.Player) {
	that.record("turn:began %s", player.Name)
}

func (that *recorderView) GameWon(winner entity.Player, line []entity.Coordinate) {
	that.record("game:won %s %v", winner.Name, line)
}

func (that *recorderView) IntentRejected(err error) {
	that.record("error")
}

// scriptedSource hands out a fixed list of intents.
type scriptedSource struct {
	messages []Message
}

func (that *scriptedSource) NextIntent(_ context.Context) (Message, error) {
	if len(that.messages) == 0 {
		return Message{}, io.EOF
	}

	msg := that.messages[0]
	that.messages = that.messages[1:]

	return msg, nil
}

func at(col, row int) entity.Coordinate {
	return entity.Coordinate{Col: col, Row: row}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T) *tictactoe.Game {
	t.Helper()

	board, err := entity.NewBoard(3, 3)
	require.NoError(t, err)

	return tictactoe.NewGame(board)
}

func winningScript() []Message {
	return []Message{
		Start(),
		NamesChosen("Alice", "Bob"),
		MoveChosen(at(0, 0)),
		MoveChosen(at(1, 1)),
		MoveChosen(at(1, 0)),
		MoveChosen(at(2, 2)),
		MoveChosen(at(2, 0)),
		Quit(),
	}
}

func winningEvents() []string {
	return []string{
		"players:select",
		"game:initialized", "board:updated -", "turn:began Alice", "move:requested",
		"board:updated (0,0)", "turn:began Bob", "move:requested",
		"board:updated (1,1)", "turn:began Alice", "move:requested",
		"board:updated (1,0)", "turn:began Bob", "move:requested",
		"board:updated (2,2)", "turn:began Alice", "move:requested",
		"board:updated (2,0)", "game:won Alice [(0,0) (1,0) (2,0)]",
		"shutdown",
	}
}
