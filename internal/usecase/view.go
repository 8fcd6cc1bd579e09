package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// View is implemented by every front-end. The orchestrator is its only caller.
type View interface {
	PlayerSelectionRequested()
	Initialized()
	// BoardUpdated receives a copy of the board; last is nil when no move caused the update.
	BoardUpdated(board *entity.Board, last *entity.Coordinate)
	TurnBegan(player entity.Player)
	MoveRequested()
	GameWon(winner entity.Player, line []entity.Coordinate)
	GameDrawn()
	// IntentRejected reports a recoverable error the user should see.
	IntentRejected(err error)
	Shutdown()
}

// IntentSource is implemented by front-ends that run on the orchestrator's call stack.
// NextIntent returns the intent produced while handling the previous notifications.
type IntentSource interface {
	NextIntent(ctx context.Context) (Message, error)
}
