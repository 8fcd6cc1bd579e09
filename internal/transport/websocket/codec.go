package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

// decodeIntent maps a client message to an orchestrator intent.
func decodeIntent(msg Message) (usecase.Message, error) {
	switch msg.Action {
	case ActionStart:
		return usecase.Start(), nil
	case ActionNames:
		var payload NamesPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return usecase.Message{}, fmt.Errorf("%w: bad %s payload: %w", apperror.ErrProtocol, msg.Action, err)
		}
		return usecase.NamesChosen(payload.Names...), nil
	case ActionMove:
		var payload MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return usecase.Message{}, fmt.Errorf("%w: bad %s payload: %w", apperror.ErrProtocol, msg.Action, err)
		}
		return usecase.MoveChosen(entity.Coordinate{Col: payload.Col, Row: payload.Row}), nil
	case ActionAgain:
		return usecase.PlayAgain(), nil
	case ActionRestart:
		return usecase.Restart(), nil
	case ActionQuit:
		return usecase.Quit(), nil
	}

	return usecase.Message{}, fmt.Errorf("%w: unknown action %q", apperror.ErrProtocol, msg.Action)
}

// encodeNotification maps a notification to a server message.
func encodeNotification(n usecase.Notification) (Message, error) {
	var payload any

	switch n.Kind {
	case usecase.NotifyPlayerSelection:
		payload = SelectionPayload{MinPlayers: entity.MinPlayers, MaxNameLength: entity.MaxNameLength}
	case usecase.NotifyBoardUpdated:
		payload = BoardPayload{
			Rows:  n.Board.Rows(),
			Cols:  n.Board.Cols(),
			Cells: n.Board.Symbols(),
			Last:  n.Last,
		}
	case usecase.NotifyTurnBegan:
		payload = PlayerPayload{Player: *n.Player}
	case usecase.NotifyGameWon:
		payload = WonPayload{Winner: *n.Player, Line: n.Line}
	case usecase.NotifyIntentRejected:
		payload = ErrorPayload{Message: n.Err.Error()}
	}

	msg := Message{Action: string(n.Kind)}
	if payload == nil {
		return msg, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal %s payload: %w", n.Kind, err)
	}

	msg.Payload = raw

	return msg, nil
}
