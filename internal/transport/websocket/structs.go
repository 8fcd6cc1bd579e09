package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// Client actions.
const (
	ActionStart   = "game:start"
	ActionNames   = "game:names"
	ActionMove    = "game:move"
	ActionAgain   = "game:again"
	ActionRestart = "game:restart"
	ActionQuit    = "game:quit"
)

// Message represents a WebSocket message with an action type and a payload.
// Server messages use the notification kind as action.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NamesPayload struct {
	Names []string `json:"names"`
}

type MovePayload struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

type SelectionPayload struct {
	MinPlayers    int `json:"min_players"`
	MaxNameLength int `json:"max_name_length"`
}

type BoardPayload struct {
	Rows  int                `json:"rows"`
	Cols  int                `json:"cols"`
	Cells []entity.Symbol    `json:"cells"`
	Last  *entity.Coordinate `json:"last,omitempty"`
}

type PlayerPayload struct {
	Player entity.Player `json:"player"`
}

type WonPayload struct {
	Winner entity.Player       `json:"winner"`
	Line   []entity.Coordinate `json:"line"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
