package entity

import "time"

const (
	StatusUninitialized = "uninitialized"
	StatusOngoing       = "ongoing"
	StatusWon           = "won"
	StatusDraw          = "draw"
)

// Round is the persisted snapshot of a game in play.
type Round struct {
	ID        string       `json:"id"`
	Rows      int          `json:"rows"`
	Cols      int          `json:"cols"`
	Board     []Symbol     `json:"board"`
	Players   []Player     `json:"players"`
	Turn      Symbol       `json:"turn"`
	Status    string       `json:"status"`
	Winner    string       `json:"winner,omitempty"`
	Line      []Coordinate `json:"line,omitempty"`
	Moves     int          `json:"moves"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// Result is the record kept for a finished round.
type Result struct {
	RoundID    string    `json:"round_id"`
	PlayerX    string    `json:"player_x"`
	PlayerO    string    `json:"player_o"`
	Winner     string    `json:"winner,omitempty"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Result) IsDraw() bool {
	return that.Winner == ""
}
