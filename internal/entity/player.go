package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

const (
	MinPlayers    = 2
	MaxNameLength = 20
)

type Player struct {
	Name   string `json:"name"`
	Symbol Symbol `json:"symbol"`
}

// NewPlayers pairs names with symbols in seat order.
func NewPlayers(names []string) []Player {
	symbols := Symbols()

	players := make([]Player, 0, len(names))
	for i, name := range names {
		var symbol Symbol
		if i < len(symbols) {
			symbol = symbols[i]
		}
		players = append(players, Player{Name: strings.TrimSpace(name), Symbol: symbol})
	}

	return players
}

// ValidatePlayers checks a roster before the first turn is played.
func ValidatePlayers(players []Player) error {
	if len(players) < MinPlayers {
		return fmt.Errorf("%w: need at least %d players, got %d", apperror.ErrInvalidSetup, MinPlayers, len(players))
	}

	names := make(map[string]struct{}, len(players))
	symbols := make(map[Symbol]struct{}, len(players))

	for i, player := range players {
		seat := i + 1

		if player.Name == "" {
			return fmt.Errorf("%w: player %d has no name", apperror.ErrInvalidSetup, seat)
		}

		if utf8.RuneCountInString(player.Name) > MaxNameLength {
			return fmt.Errorf("%w: player %d name is longer than %d characters", apperror.ErrInvalidSetup, seat, MaxNameLength)
		}

		if _, ok := names[player.Name]; ok {
			return fmt.Errorf("%w: player %d has the same name %q as another player", apperror.ErrInvalidSetup, seat, player.Name)
		}

		if !player.Symbol.IsValid() {
			return fmt.Errorf("%w: player %d has no symbol", apperror.ErrInvalidSetup, seat)
		}

		if _, ok := symbols[player.Symbol]; ok {
			return fmt.Errorf("%w: player %d has the same symbol %s as another player", apperror.ErrInvalidSetup, seat, player.Symbol)
		}

		names[player.Name] = struct{}{}
		symbols[player.Symbol] = struct{}{}
	}

	return nil
}
