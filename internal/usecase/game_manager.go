package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

type State string

const (
	StateInit       State = "init"
	StateAwaitNames State = "await_names"
	StateInitialize State = "initialize"
	StateAwaitMove  State = "await_move"
	StateGameOver   State = "game_over"
	StateStopped    State = "stopped"
)

type roundRepo interface {
	CreateOrUpdate(ctx context.Context, round *entity.Round) error
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
}

type Option func(*GameManager)

// WithRoundRepository stores a snapshot of the round after every accepted turn.
func WithRoundRepository(repo roundRepo) Option {
	return func(that *GameManager) {
		that.roundRepo = repo
	}
}

// WithResultRepository records every finished round.
func WithResultRepository(repo resultRepo) Option {
	return func(that *GameManager) {
		that.resultRepo = repo
	}
}

// GameManager is the only caller of the Game mutators. It turns intents into
// game transitions and notifications, whichever driver delivers the intents.
type GameManager struct {
	logger *slog.Logger
	game   *tictactoe.Game
	view   View

	roundRepo  roundRepo
	resultRepo resultRepo

	state   State
	roundID string
}

func NewGameManager(logger *slog.Logger, game *tictactoe.Game, view View, opts ...Option) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		game:   game,
		view:   view,
		state:  StateInit,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *GameManager) State() State {
	return that.state
}

func (that *GameManager) IsStopped() bool {
	return that.state == StateStopped
}

// Play drives the manager from a front-end on the same call stack until Quit.
func (that *GameManager) Play(ctx context.Context, source IntentSource) error {
	for !that.IsStopped() {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := source.NextIntent(ctx)
		if err != nil {
			return fmt.Errorf("failed to read intent: %w", err)
		}

		err = that.Handle(ctx, msg)
		msg.Ack()

		if err != nil {
			return err
		}
	}

	return nil
}

// Handle processes one intent. Recoverable errors are reported to the view;
// an intent that does not fit the current state is returned as ErrProtocol.
func (that *GameManager) Handle(ctx context.Context, msg Message) error {
	log := that.logger.With("method", "Handle", "state", that.state)
	log.Debug("received intent", "message", msg.String())

	if msg.Command == CommandQuit && !that.IsStopped() {
		that.state = StateStopped
		that.view.Shutdown()
		return nil
	}

	switch {
	case that.state == StateInit && msg.Command == CommandStart:
		that.requestPlayers()
		return nil

	case that.state == StateAwaitNames && msg.Command == CommandNamesChosen:
		return that.handleNames(ctx, msg)

	case that.state == StateAwaitMove && msg.Command == CommandMoveChosen:
		return that.handleMove(ctx, msg)

	case that.state == StateGameOver && msg.Command == CommandMoveChosen:
		return that.rejectLateMove(msg)

	case that.state == StateGameOver && msg.Command == CommandPlayAgain:
		that.state = StateInitialize
		that.startRound(ctx)
		return nil

	case that.state == StateGameOver && msg.Command == CommandRestart:
		that.state = StateInit
		return nil
	}

	err := that.protocolError(msg)
	log.Error("intent does not match state", "error", err)

	return err
}

func (that *GameManager) requestPlayers() {
	that.state = StateAwaitNames
	that.view.PlayerSelectionRequested()
}

func (that *GameManager) handleNames(ctx context.Context, msg Message) error {
	names, ok := msg.Payload.([]string)
	if !ok {
		return that.protocolError(msg)
	}

	players := entity.NewPlayers(names)
	if err := entity.ValidatePlayers(players); err != nil {
		that.logger.Info("player setup rejected", "error", err)
		that.view.IntentRejected(err)
		that.view.PlayerSelectionRequested()
		return nil
	}

	that.game.SetPlayers(players)
	that.state = StateInitialize
	that.startRound(ctx)

	return nil
}

// startRound runs the INITIALIZE state and leaves the manager waiting for the first move.
func (that *GameManager) startRound(ctx context.Context) {
	that.game.Initialize()
	that.roundID = uuid.NewString()
	that.saveRound(ctx)

	that.view.Initialized()
	that.view.BoardUpdated(that.game.Board(), nil)
	that.beginTurn()
}

func (that *GameManager) beginTurn() {
	player, _ := that.game.CurrentPlayer()

	that.state = StateAwaitMove
	that.view.TurnBegan(player)
	that.view.MoveRequested()
}

func (that *GameManager) handleMove(ctx context.Context, msg Message) error {
	c, ok := msg.Payload.(entity.Coordinate)
	if !ok {
		return that.protocolError(msg)
	}

	if err := that.game.RegisterTurn(c); err != nil {
		if errors.Is(err, apperror.ErrOutOfBounds) || errors.Is(err, apperror.ErrCellOccupied) {
			that.view.IntentRejected(err)
			that.view.MoveRequested()
			return nil
		}

		return fmt.Errorf("failed to register turn: %w", err)
	}

	that.view.BoardUpdated(that.game.Board(), &c)

	outcome := that.game.Outcome()
	switch outcome.Status {
	case entity.StatusWon:
		that.state = StateGameOver
		that.finishRound(ctx, outcome)
		that.view.GameWon(*outcome.Winner, outcome.Line)
	case entity.StatusDraw:
		that.state = StateGameOver
		that.finishRound(ctx, outcome)
		that.view.GameDrawn()
	default:
		that.saveRound(ctx)
		that.beginTurn()
	}

	return nil
}

func (that *GameManager) rejectLateMove(msg Message) error {
	c, ok := msg.Payload.(entity.Coordinate)
	if !ok {
		return that.protocolError(msg)
	}

	if err := that.game.RegisterTurn(c); err != nil {
		that.view.IntentRejected(err)
		return nil
	}

	return fmt.Errorf("%w: turn accepted after game over", apperror.ErrProtocol)
}

func (that *GameManager) protocolError(msg Message) error {
	return fmt.Errorf("%w: %s in state %s", apperror.ErrProtocol, msg, that.state)
}

// Snapshot describes the current round.
func (that *GameManager) Snapshot() *entity.Round {
	board := that.game.Board()
	outcome := that.game.Outcome()

	round := &entity.Round{
		ID:        that.roundID,
		Rows:      board.Rows(),
		Cols:      board.Cols(),
		Board:     board.Symbols(),
		Players:   that.game.Players(),
		Status:    outcome.Status,
		Line:      outcome.Line,
		Moves:     that.game.Moves(),
		UpdatedAt: time.Now().UTC(),
	}

	if outcome.Winner != nil {
		round.Winner = outcome.Winner.Name
	}

	if player, ok := that.game.CurrentPlayer(); ok && !outcome.IsFinished() {
		round.Turn = player.Symbol
	}

	return round
}

func (that *GameManager) saveRound(ctx context.Context) {
	if that.roundRepo == nil {
		return
	}

	if err := that.roundRepo.CreateOrUpdate(ctx, that.Snapshot()); err != nil {
		that.logger.Error("failed to save round", "roundID", that.roundID, "error", err)
	}
}

func (that *GameManager) finishRound(ctx context.Context, outcome tictactoe.Outcome) {
	log := that.logger.With("method", "finishRound", "roundID", that.roundID)

	if that.resultRepo != nil {
		result := &entity.Result{
			RoundID:    that.roundID,
			Moves:      that.game.Moves(),
			FinishedAt: time.Now().UTC(),
		}

		for _, player := range that.game.Players() {
			switch player.Symbol {
			case entity.SymbolX:
				result.PlayerX = player.Name
			case entity.SymbolO:
				result.PlayerO = player.Name
			}
		}

		if outcome.Winner != nil {
			result.Winner = outcome.Winner.Name
		}

		if err := that.resultRepo.Save(ctx, result); err != nil {
			log.Error("failed to save result", "error", err)
		}
	}

	if that.roundRepo != nil {
		if err := that.roundRepo.DeleteByID(ctx, that.roundID); err != nil {
			log.Error("failed to delete round", "error", err)
		}
	}

	log.Info("round finished", "status", outcome.Status)
}
