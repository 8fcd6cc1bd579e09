package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/websocket"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	stores, err := openStores(ctx, log, conf)
	if err != nil {
		return err
	}
	defer stores.close(log)

	switch conf.Frontend {
	case config.FrontendConsole:
		return runConsole(ctx, logger, conf, stores)
	case config.FrontendTUI:
		game, err := newGame(conf)
		if err != nil {
			return err
		}
		return tui.Run(ctx, logger, game, os.Stdin, os.Stdout, conf.Loop.PollInterval, stores.managerOptions()...)
	case config.FrontendWebsocket:
		opts := []websocket.Option{websocket.WithManagerOptions(stores.managerOptions()...)}
		if stores.results != nil {
			opts = append(opts, websocket.WithResults(stores.results))
		}

		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		server := websocket.New(logger, conf.Board.Rows, conf.Board.Cols, conf.Loop.PollInterval, opts...)
		if err = server.Start(ctx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownFrontend, conf.Frontend)
}

// runConsole plays on stdin and stdout. A signal ends the app even while a prompt is waiting.
func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, stores *persistence) error {
	game, err := newGame(conf)
	if err != nil {
		return err
	}

	frontend := console.New(logger, os.Stdin, os.Stdout)
	manager := usecase.NewGameManager(logger, game, frontend, stores.managerOptions()...)

	playErr := make(chan error, 1)
	go func() {
		playErr <- manager.Play(ctx, frontend)
	}()

	select {
	case err = <-playErr:
		return err
	case <-ctx.Done():
		return nil
	}
}

func newGame(conf *config.Config) (*tictactoe.Game, error) {
	board, err := entity.NewBoard(conf.Board.Rows, conf.Board.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return tictactoe.NewGame(board), nil
}

// persistence holds the optional stores configured for this run.
type persistence struct {
	rounds  repository.RoundRepository
	results repository.ResultRepository

	closers []func() error
}

func openStores(ctx context.Context, log *slog.Logger, conf *config.Config) (*persistence, error) {
	result := &persistence{}

	if conf.Redis.Enabled() {
		client, err := storage.NewRedisClient(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		result.rounds = repository.NewRoundRepository(client)
		result.closers = append(result.closers, client.Close)
		log.Info("Round snapshots enabled", "addr", conf.Redis.GetRedisAddr())
	}

	if conf.SQLiteStoragePath != "" {
		db, err := sqlite.New(conf.SQLiteStoragePath)
		if err != nil {
			result.close(log)
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		result.closers = append(result.closers, db.Close)

		if err = db.Init(ctx); err != nil {
			result.close(log)
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		result.results = repository.NewResultRepository(db.Connection)
		log.Info("Result history enabled", "path", conf.SQLiteStoragePath)
	}

	return result, nil
}

func (that *persistence) managerOptions() []usecase.Option {
	var opts []usecase.Option

	if that.rounds != nil {
		opts = append(opts, usecase.WithRoundRepository(that.rounds))
	}

	if that.results != nil {
		opts = append(opts, usecase.WithResultRepository(that.results))
	}

	return opts
}

func (that *persistence) close(log *slog.Logger) {
	for _, closeFn := range that.closers {
		if err := closeFn(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}
}
