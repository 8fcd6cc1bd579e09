package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-core/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type resultLister interface {
	ListRecent(ctx context.Context, limit int) ([]entity.Result, error)
}

type Option func(*Server)

// WithResults serves finished rounds on /results.
func WithResults(results resultLister) Option {
	return func(that *Server) {
		that.results = results
	}
}

// WithManagerOptions is applied to the GameManager of every connection.
func WithManagerOptions(opts ...usecase.Option) Option {
	return func(that *Server) {
		that.managerOptions = append(that.managerOptions, opts...)
	}
}

// Server runs one game per websocket connection.
type Server struct {
	logger *slog.Logger

	rows         int
	cols         int
	pollInterval time.Duration

	results        resultLister
	managerOptions []usecase.Option
}

func New(logger *slog.Logger, rows, cols int, pollInterval time.Duration, opts ...Option) *Server {
	server := &Server{
		logger:       logger.With("component", "websocket"),
		rows:         rows,
		cols:         cols,
		pollInterval: pollInterval,
	}

	for _, opt := range opts {
		opt(server)
	}

	return server
}

func (that *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ping", handlers.PingHandler).Methods(http.MethodGet)
	router.HandleFunc("/results", that.handleResults).Methods(http.MethodGet)
	router.HandleFunc("/ws", that.handleWebSocket)

	return router
}

// Start - starts WebSocket server. It returns once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) newGame() (*tictactoe.Game, error) {
	board, err := entity.NewBoard(that.rows, that.cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return tictactoe.NewGame(board), nil
}
