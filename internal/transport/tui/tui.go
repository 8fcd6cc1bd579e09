package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

// Run plays game in a bubbletea program until the user quits or ctx is done.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	game *tictactoe.Game,
	in io.Reader,
	out io.Writer,
	pollInterval time.Duration,
	opts ...usecase.Option,
) error {
	log := logger.With("component", "tui")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program *tea.Program

	view := usecase.NewPostingView(func(n usecase.Notification) {
		program.Send(notificationMsg{n})
	})
	manager := usecase.NewGameManager(logger, game, view, opts...)
	loop := usecase.NewGameLoop(logger, manager, pollInterval)

	program = tea.NewProgram(NewModel(loop),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		if err != nil {
			program.Send(loopStoppedMsg{err: err})
		}
		loopErr <- err
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run tui: %w", err)
	}

	cancel()

	if err := <-loopErr; err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("tui closed")

	return nil
}
