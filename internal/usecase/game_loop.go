package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-core/internal/queue"
)

const DefaultPollInterval = 100 * time.Millisecond

// GameLoop runs a GameManager on its own goroutine and feeds it from a queue.
// Front-ends call Submit from their own context; the loop never touches their state.
type GameLoop struct {
	logger  *slog.Logger
	manager *GameManager
	queue   *queue.Queue[Message]

	pollInterval time.Duration
}

func NewGameLoop(logger *slog.Logger, manager *GameManager, pollInterval time.Duration) *GameLoop {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &GameLoop{
		logger:       logger.With("component", "game_loop"),
		manager:      manager,
		queue:        queue.New[Message](),
		pollInterval: pollInterval,
	}
}

// Submit enqueues an intent. It never waits for the loop.
func (that *GameLoop) Submit(msg Message) {
	that.queue.Enqueue(msg)
}

func (that *GameLoop) Pending() int {
	return that.queue.Size()
}

// Run processes intents in order until Quit is handled, ctx is done or an intent
// breaks the protocol. Each message is acknowledged after it has been handled.
func (that *GameLoop) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	log.Info("game loop started")

	for !that.manager.IsStopped() {
		if ctx.Err() != nil {
			log.Info("game loop canceled")
			return nil
		}

		msg, ok := that.queue.TryDequeue()
		if !ok {
			that.idle(ctx)
			continue
		}

		err := that.manager.Handle(ctx, msg)
		msg.Ack()

		if err != nil {
			log.Error("game loop aborted", "error", err)
			return err
		}
	}

	log.Info("game loop terminating")

	return nil
}

func (that *GameLoop) idle(ctx context.Context) {
	timer := time.NewTimer(that.pollInterval)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
