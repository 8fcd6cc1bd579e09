package websocket

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/queue"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-core/pkg/handlers"
)

const defaultResultsLimit = 10

func (that *Server) handleResults(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleResults")

	limit := defaultResultsLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(writer, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	if that.results == nil {
		handlers.WriteJSON(writer, http.StatusOK, []entity.Result{})
		return
	}

	results, err := that.results.ListRecent(req.Context(), limit)
	if err != nil {
		log.Error("failed to list results", "error", err)
		http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	handlers.WriteJSON(writer, http.StatusOK, results)
}

// handleWebSocket - upgrades the connection and plays one game session on it.
func (that *Server) handleWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleWebSocket")

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.serveConn(req.Context(), conn); err != nil {
		log.Error("session ended with error", "error", err)
		return
	}

	log.Info("WebSocket session finished", "remote", req.RemoteAddr)
}

// serveConn runs the orchestration loop for one client. Intents are read on one
// goroutine, notifications written on another; the loop owns the game.
func (that *Server) serveConn(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "serveConn")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game, err := that.newGame()
	if err != nil {
		_ = conn.Close(websocket.StatusInternalError, "failed to create game")
		return err
	}

	outbox := queue.New[usecase.Notification]()
	manager := usecase.NewGameManager(that.logger, game, usecase.NewPostingView(outbox.Enqueue), that.managerOptions...)
	loop := usecase.NewGameLoop(that.logger, manager, that.pollInterval)

	go func() {
		if readErr := that.readIntents(ctx, conn, loop, outbox); readErr != nil {
			log.Debug("stopped reading intents", "error", readErr)
		}
		cancel()
	}()

	writing, stopWriting := context.WithCancel(ctx)
	defer stopWriting()

	writeErr := make(chan error, 1)
	go func() {
		writeErr <- that.writeNotifications(ctx, writing, conn, outbox)
	}()

	runErr := loop.Run(ctx)
	if runErr != nil {
		outbox.Enqueue(usecase.Notification{Kind: usecase.NotifyIntentRejected, Err: runErr})
	}

	stopWriting()
	if err = <-writeErr; err != nil {
		log.Debug("failed to write notifications", "error", err)
	}

	if runErr != nil {
		_ = conn.Close(websocket.StatusPolicyViolation, "protocol error")
		return fmt.Errorf("game loop failed: %w", runErr)
	}

	_ = conn.Close(websocket.StatusNormalClosure, "")

	return nil
}

// readIntents submits client intents to the loop. Malformed messages are
// answered with an error and do not reach the loop.
func (that *Server) readIntents(
	ctx context.Context,
	conn *websocket.Conn,
	loop *usecase.GameLoop,
	outbox *queue.Queue[usecase.Notification],
) error {
	log := that.logger.With("method", "readIntents")

	for {
		var msg Message
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		intent, err := decodeIntent(msg)
		if err != nil {
			log.Info("rejected client message", "action", msg.Action, "error", err)
			outbox.Enqueue(usecase.Notification{Kind: usecase.NotifyIntentRejected, Err: err})
			continue
		}

		loop.Submit(intent)
	}
}

// writeNotifications sends notifications until waiting is done, then flushes what is left.
func (that *Server) writeNotifications(
	ctx context.Context,
	waiting context.Context,
	conn *websocket.Conn,
	outbox *queue.Queue[usecase.Notification],
) error {
	for {
		n, err := outbox.Dequeue(waiting)
		if err != nil {
			break
		}

		if err = that.send(ctx, conn, n); err != nil {
			return err
		}
	}

	for {
		n, ok := outbox.TryDequeue()
		if !ok {
			return nil
		}

		if err := that.send(ctx, conn, n); err != nil {
			return err
		}
	}
}

func (that *Server) send(ctx context.Context, conn *websocket.Conn, n usecase.Notification) error {
	msg, err := encodeNotification(n)
	if err != nil {
		return err
	}

	if err = wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("failed to write %s: %w", msg.Action, err)
	}

	return nil
}
