package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type fakeResults struct {
	results []entity.Result
	limit   int
	err     error
}

func (that *fakeResults) ListRecent(_ context.Context, limit int) ([]entity.Result, error) {
	that.limit = limit
	return that.results, that.err
}

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(New(logger, 3, 3, 5*time.Millisecond, opts...).Router())
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server) (context.Context, *websocket.Conn) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	return ctx, conn
}

func send(t *testing.T, ctx context.Context, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	msg := Message{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		msg.Payload = raw
	}

	require.NoError(t, wsjson.Write(ctx, conn, msg))
}

func receive(t *testing.T, ctx context.Context, conn *websocket.Conn, n int) []Message {
	t.Helper()

	messages := make([]Message, 0, n)
	for range n {
		var msg Message
		require.NoError(t, wsjson.Read(ctx, conn, &msg))
		messages = append(messages, msg)
	}

	return messages
}

func actions(messages []Message) []string {
	result := make([]string, 0, len(messages))
	for _, msg := range messages {
		result = append(result, msg.Action)
	}
	return result
}

func TestServer_WebSocket(t *testing.T) {
	t.Run("Plays a game to a win and quits", func(t *testing.T) {
		// Given: a connected client
		ctx, conn := dial(t, newTestServer(t))

		// When: the client starts and names the players
		send(t, ctx, conn, ActionStart, nil)
		assert.Equal(t, []string{"players:select"}, actions(receive(t, ctx, conn, 1)))

		send(t, ctx, conn, ActionNames, NamesPayload{Names: []string{"Alice", "Bob"}})
		started := receive(t, ctx, conn, 4)

		// Then: the round is initialized and Alice is asked to move
		assert.Equal(t, []string{"game:initialized", "board:updated", "turn:began", "move:requested"}, actions(started))

		var board BoardPayload
		require.NoError(t, json.Unmarshal(started[1].Payload, &board))
		assert.Equal(t, 3, board.Rows)
		assert.Len(t, board.Cells, 9)
		assert.Nil(t, board.Last)

		var turn PlayerPayload
		require.NoError(t, json.Unmarshal(started[2].Payload, &turn))
		assert.Equal(t, entity.Player{Name: "Alice", Symbol: entity.SymbolX}, turn.Player)

		// When: moves fill row 0 for X
		moves := []MovePayload{{0, 0}, {1, 1}, {1, 0}, {2, 2}}
		for _, move := range moves {
			send(t, ctx, conn, ActionMove, move)
			assert.Equal(t, []string{"board:updated", "turn:began", "move:requested"}, actions(receive(t, ctx, conn, 3)))
		}

		send(t, ctx, conn, ActionMove, MovePayload{Col: 2, Row: 0})
		finished := receive(t, ctx, conn, 2)

		// Then: X wins on row 0
		require.Equal(t, []string{"board:updated", "game:won"}, actions(finished))

		var won WonPayload
		require.NoError(t, json.Unmarshal(finished[1].Payload, &won))
		assert.Equal(t, "Alice", won.Winner.Name)
		assert.Equal(t, []entity.Coordinate{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}}, won.Line)

		// When: the client quits
		send(t, ctx, conn, ActionQuit, nil)

		// Then: the server says goodbye and closes normally
		assert.Equal(t, []string{"shutdown"}, actions(receive(t, ctx, conn, 1)))

		var msg Message
		err := wsjson.Read(ctx, conn, &msg)
		assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
	})

	t.Run("Malformed messages are answered with an error", func(t *testing.T) {
		ctx, conn := dial(t, newTestServer(t))

		send(t, ctx, conn, "game:dance", nil)
		send(t, ctx, conn, ActionNames, nil)
		rejected := receive(t, ctx, conn, 2)

		assert.Equal(t, []string{"error", "error"}, actions(rejected))

		var payload ErrorPayload
		require.NoError(t, json.Unmarshal(rejected[0].Payload, &payload))
		assert.Contains(t, payload.Message, "game:dance")

		// And: the session is still usable
		send(t, ctx, conn, ActionStart, nil)
		assert.Equal(t, []string{"players:select"}, actions(receive(t, ctx, conn, 1)))
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		ctx, conn := dial(t, newTestServer(t))

		send(t, ctx, conn, ActionStart, nil)
		send(t, ctx, conn, ActionNames, NamesPayload{Names: []string{"Alice", "Bob"}})
		send(t, ctx, conn, ActionMove, MovePayload{Col: 1, Row: 1})
		receive(t, ctx, conn, 8)

		send(t, ctx, conn, ActionMove, MovePayload{Col: 1, Row: 1})

		assert.Equal(t, []string{"error", "move:requested"}, actions(receive(t, ctx, conn, 2)))
	})

	t.Run("Intent out of order closes the session", func(t *testing.T) {
		ctx, conn := dial(t, newTestServer(t))

		// When: a move is sent before the game started
		send(t, ctx, conn, ActionMove, MovePayload{Col: 0, Row: 0})

		// Then: an error is sent and the connection is closed
		assert.Equal(t, []string{"error"}, actions(receive(t, ctx, conn, 1)))

		var msg Message
		err := wsjson.Read(ctx, conn, &msg)
		assert.Equal(t, websocket.StatusPolicyViolation, websocket.CloseStatus(err))
	})
}

func TestServer_Ping(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Results(t *testing.T) {
	t.Run("Lists recent results", func(t *testing.T) {
		// Given: a result store with one round
		results := &fakeResults{results: []entity.Result{{RoundID: "r1", PlayerX: "Alice", PlayerO: "Bob", Winner: "Bob", Moves: 6}}}
		server := newTestServer(t, WithResults(results))

		// When: the results are requested with a limit
		resp, err := http.Get(server.URL + "/results?limit=3")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: they are returned as JSON
		var listed []entity.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 3, results.limit)
		require.Len(t, listed, 1)
		assert.Equal(t, "Bob", listed[0].Winner)
	})

	t.Run("Default limit", func(t *testing.T) {
		results := &fakeResults{}
		server := newTestServer(t, WithResults(results))

		resp, err := http.Get(server.URL + "/results")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, defaultResultsLimit, results.limit)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		server := newTestServer(t)

		resp, err := http.Get(server.URL + "/results?limit=zero")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Store failure", func(t *testing.T) {
		server := newTestServer(t, WithResults(&fakeResults{err: errors.New("disk full")}))

		resp, err := http.Get(server.URL + "/results")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("No store configured", func(t *testing.T) {
		server := newTestServer(t)

		resp, err := http.Get(server.URL + "/results")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(body))
	})
}
