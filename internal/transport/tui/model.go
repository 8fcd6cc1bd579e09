// Package tui is the asynchronous terminal front-end. The bubbletea program owns
// all rendering state; the game runs in a usecase.GameLoop on another goroutine.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

type submitter interface {
	Submit(msg usecase.Message)
}

type phase int

const (
	phaseWaiting phase = iota
	phaseNames
	phaseMove
	phaseGameOver
	phaseDone
)

// notificationMsg carries a notification from the game loop into the program.
type notificationMsg struct {
	usecase.Notification
}

// loopStoppedMsg reports that the game loop returned.
type loopStoppedMsg struct {
	err error
}

type Model struct {
	submit submitter

	phase  phase
	names  []string
	input  string
	board  *entity.Board
	cursor entity.Coordinate
	line   []entity.Coordinate

	current entity.Player
	status  string
	errMsg  string
}

func NewModel(submit submitter) Model {
	return Model{
		submit: submit,
		phase:  phaseWaiting,
		status: "Starting...",
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.submit.Submit(usecase.Start())
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationMsg:
		return m.applyNotification(msg.Notification)
	case loopStoppedMsg:
		m.phase = phaseDone
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, tea.Quit
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) applyNotification(n usecase.Notification) (tea.Model, tea.Cmd) {
	switch n.Kind {
	case usecase.NotifyPlayerSelection:
		m.phase = phaseNames
		m.names = nil
		m.input = ""
		m.status = "Choose the players"
	case usecase.NotifyInitialized:
		m.line = nil
		m.errMsg = ""
		m.cursor = entity.Coordinate{}
	case usecase.NotifyBoardUpdated:
		m.board = n.Board
	case usecase.NotifyTurnBegan:
		m.current = *n.Player
		m.status = m.current.Name + " (" + string(m.current.Symbol) + ") to move"
	case usecase.NotifyMoveRequested:
		m.phase = phaseMove
	case usecase.NotifyGameWon:
		m.phase = phaseGameOver
		m.line = n.Line
		m.status = n.Player.Name + " (" + string(n.Player.Symbol) + ") wins!"
	case usecase.NotifyGameDrawn:
		m.phase = phaseGameOver
		m.status = "Draw"
	case usecase.NotifyIntentRejected:
		m.errMsg = n.Err.Error()
	case usecase.NotifyShutdown:
		m.phase = phaseDone
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || (msg.String() == "q" && m.phase != phaseNames) {
		return m.send(usecase.Quit())
	}

	switch m.phase {
	case phaseNames:
		return m.updateNames(msg)
	case phaseMove:
		return m.updateMove(msg)
	case phaseGameOver:
		return m.updateGameOver(msg)
	}

	return m, nil
}

func (m Model) updateNames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.names = append(m.names, strings.TrimSpace(m.input))
		m.input = ""
		if len(m.names) < entity.MinPlayers {
			return m, nil
		}
		return m.send(usecase.NamesChosen(m.names...))
	case tea.KeyBackspace:
		if runes := []rune(m.input); len(runes) > 0 {
			m.input = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(msg.Runes)
	case tea.KeyEsc:
		return m.send(usecase.Quit())
	}

	return m, nil
}

func (m Model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case "down", "j":
		m.cursor.Row = min(m.cursor.Row+1, m.board.Rows()-1)
	case "left", "h":
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case "right", "l":
		m.cursor.Col = min(m.cursor.Col+1, m.board.Cols()-1)
	case "enter", " ":
		return m.send(usecase.MoveChosen(m.cursor))
	}

	return m, nil
}

func (m Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "enter":
		return m.send(usecase.PlayAgain())
	case "r":
		m.submit.Submit(usecase.Restart())
		return m.send(usecase.Start())
	}

	return m, nil
}

// send hands an intent to the loop and waits for the next request.
func (m Model) send(intent usecase.Message) (tea.Model, tea.Cmd) {
	m.submit.Submit(intent)
	m.phase = phaseWaiting
	m.errMsg = ""

	return m, nil
}
