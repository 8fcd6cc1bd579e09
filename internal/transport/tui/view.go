package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tic-Tac-Toe") + "\n\n")

	if m.phase == phaseNames {
		sb.WriteString(m.renderNames())
	} else if m.board != nil {
		sb.WriteString(m.renderBoard() + "\n")
	}

	status := statusStyle.Render(m.status)
	if m.phase == phaseGameOver && m.line != nil {
		status = winStyle.Render(m.status)
	}
	sb.WriteString(status + "\n")

	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}

	sb.WriteString("\n" + hintStyle.Render(m.hint()) + "\n")

	return sb.String()
}

func (m Model) renderNames() string {
	var sb strings.Builder

	symbols := entity.Symbols()
	for i, name := range m.names {
		sb.WriteString("Player " + string(symbols[i]) + ": " + name + "\n")
	}

	if len(m.names) < len(symbols) {
		sb.WriteString("Player " + string(symbols[len(m.names)]) + ": " + m.input + "_\n")
	}

	return sb.String() + "\n"
}

func (m Model) renderBoard() string {
	rows := make([]string, 0, m.board.Rows())

	for row := range m.board.Rows() {
		cells := make([]string, 0, m.board.Cols())
		for col := range m.board.Cols() {
			c := entity.Coordinate{Col: col, Row: row}
			cells = append(cells, m.renderCell(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(c entity.Coordinate) string {
	symbol := m.board.At(c)

	text := symbol.String()
	if style, ok := symbolStyles[string(symbol)]; ok {
		text = style.Render(text)
	}

	switch {
	case slices.Contains(m.line, c):
		return lineStyle.Render(symbol.String())
	case m.phase == phaseMove && c == m.cursor:
		return cursorStyle.Render(text)
	}

	return cellStyle.Render(text)
}

func (m Model) hint() string {
	switch m.phase {
	case phaseNames:
		return "type a name, enter to confirm, esc to quit"
	case phaseMove:
		return "arrows or hjkl to move, enter to play at " +
			strconv.Itoa(m.cursor.Col+1) + "," + strconv.Itoa(m.cursor.Row+1) + ", q to quit"
	case phaseGameOver:
		return "a play again, r new players, q quit"
	}

	return "q to quit"
}
