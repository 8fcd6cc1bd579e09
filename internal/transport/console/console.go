// Package console is the synchronous front-end: it is both the View and the
// IntentSource of a GameManager driven by Play on one goroutine.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

type prompt int

const (
	promptNone prompt = iota
	promptNames
	promptMove
	promptAgain
)

const quitWord = "q"

type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	pending []usecase.Message
	prompt  prompt
	current entity.Player
}

// New returns a console with a Start intent already buffered.
func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		in:      bufio.NewScanner(in),
		out:     out,
		pending: []usecase.Message{usecase.Start()},
	}
}

// NextIntent returns the next buffered intent or asks the user for one.
// End of input is read as Quit.
func (that *Console) NextIntent(ctx context.Context) (usecase.Message, error) {
	if len(that.pending) > 0 {
		msg := that.pending[0]
		that.pending = that.pending[1:]
		return msg, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return usecase.Message{}, err
		}

		msg, ok, err := that.ask()
		if err != nil {
			return usecase.Message{}, err
		}

		if ok {
			return msg, nil
		}
	}
}

// ask runs the current prompt once. ok is false when the answer was not usable.
func (that *Console) ask() (usecase.Message, bool, error) {
	switch that.prompt {
	case promptNames:
		return that.askNames()
	case promptMove:
		return that.askMove()
	case promptAgain:
		return that.askAgain()
	}

	return usecase.Message{}, false, errors.New("nothing was requested")
}

func (that *Console) askNames() (usecase.Message, bool, error) {
	names := make([]string, 0, entity.MinPlayers)

	for _, symbol := range entity.Symbols() {
		line, ok := that.readLine(fmt.Sprintf("Name of player %s: ", symbol))
		if !ok || line == quitWord {
			return usecase.Quit(), true, nil
		}
		names = append(names, line)
	}

	return usecase.NamesChosen(names...), true, nil
}

func (that *Console) askMove() (usecase.Message, bool, error) {
	line, ok := that.readLine(fmt.Sprintf("%s (%s), column and row: ", that.current.Name, that.current.Symbol))
	if !ok || line == quitWord {
		return usecase.Quit(), true, nil
	}

	c, err := parseCoordinate(line)
	if err != nil {
		that.printf("%v\n", err)
		return usecase.Message{}, false, nil
	}

	return usecase.MoveChosen(c), true, nil
}

func (that *Console) askAgain() (usecase.Message, bool, error) {
	line, ok := that.readLine("Play again? [y]es, [n]ew players, [q]uit: ")
	if !ok {
		return usecase.Quit(), true, nil
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return usecase.PlayAgain(), true, nil
	case "n", "new":
		// Restart leaves the manager in INIT; Start asks for players again.
		that.pending = append(that.pending, usecase.Start())
		return usecase.Restart(), true, nil
	case quitWord, "quit":
		return usecase.Quit(), true, nil
	}

	return usecase.Message{}, false, nil
}

func (that *Console) readLine(question string) (string, bool) {
	that.printf("%s", question)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

// parseCoordinate reads "col row" or "col,row", both counted from 1.
func parseCoordinate(line string) (entity.Coordinate, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Coordinate{}, errors.New("enter a column and a row, e.g. 2 3")
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("bad column %q", fields[0])
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("bad row %q", fields[1])
	}

	return entity.Coordinate{Col: col - 1, Row: row - 1}, nil
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
