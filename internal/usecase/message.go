package usecase

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type Command string

const (
	CommandStart       Command = "start"
	CommandNamesChosen Command = "names"
	CommandMoveChosen  Command = "move"
	CommandPlayAgain   Command = "again"
	CommandRestart     Command = "restart"
	CommandQuit        Command = "quit"
)

// Message carries an intent from a front-end to the orchestrator.
type Message struct {
	Command Command
	Payload any

	done func()
}

func NewMessage(cmd Command, payload any) Message {
	return Message{Command: cmd, Payload: payload}
}

func Start() Message {
	return NewMessage(CommandStart, nil)
}

func NamesChosen(names ...string) Message {
	return NewMessage(CommandNamesChosen, names)
}

func MoveChosen(c entity.Coordinate) Message {
	return NewMessage(CommandMoveChosen, c)
}

func PlayAgain() Message {
	return NewMessage(CommandPlayAgain, nil)
}

func Restart() Message {
	return NewMessage(CommandRestart, nil)
}

func Quit() Message {
	return NewMessage(CommandQuit, nil)
}

// WithDone attaches a callback run once the orchestrator has finished processing the message.
func (that Message) WithDone(fn func()) Message {
	if fn != nil {
		that.done = sync.OnceFunc(fn)
	}
	return that
}

// Ack signals that processing is complete.
func (that Message) Ack() {
	if that.done != nil {
		that.done()
	}
}

func (that Message) String() string {
	if that.Payload == nil {
		return fmt.Sprintf("Message(cmd=%s)", that.Command)
	}
	return fmt.Sprintf("Message(cmd=%s, payload=%v)", that.Command, that.Payload)
}
