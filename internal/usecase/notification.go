package usecase

import (
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type NotificationKind string

const (
	NotifyPlayerSelection NotificationKind = "players:select"
	NotifyInitialized     NotificationKind = "game:initialized"
	NotifyBoardUpdated    NotificationKind = "board:updated"
	NotifyTurnBegan       NotificationKind = "turn:began"
	NotifyMoveRequested   NotificationKind = "move:requested"
	NotifyGameWon         NotificationKind = "game:won"
	NotifyGameDrawn       NotificationKind = "game:drawn"
	NotifyIntentRejected  NotificationKind = "error"
	NotifyShutdown        NotificationKind = "shutdown"
)

// Notification is a View call packed as a value so it can cross to another goroutine.
type Notification struct {
	Kind   NotificationKind
	Board  *entity.Board
	Last   *entity.Coordinate
	Player *entity.Player
	Line   []entity.Coordinate
	Err    error
}

// Dispatch replays n on view.
func (that Notification) Dispatch(view View) {
	switch that.Kind {
	case NotifyPlayerSelection:
		view.PlayerSelectionRequested()
	case NotifyInitialized:
		view.Initialized()
	case NotifyBoardUpdated:
		view.BoardUpdated(that.Board, that.Last)
	case NotifyTurnBegan:
		view.TurnBegan(*that.Player)
	case NotifyMoveRequested:
		view.MoveRequested()
	case NotifyGameWon:
		view.GameWon(*that.Player, that.Line)
	case NotifyGameDrawn:
		view.GameDrawn()
	case NotifyIntentRejected:
		view.IntentRejected(that.Err)
	case NotifyShutdown:
		view.Shutdown()
	}
}

// PostingView turns every notification into a Notification handed to post.
// post is called on the orchestrator's goroutine and must hand the value over to the front-end's own context.
type PostingView struct {
	post func(Notification)
}

func NewPostingView(post func(Notification)) *PostingView {
	return &PostingView{post: post}
}

func (that *PostingView) PlayerSelectionRequested() {
	that.post(Notification{Kind: NotifyPlayerSelection})
}

func (that *PostingView) Initialized() {
	that.post(Notification{Kind: NotifyInitialized})
}

func (that *PostingView) BoardUpdated(board *entity.Board, last *entity.Coordinate) {
	that.post(Notification{Kind: NotifyBoardUpdated, Board: board, Last: last})
}

func (that *PostingView) TurnBegan(player entity.Player) {
	that.post(Notification{Kind: NotifyTurnBegan, Player: &player})
}

func (that *PostingView) MoveRequested() {
	that.post(Notification{Kind: NotifyMoveRequested})
}

func (that *PostingView) GameWon(winner entity.Player, line []entity.Coordinate) {
	that.post(Notification{Kind: NotifyGameWon, Player: &winner, Line: line})
}

func (that *PostingView) GameDrawn() {
	that.post(Notification{Kind: NotifyGameDrawn})
}

func (that *PostingView) IntentRejected(err error) {
	that.post(Notification{Kind: NotifyIntentRejected, Err: err})
}

func (that *PostingView) Shutdown() {
	that.post(Notification{Kind: NotifyShutdown})
}
