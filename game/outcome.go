package game

import (
	"fmt"

	"github.com/daystram/rookery/board"
)

type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonCheckmate
	ReasonStalemate
	ReasonResignation
)

func (r Reason) String() string {
	switch r {
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	case ReasonResignation:
		return "resignation"
	default:
		return ""
	}
}

// Outcome describes the position after a move. Winner is only meaningful when Over is set
// and Reason is not ReasonStalemate.
type Outcome struct {
	State  board.State
	Over   bool
	Reason Reason
	Winner board.Side
}

func (o Outcome) IsDraw() bool {
	return o.Over && o.Reason == ReasonStalemate
}

func (o Outcome) String() string {
	switch {
	case o.Reason == ReasonCheckmate:
		return fmt.Sprintf("Checkmate! %s wins!", o.Winner)
	case o.Reason == ReasonStalemate:
		return "Stalemate!"
	case o.Reason == ReasonResignation:
		return fmt.Sprintf("%s resigns. %s wins!", o.Winner.Opposite(), o.Winner)
	case o.State.IsCheck():
		return "Check!"
	default:
		return ""
	}
}
