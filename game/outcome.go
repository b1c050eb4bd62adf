package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("invalid grid size")
	ErrOutOfBounds     = errors.New("point outside grid")
	ErrCellOccupied    = errors.New("cell occupied by snake")
	ErrNoValidFoodCell = errors.New("no empty cell for food")
)

// LossReason says why a game ended.
type LossReason int

const (
	NoLoss LossReason = iota
	SelfCollision
	OutOfBounds
	// BoardFilled is the win: the snake covers every cell.
	BoardFilled
	// Quit means the player left before the game ended on its own.
	Quit
)

func (r LossReason) String() string {
	switch r {
	case NoLoss:
		return "none"
	case SelfCollision:
		return "self_collision"
	case OutOfBounds:
		return "out_of_bounds"
	case BoardFilled:
		return "board_filled"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Status is the tick-level state machine.
type Status int

const (
	Continue Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "continue"
}

// TickResult is returned by Grid.Tick. Reason is NoLoss unless Status is GameOver.
type TickResult struct {
	Status Status
	Reason LossReason
	Length int
	Ate    bool
}

func (r TickResult) Over() bool {
	return r.Status == GameOver
}

// Message is the human-readable end-of-game line.
func (r TickResult) Message() string {
	return EndMessage(r.Reason, r.Length)
}

// EndMessage formats the final message for a reason and snake length.
func EndMessage(reason LossReason, length int) string {
	switch reason {
	case SelfCollision:
		return fmt.Sprintf("You ate yourself. length %d", length)
	case OutOfBounds:
		return fmt.Sprintf("You Lost. Length %d", length)
	case BoardFilled:
		return fmt.Sprintf("You filled the board! length %d", length)
	case Quit:
		return fmt.Sprintf("Quit. length %d", length)
	default:
		return fmt.Sprintf("length %d", length)
	}
}
