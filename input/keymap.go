// Package input turns key symbols into snake direction changes.
//
// Front-ends translate their native key events into the symbol names used
// here (bubbletea's KeyMsg.String() spelling) and hand them to a Controller.
package input

import "github.com/brensch/termsnake/game"

// Exit symbols end the game.
const (
	SymbolEscape = "esc"
	SymbolCtrlC  = "ctrl+c"
)

// Directions maps the eight steering symbols to unit vectors.
var Directions = map[string]game.Point{
	"up":    game.Up,
	"left":  game.Left,
	"down":  game.Down,
	"right": game.Right,
	"w":     game.Up,
	"a":     game.Left,
	"s":     game.Down,
	"d":     game.Right,
}

// Action is what a symbol asks for.
type Action int

const (
	Ignore Action = iota
	Turn
	Exit
)

func (a Action) String() string {
	switch a {
	case Turn:
		return "turn"
	case Exit:
		return "exit"
	default:
		return "ignore"
	}
}

// Lookup classifies a symbol. The direction is only set for Turn.
func Lookup(symbol string) (Action, game.Point) {
	if symbol == SymbolEscape || symbol == SymbolCtrlC {
		return Exit, game.Point{}
	}
	if d, ok := Directions[symbol]; ok {
		return Turn, d
	}
	return Ignore, game.Point{}
}
