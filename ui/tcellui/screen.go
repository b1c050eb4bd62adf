// Package tcellui draws the game on a tcell screen.
package tcellui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/input"
	"github.com/brensch/termsnake/loop"
)

// Source is the part of *loop.Loop this front-end reads from.
type Source interface {
	Updates() <-chan loop.Update
	Outcome() (loop.Outcome, bool)
}

type KeyHandler interface {
	Handle(symbol string) input.Action
}

const frameTop = 2

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	tailStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	endStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Run draws every update until the source closes, then the final message.
// The screen must already be initialised; key events are read from it on a
// separate goroutine that exits when the screen is finalised.
func Run(screen tcell.Screen, keys KeyHandler, source Source) loop.Outcome {
	go pollKeys(screen, keys)

	var last loop.Update
	for u := range source.Updates() {
		last = u
		draw(screen, u)
		screen.Show()
	}

	o, _ := source.Outcome()
	status := frameTop + last.Frame.Height() + 1
	drawText(screen, 0, status+1, endStyle, o.Message())
	screen.Show()
	return o
}

func pollKeys(screen tcell.Screen, keys KeyHandler) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if sym := symbolFor(key); sym != "" {
				keys.Handle(sym)
			}
		}
	}
}

// symbolFor spells a key the way the input package expects.
func symbolFor(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return input.SymbolEscape
	case tcell.KeyCtrlC:
		return input.SymbolCtrlC
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func draw(screen tcell.Screen, u loop.Update) {
	screen.Clear()
	drawText(screen, 0, 0, titleStyle, "snake")

	for r, row := range u.Frame.Cells {
		y := frameTop + r
		screen.SetContent(0, y, game.GlyphBorder, nil, borderStyle)
		for c, cell := range row {
			screen.SetContent(c+1, y, cell.Glyph(), nil, cellStyle(cell))
		}
		screen.SetContent(len(row)+1, y, game.GlyphBorder, nil, borderStyle)
	}

	status := frameTop + u.Frame.Height() + 1
	drawText(screen, 0, status, tcell.StyleDefault, fmt.Sprintf("length %d  tick %d", u.Length, u.Tick))
}

func cellStyle(c game.Cell) tcell.Style {
	switch c {
	case game.SnakeHead:
		return headStyle
	case game.SnakeTail:
		return tailStyle
	case game.Food:
		return foodStyle
	default:
		return tcell.StyleDefault
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
