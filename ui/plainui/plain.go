// Package plainui prints each frame as text and reads keys from a raw-mode
// terminal. It needs nothing beyond a byte stream in each direction.
package plainui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/input"
	"github.com/brensch/termsnake/loop"
)

type Source interface {
	Updates() <-chan loop.Update
	Outcome() (loop.Outcome, bool)
}

type KeyHandler interface {
	Handle(symbol string) input.Action
}

// Run puts in into raw mode when it is a terminal, reads keys from it in the
// background and prints frames to out until the source closes.
func Run(in *os.File, out io.Writer, keys KeyHandler, source Source) (loop.Outcome, error) {
	newline := "\n"
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return loop.Outcome{}, fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(fd, old)
		// Raw mode also turns off output post-processing.
		newline = "\r\n"
	}

	go ReadKeys(in, keys)
	return Print(out, newline, source)
}

// Print writes every update and then the outcome message.
func Print(out io.Writer, newline string, source Source) (loop.Outcome, error) {
	for u := range source.Updates() {
		if err := WriteFrame(out, u.Frame, newline); err != nil {
			return loop.Outcome{}, err
		}
	}
	o, _ := source.Outcome()
	if _, err := io.WriteString(out, o.Message()+newline); err != nil {
		return o, fmt.Errorf("write outcome: %w", err)
	}
	return o, nil
}

func WriteFrame(out io.Writer, f game.Frame, newline string) error {
	text := f.String()
	if newline != "\n" {
		text = strings.ReplaceAll(text, "\n", newline)
	}
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ReadKeys decodes key presses from r until EOF, a read error, or an exit key.
func ReadKeys(r io.Reader, keys KeyHandler) error {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, sym := range Decode(buf[:n]) {
			if keys.Handle(sym) == input.Exit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Decode splits one read from a raw terminal into key symbols. A lone ESC is
// the escape key; ESC [ A..D (or ESC O A..D) are the arrows.
func Decode(b []byte) []string {
	var out []string
	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == 0x1b:
			if i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				if sym := arrow(b[i+2]); sym != "" {
					out = append(out, sym)
				}
				i += 2
				continue
			}
			out = append(out, input.SymbolEscape)
		case c == 0x03:
			out = append(out, input.SymbolCtrlC)
		case c >= 0x20 && c < 0x7f:
			out = append(out, string(rune(c)))
		}
	}
	return out
}

func arrow(c byte) string {
	switch c {
	case 'A':
		return "up"
	case 'B':
		return "down"
	case 'C':
		return "right"
	case 'D':
		return "left"
	}
	return ""
}
