// Package teaui is the Bubble Tea front-end: key messages steer the snake
// and loop updates are drawn as they arrive.
package teaui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/input"
	"github.com/brensch/termsnake/loop"
)

// Source is the part of *loop.Loop the model reads from.
type Source interface {
	Updates() <-chan loop.Update
	Outcome() (loop.Outcome, bool)
}

// KeyHandler is the part of *input.Controller the model writes to.
type KeyHandler interface {
	Handle(symbol string) input.Action
}

type frameMsg loop.Update

type doneMsg loop.Outcome

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	endStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type model struct {
	keys    KeyHandler
	source  Source
	frame   game.Frame
	tick    int
	length  int
	outcome *loop.Outcome
}

func newModel(keys KeyHandler, source Source) model {
	return model{keys: keys, source: source}
}

func waitForUpdate(source Source) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-source.Updates()
		if !ok {
			o, _ := source.Outcome()
			return doneMsg(o)
		}
		return frameMsg(u)
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.source)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.Handle(msg.String()) == input.Exit {
			return m, tea.Quit
		}
	case frameMsg:
		m.frame = msg.Frame
		m.tick = msg.Tick
		m.length = msg.Length
		return m, waitForUpdate(m.source)
	case doneMsg:
		o := loop.Outcome(msg)
		m.outcome = &o
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("snake"))
	b.WriteString("\n\n")
	for _, line := range m.frame.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(fmt.Sprintf("length %d  tick %d  arrows/wasd to steer, esc to quit", m.length, m.tick)))
	b.WriteByte('\n')
	if m.outcome != nil {
		b.WriteString(endStyle.Render(m.outcome.Message()))
		b.WriteByte('\n')
	}
	return b.String()
}

// Run shows the game until it ends or the player exits.
func Run(ctx context.Context, keys KeyHandler, source Source) error {
	p := tea.NewProgram(newModel(keys, source), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("tea program: %w", err)
	}
	return nil
}
