package teaui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/input"
	"github.com/brensch/termsnake/loop"
)

type fakeSource struct {
	ch      chan loop.Update
	outcome loop.Outcome
}

func (f *fakeSource) Updates() <-chan loop.Update { return f.ch }

func (f *fakeSource) Outcome() (loop.Outcome, bool) { return f.outcome, true }

func testFrame(t *testing.T) game.Frame {
	t.Helper()
	g, err := game.NewGrid(3, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, g.SetFood(game.Point{Row: 2, Col: 3}))
	return g.Render()
}

func TestModel_KeysSteerSnake(t *testing.T) {
	s := game.InitialSnake()
	m := newModel(input.NewController(s, nil, nil), &fakeSource{ch: make(chan loop.Update)})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, game.Down, s.Direction())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Equal(t, game.Left, s.Direction())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, game.Left, s.Direction())
}

func TestModel_EscQuits(t *testing.T) {
	c := input.NewController(game.InitialSnake(), nil, nil)
	m := newModel(c, &fakeSource{ch: make(chan loop.Update)})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	select {
	case <-c.Done():
	default:
		t.Fatal("controller did not see exit")
	}
}

func TestModel_FramesThenOutcome(t *testing.T) {
	src := &fakeSource{
		ch:      make(chan loop.Update, 1),
		outcome: loop.Outcome{Reason: game.SelfCollision, Length: 5},
	}
	m := newModel(input.NewController(game.InitialSnake(), nil, nil), src)

	src.ch <- loop.Update{Tick: 3, Frame: testFrame(t), Length: 2}
	msg := m.Init()()
	require.IsType(t, frameMsg{}, msg)

	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	view := next.View()
	assert.Contains(t, view, "|-=  |")
	assert.Contains(t, view, "|   *|")
	assert.Contains(t, view, "length 2  tick 3")

	close(src.ch)
	done := cmd()
	require.IsType(t, doneMsg{}, done)

	final, cmd := next.Update(done)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, final.View(), "You ate yourself. length 5")
}
