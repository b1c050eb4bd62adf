package input

import (
	"context"
	"testing"

	"github.com/brensch/termsnake/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	cases := map[string]game.Point{
		"up": game.Up, "w": game.Up,
		"down": game.Down, "s": game.Down,
		"left": game.Left, "a": game.Left,
		"right": game.Right, "d": game.Right,
	}
	for sym, want := range cases {
		action, dir := Lookup(sym)
		assert.Equal(t, Turn, action, sym)
		assert.Equal(t, want, dir, sym)
	}

	action, _ := Lookup("esc")
	assert.Equal(t, Exit, action)

	for _, sym := range []string{"x", "W", "enter", "", "space"} {
		action, _ := Lookup(sym)
		assert.Equal(t, Ignore, action, sym)
	}
}

func TestController_TurnsSnake(t *testing.T) {
	s := game.InitialSnake()
	c := NewController(s, nil, nil)

	assert.Equal(t, Turn, c.Handle("down"))
	assert.Equal(t, game.Down, s.Direction())

	assert.Equal(t, Ignore, c.Handle("z"))
	assert.Equal(t, game.Down, s.Direction())

	// Reversal is passed through untouched.
	assert.Equal(t, Turn, c.Handle("w"))
	assert.Equal(t, game.Up, s.Direction())
}

func TestController_ExitCancelsOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	c := NewController(game.InitialSnake(), func() {
		calls++
		cancel()
	}, nil)

	assert.Equal(t, Exit, c.Handle("esc"))
	assert.Equal(t, Exit, c.Handle("ctrl+c"))

	require.Error(t, ctx.Err())
	assert.Equal(t, 1, calls)
	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed after exit")
	}
}
