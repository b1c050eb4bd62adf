package loop

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, rows, cols int, food *game.Point) *game.Grid {
	t.Helper()
	g, err := game.NewGrid(rows, cols, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	if food != nil {
		require.NoError(t, g.SetFood(*food))
	}
	return g
}

func drain(l *Loop) []Update {
	var out []Update
	for u := range l.Updates() {
		out = append(out, u)
	}
	return out
}

func TestRun_HitsRightWall(t *testing.T) {
	g := newGrid(t, 3, 5, &game.Point{Row: 2, Col: 0})
	l := New(g, time.Millisecond, nil)

	done := make(chan Outcome, 1)
	go func() { done <- l.Run(context.Background()) }()
	updates := drain(l)
	out := <-done

	assert.Equal(t, game.OutOfBounds, out.Reason)
	assert.Equal(t, 2, out.Length)
	assert.Equal(t, 4, out.Ticks)
	assert.Equal(t, "You Lost. Length 2", out.Message())

	require.Len(t, updates, 4)
	assert.Equal(t, 0, updates[0].Tick)
	assert.Equal(t, "-=   ", updates[0].Frame.Rows()[0])
	assert.Equal(t, "   -=", updates[3].Frame.Rows()[0])

	stored, ok := l.Outcome()
	require.True(t, ok)
	assert.Equal(t, out, stored)
}

func TestRun_DirectionFromController(t *testing.T) {
	g := newGrid(t, 15, 20, &game.Point{Row: 5, Col: 10})
	c := input.NewController(g.Snake(), nil, nil)
	c.Handle("s")

	l := New(g, time.Millisecond, nil)
	done := make(chan Outcome, 1)
	go func() { done <- l.Run(context.Background()) }()
	updates := drain(l)
	out := <-done

	assert.Equal(t, game.OutOfBounds, out.Reason)
	assert.Equal(t, 15, out.Ticks)
	assert.Len(t, updates, 15)
	assert.Equal(t, game.Point{Row: 14, Col: 1}, g.Snake().Head())
}

func TestRun_CancelStopsBetweenTicks(t *testing.T) {
	g := newGrid(t, 15, 20, nil)
	ctx, cancel := context.WithCancel(context.Background())
	c := input.NewController(g.Snake(), cancel, nil)
	l := New(g, time.Hour, nil)

	done := make(chan Outcome, 1)
	go func() { done <- l.Run(ctx) }()

	first, ok := <-l.Updates()
	require.True(t, ok)
	assert.Equal(t, 0, first.Tick)

	c.Handle("esc")
	drain(l)

	select {
	case out := <-done:
		assert.Equal(t, game.Quit, out.Reason)
		assert.Equal(t, 0, out.Ticks)
		assert.Equal(t, 2, out.Length)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after exit")
	}
	assert.Equal(t, game.Point{Row: 0, Col: 1}, g.Snake().Head())
}

func TestRun_BoardFilledPublishesLastFrame(t *testing.T) {
	g := newGrid(t, 1, 3, nil)
	l := New(g, time.Millisecond, nil)

	done := make(chan Outcome, 1)
	go func() { done <- l.Run(context.Background()) }()
	updates := drain(l)
	out := <-done

	assert.Equal(t, game.BoardFilled, out.Reason)
	assert.Equal(t, 3, out.Length)
	require.Len(t, updates, 2)
	assert.True(t, updates[1].Ate)
	assert.Equal(t, "--=", updates[1].Frame.Rows()[0])
}
