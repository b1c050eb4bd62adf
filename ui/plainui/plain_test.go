package plainui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

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

func TestDecode(t *testing.T) {
	assert.Equal(t, []string{"up", "down", "right", "left"}, Decode([]byte("\x1b[A\x1b[B\x1b[C\x1b[D")))
	assert.Equal(t, []string{"up"}, Decode([]byte("\x1bOA")))
	assert.Equal(t, []string{"w", "a", "s", "d"}, Decode([]byte("wasd")))
	assert.Equal(t, []string{"esc"}, Decode([]byte{0x1b}))
	assert.Equal(t, []string{"ctrl+c"}, Decode([]byte{0x03}))
	assert.Empty(t, Decode([]byte{'\r', 0x7f}))
}

func TestReadKeys_StopsAtExit(t *testing.T) {
	s := game.InitialSnake()
	c := input.NewController(s, nil, nil)

	err := ReadKeys(strings.NewReader("s\x1b[Dq\x1bw"), c)
	require.NoError(t, err)

	// "w" comes after esc and is never applied.
	assert.Equal(t, game.Left, s.Direction())
	select {
	case <-c.Done():
	default:
		t.Fatal("exit not seen")
	}
}

func TestReadKeys_EOF(t *testing.T) {
	s := game.InitialSnake()
	require.NoError(t, ReadKeys(strings.NewReader("d"), input.NewController(s, nil, nil)))
	assert.Equal(t, game.Right, s.Direction())
}

func TestPrint(t *testing.T) {
	g, err := game.NewGrid(2, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, g.SetFood(game.Point{Row: 1, Col: 2}))

	src := &fakeSource{
		ch:      make(chan loop.Update, 1),
		outcome: loop.Outcome{Reason: game.SelfCollision, Length: 4},
	}
	src.ch <- loop.Update{Frame: g.Render()}
	close(src.ch)

	var out bytes.Buffer
	o, err := Print(&out, "\r\n", src)
	require.NoError(t, err)
	assert.Equal(t, game.SelfCollision, o.Reason)
	assert.Equal(t, "\r\n|-= |\r\n|  *|\r\nYou ate yourself. length 4\r\n", out.String())
}
