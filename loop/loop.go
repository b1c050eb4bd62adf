// Package loop drives a grid at a fixed interval and publishes frames.
package loop

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/brensch/termsnake/game"
)

// DefaultInterval is the time between ticks.
const DefaultInterval = 200 * time.Millisecond

// Update is one published frame. Tick is 0 for the frame shown before the
// first move.
type Update struct {
	Tick   int
	Frame  game.Frame
	Length int
	Ate    bool
}

// Outcome is how a run ended.
type Outcome struct {
	Reason game.LossReason
	Length int
	Ticks  int
}

func (o Outcome) Message() string {
	return game.EndMessage(o.Reason, o.Length)
}

// Loop owns a grid for the duration of a run. Only the snake's direction may
// be changed from outside while Run is active.
type Loop struct {
	grid     *game.Grid
	interval time.Duration
	logger   *slog.Logger
	updates  chan Update

	mu      sync.Mutex
	outcome *Outcome
}

func New(grid *game.Grid, interval time.Duration, logger *slog.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		grid:     grid,
		interval: interval,
		logger:   logger,
		updates:  make(chan Update, 1),
	}
}

// Updates yields the initial frame and one frame per completed tick. It is
// closed when Run returns.
func (l *Loop) Updates() <-chan Update {
	return l.updates
}

// Outcome returns the result of a finished run; ok is false while running.
func (l *Loop) Outcome() (Outcome, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.outcome == nil {
		return Outcome{}, false
	}
	return *l.outcome, true
}

// Run ticks until the game ends or ctx is cancelled. Cancellation is only
// checked between ticks, so a tick is never left half applied.
func (l *Loop) Run(ctx context.Context) Outcome {
	defer close(l.updates)

	l.logger.Info("game started",
		"rows", l.grid.Bounds().Height,
		"cols", l.grid.Bounds().Width,
		"interval", l.interval,
	)

	ticks := 0
	if !l.publish(ctx, Update{Frame: l.grid.Render(), Length: l.grid.Snake().Length()}) {
		return l.finish(game.Quit, ticks)
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return l.finish(game.Quit, ticks)
		case <-ticker.C:
		}

		res := l.grid.Tick()
		ticks++

		if res.Ate {
			food, _ := l.grid.Food()
			l.logger.Debug("food eaten", "tick", ticks, "length", res.Length, "next_food", food.String())
		}

		if res.Over() {
			if res.Reason == game.BoardFilled {
				l.publish(ctx, Update{Tick: ticks, Frame: l.grid.Render(), Length: res.Length, Ate: true})
			}
			return l.finish(res.Reason, ticks)
		}

		if !l.publish(ctx, Update{Tick: ticks, Frame: l.grid.Render(), Length: res.Length, Ate: res.Ate}) {
			return l.finish(game.Quit, ticks)
		}
	}
}

func (l *Loop) publish(ctx context.Context, u Update) bool {
	select {
	case l.updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

func (l *Loop) finish(reason game.LossReason, ticks int) Outcome {
	o := Outcome{Reason: reason, Length: l.grid.Snake().Length(), Ticks: ticks}
	l.mu.Lock()
	l.outcome = &o
	l.mu.Unlock()

	l.logger.Info("game over", "reason", reason.String(), "length", o.Length, "ticks", ticks)
	return o
}
