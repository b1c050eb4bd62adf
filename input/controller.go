package input

import (
	"context"
	"log/slog"
	"sync"

	"github.com/brensch/termsnake/game"
)

// DirectionSetter receives direction changes. *game.Snake implements it.
type DirectionSetter interface {
	SetDirection(game.Point)
}

// Controller applies key symbols to a snake. It is meant to be driven from a
// single input goroutine while the tick loop runs elsewhere; reversal is not
// filtered.
type Controller struct {
	target DirectionSetter
	cancel context.CancelFunc
	logger *slog.Logger

	exitOnce sync.Once
	done     chan struct{}
}

// NewController builds a controller. cancel, if non-nil, is called once when
// an exit symbol arrives.
func NewController(target DirectionSetter, cancel context.CancelFunc, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		target: target,
		cancel: cancel,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Handle applies one symbol and reports what it did. Unknown symbols are ignored.
func (c *Controller) Handle(symbol string) Action {
	action, dir := Lookup(symbol)
	switch action {
	case Turn:
		c.target.SetDirection(dir)
		c.logger.Debug("direction", "key", symbol, "dir", dir.String())
	case Exit:
		c.exitOnce.Do(func() {
			c.logger.Info("exit requested", "key", symbol)
			close(c.done)
			if c.cancel != nil {
				c.cancel()
			}
		})
	}
	return action
}

// Done is closed after the first exit symbol.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
