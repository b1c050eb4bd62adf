package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/brensch/termsnake/config"
	"github.com/brensch/termsnake/game"
	"github.com/brensch/termsnake/input"
	"github.com/brensch/termsnake/logging"
	"github.com/brensch/termsnake/loop"
	"github.com/brensch/termsnake/ui/plainui"
	"github.com/brensch/termsnake/ui/tcellui"
	"github.com/brensch/termsnake/ui/teaui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()
	logger = logger.With("session", uuid.New().String())
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := game.NewGrid(cfg.Rows, cfg.Cols, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to create grid: %v", err)
	}

	ui := cfg.UI
	if ui != config.UIPlain && !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Warn("stdout is not a terminal, using plain output", "requested", ui)
		ui = config.UIPlain
	}
	logger.Info("starting", "ui", ui, "seed", seed)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	ctrl := input.NewController(grid.Snake(), cancel, logger)
	l := loop.New(grid, cfg.Interval, logger)

	done := make(chan loop.Outcome, 1)
	go func() { done <- l.Run(ctx) }()

	if err := runUI(ctx, ui, ctrl, l); err != nil {
		logger.Error("front-end failed", "err", err)
		cancel()
		<-done
		log.Fatalf("Front-end failed: %v", err)
	}

	// The front-end may return first on exit; make sure the loop stops too.
	cancel()
	outcome := <-done
	fmt.Println(outcome.Message())
}

func runUI(ctx context.Context, ui string, ctrl *input.Controller, l *loop.Loop) error {
	switch ui {
	case config.UITcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcell screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("tcell init: %w", err)
		}
		defer screen.Fini()
		tcellui.Run(screen, ctrl, l)
		return nil
	case config.UIPlain:
		_, err := plainui.Run(os.Stdin, os.Stdout, ctrl, l)
		return err
	default:
		return teaui.Run(ctx, ctrl, l)
	}
}
