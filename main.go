package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/i-jared/flashdeck/internal/config"
	"github.com/i-jared/flashdeck/internal/deck"
	"github.com/i-jared/flashdeck/internal/logging"
	"github.com/i-jared/flashdeck/internal/term"
	"github.com/i-jared/flashdeck/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flashdeck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	terminal, err := term.New()
	if err != nil {
		logger.Error("terminal init failed", "error", err)
		return err
	}
	defer terminal.Close()

	app := ui.NewApp(terminal, deck.NewManager(logger), ui.Options{
		DeckPath: cfg.DeckPath,
		Timing: ui.Timing{
			Tick:  cfg.Tick,
			Pause: cfg.Pause,
		},
		Logger: logger.With(slog.String("deck", cfg.DeckPath)),
	})
	app.Run()
	return nil
}
