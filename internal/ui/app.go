package ui

import (
	"log/slog"

	"github.com/i-jared/flashdeck/internal/deck"
)

// Options configures an App.
type Options struct {
	DeckPath string
	Timing   Timing
	Logger   *slog.Logger
}

// App owns the deck and every screen. Screens are only built here.
type App struct {
	deck *deck.Manager
	menu *RootMenu
	log  *slog.Logger
}

func NewApp(con Console, d *deck.Manager, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		deck: d,
		menu: newRootMenu(con, opts.Timing, d, opts.DeckPath, logger),
		log:  logger,
	}
}

// Run blocks until the user leaves the root menu.
func (a *App) Run() {
	a.log.Info("flashdeck started", "cards", a.deck.Len())
	a.menu.Run()
	a.log.Info("flashdeck stopped", "cards", a.deck.Len())
}
