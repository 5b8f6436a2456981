package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/i-jared/flashdeck/internal/deck"
	"github.com/i-jared/flashdeck/internal/input"
)

// Operation is an entry of the root menu.
type Operation int

const (
	OpCreateCard Operation = iota
	OpReviewCards
	OpCheckProgress
	OpLoadCards
	OpSaveCards
	OpExit

	OperationCount
)

var operationNames = [OperationCount]string{
	OpCreateCard:    "Create Card",
	OpReviewCards:   "Review Cards",
	OpCheckProgress: "Check Progress",
	OpLoadCards:     "Load Cards",
	OpSaveCards:     "Save Cards",
	OpExit:          "Exit",
}

func (o Operation) String() string {
	if o >= 0 && o < OperationCount {
		return operationNames[o]
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// RootMenu is the program's outer loop.
type RootMenu struct {
	screen

	deck     *deck.Manager
	deckPath string
	log      *slog.Logger

	create   *CreateCard
	review   *ReviewCards
	progress *CheckProgress

	up, down, confirm, cancel *input.KeyPoller

	selected Operation
	// primed is false until the first input cycle after the menu becomes
	// active has sampled every key.
	primed bool

	status      string
	statusStyle tcell.Style
}

func newRootMenu(con Console, timing Timing, d *deck.Manager, deckPath string, logger *slog.Logger) *RootMenu {
	return &RootMenu{
		screen:   newScreen(con, timing),
		deck:     d,
		deckPath: deckPath,
		log:      logger,
		create:   newCreateCard(con, timing, d),
		review:   newReviewCards(con, timing, d, logger),
		progress: newCheckProgress(con, timing, d),
		up:       input.NewKeyPoller(con, input.KeyUp),
		down:     input.NewKeyPoller(con, input.KeyDown),
		confirm:  input.NewKeyPoller(con, input.KeyEnter),
		cancel:   input.NewKeyPoller(con, input.KeyEscape),
	}
}

// Run blocks until Exit is chosen or the menu is cancelled.
func (m *RootMenu) Run() {
	m.primed = false
	m.enter(m)
}

func (m *RootMenu) Selected() Operation {
	return m.selected
}

func (m *RootMenu) render() {
	y := m.con.Text(0, 0, fmt.Sprintf("Flash Card App (%d cards)", m.deck.Len()), styleTitle)
	y++
	for op := Operation(0); op < OperationCount; op++ {
		style := styleDefault
		if op == m.selected {
			style = styleSelected
		}
		y = m.con.Text(0, y, fmt.Sprintf("%d. %s", int(op)+1, op), style)
	}
	y++
	if m.status != "" {
		y = m.con.Text(0, y, m.status, m.statusStyle)
	}
	m.con.Text(0, y+1, "Up/Down to select, Enter to confirm, Esc to quit", stylePrompt)
}

func (m *RootMenu) handleInput() {
	m.up.Poll()
	m.down.Poll()
	m.confirm.Poll()
	m.cancel.Poll()

	// A press latched while the menu was being entered is consumed here.
	if !m.primed {
		m.primed = true
		return
	}

	if m.cancel.KeyDown() {
		m.exit()
		return
	}

	if m.up.KeyDown() {
		m.move(-1)
	} else if m.down.KeyDown() {
		m.move(1)
	}

	if m.confirm.KeyDown() {
		m.execute()
	}
}

func (m *RootMenu) move(delta int) {
	m.selected = Operation(max(0, min(int(OperationCount)-1, int(m.selected)+delta)))
	m.redraw()
}

func (m *RootMenu) execute() {
	m.log.Debug("menu operation", "operation", m.selected.String())

	switch m.selected {
	case OpCreateCard:
		m.create.Run()
		m.redraw()
	case OpReviewCards:
		m.review.Run()
		m.redraw()
	case OpCheckProgress:
		m.progress.Run()
		m.redraw()
	case OpLoadCards:
		m.load()
	case OpSaveCards:
		m.save()
	case OpExit:
		m.exit()
	}
}

func (m *RootMenu) load() {
	report, err := m.deck.Load(m.deckPath)
	switch {
	case err != nil && deck.IsOpenFailure(err):
		m.setStatus(fmt.Sprintf("Could not open %s", m.deckPath), styleWrong)
	case err != nil:
		m.setStatus(fmt.Sprintf("Error reading %s: %v", m.deckPath, err), styleWrong)
	case report.Skipped > 0:
		m.setStatus(fmt.Sprintf("Loaded %d cards (%d malformed lines skipped)", report.Loaded, report.Skipped), stylePrompt)
	default:
		m.setStatus(fmt.Sprintf("Loaded %d cards", report.Loaded), styleCorrect)
	}
}

func (m *RootMenu) save() {
	if err := m.deck.Save(m.deckPath); err != nil {
		m.setStatus(fmt.Sprintf("Could not save %s: %v", m.deckPath, err), styleWrong)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %d cards to %s", m.deck.Len(), m.deckPath), styleCorrect)
}

func (m *RootMenu) setStatus(msg string, style tcell.Style) {
	m.status = msg
	m.statusStyle = style
	m.redraw()
}
