package ui

import (
	"time"

	"github.com/i-jared/flashdeck/internal/input"
)

// Timing controls the pace of the run-loop.
type Timing struct {
	// Tick is the sleep between loop cycles.
	Tick time.Duration
	// Pause is the short delay after confirmations and reveals.
	Pause time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

func (t Timing) sleep(d time.Duration) {
	if t.Sleep != nil {
		t.Sleep(d)
		return
	}
	time.Sleep(d)
}

// content is what a concrete screen supplies to the run-loop.
type content interface {
	render()
	handleInput()
}

// screen is the run-loop shared by every screen. Concrete screens embed it
// and pass themselves to enter.
type screen struct {
	con    Console
	timing Timing

	running     bool
	needsRedraw bool
}

func newScreen(con Console, timing Timing) screen {
	return screen{con: con, timing: timing}
}

// enter runs c until it calls exit.
func (s *screen) enter(c content) {
	s.running = true
	s.needsRedraw = true

	for s.running {
		if s.con.Flush() {
			s.needsRedraw = true
		}

		if s.needsRedraw {
			s.con.Clear()
			s.needsRedraw = false
			c.render()
			s.con.Show()
		}
		if !s.running {
			break
		}

		c.handleInput()

		s.timing.sleep(s.timing.Tick)
	}
}

// exit stops the loop and drops any input typed so far, so the key that
// caused the exit does not reach the next screen.
func (s *screen) exit() {
	s.running = false
	s.con.Flush()
}

func (s *screen) redraw() {
	s.needsRedraw = true
}

func (s *screen) isRunning() bool {
	return s.running
}

// handleInput is the default for screens that do all their work in render.
func (s *screen) handleInput() {}

func (s *screen) pause() {
	s.timing.sleep(s.timing.Pause)
}

// waitForKey blocks until p reports a fresh press.
func (s *screen) waitForKey(p *input.KeyPoller) {
	for {
		s.con.Flush()
		p.Poll()
		if p.KeyDown() {
			return
		}
		s.timing.sleep(s.timing.Tick)
	}
}

// renderNoCards draws the notice shown by screens that need a non-empty deck.
func (s *screen) renderNoCards() {
	y := s.con.Text(0, 0, "No cards yet.", styleTitle)
	y = s.con.Text(0, y, "Create a card or load a deck from the main menu.", styleDefault)
	s.con.Text(0, y+1, "Press Enter to return", stylePrompt)
}
