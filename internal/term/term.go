// Package term adapts a tcell screen to the console the screens draw on.
//
// Key state is derived from the event queue: every Flush drains the queue
// and a key counts as held until the next Flush if at least one event for it
// was drained. Terminal auto-repeat therefore reads as a continuous hold.
package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/i-jared/flashdeck/internal/input"
)

// Terminal is a tcell-backed console.
type Terminal struct {
	screen tcell.Screen
	held   map[input.Key]bool
}

// New opens the controlling terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises screen and wraps it.
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &Terminal{screen: screen, held: make(map[input.Key]bool)}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) Clear() {
	t.screen.HideCursor()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

// Held reports whether key had an event in the last Flush.
func (t *Terminal) Held(key input.Key) bool {
	return t.held[key]
}

// Flush discards every buffered event, recording which keys were seen.
// It reports whether the terminal was resized.
func (t *Terminal) Flush() bool {
	clear(t.held)
	resized := false
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return resized
		case *tcell.EventKey:
			t.held[translate(ev).Key] = true
		case *tcell.EventResize:
			t.screen.Sync()
			resized = true
		}
	}
	return resized
}

// ReadKey blocks until a key is pressed.
func (t *Terminal) ReadKey() input.Event {
	t.screen.Show()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return input.Event{Key: input.KeyEscape}
		case *tcell.EventKey:
			if e := translate(ev); e.Key != input.KeyNone {
				return e
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// ReadLine edits a single line of text at (x, y) until Enter is pressed.
// Escape clears what has been typed so far.
func (t *Terminal) ReadLine(x, y int, style tcell.Style) string {
	var line []rune
	for {
		t.clearRow(x, y)
		width := t.drawRow(x, y, string(line), style)
		t.screen.ShowCursor(x+width, y)

		ev := t.ReadKey()
		switch ev.Key {
		case input.KeyEnter:
			t.screen.HideCursor()
			return string(line)
		case input.KeyEscape:
			line = line[:0]
		case input.KeyBackspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		case input.KeyRune:
			line = append(line, ev.Rune)
		}
	}
}

// Text draws text at (x, y), wrapping on word boundaries at the screen
// edge. It returns the row after the last one written.
func (t *Terminal) Text(x, y int, text string, style tcell.Style) int {
	width, _ := t.screen.Size()
	maxWidth := width - x

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			y++
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) < maxWidth {
				current += " " + word
				continue
			}
			t.drawRow(x, y, current, style)
			y++
			current = word
		}
		t.drawRow(x, y, current, style)
		y++
	}
	return y
}

func (t *Terminal) drawRow(x, y int, s string, style tcell.Style) int {
	col := 0
	for _, r := range s {
		t.screen.SetContent(x+col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}

func (t *Terminal) clearRow(x, y int) {
	width, _ := t.screen.Size()
	for i := x; i < width; i++ {
		t.screen.SetContent(i, y, ' ', nil, tcell.StyleDefault)
	}
}

func translate(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Event{Key: input.KeyUp}
	case tcell.KeyDown:
		return input.Event{Key: input.KeyDown}
	case tcell.KeyEnter, tcell.KeyLF:
		return input.Event{Key: input.KeyEnter}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Event{Key: input.KeyEscape}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Event{Key: input.KeyBackspace}
	case tcell.KeyRune:
		return input.Event{Key: input.KeyRune, Rune: ev.Rune()}
	}
	return input.Event{Key: input.KeyNone}
}
