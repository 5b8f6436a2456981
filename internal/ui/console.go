// Package ui implements the flashcard screens and their cooperative run-loop.
//
// Exactly one screen runs at a time. A child screen is entered from inside
// its parent's input handler, so the parent's loop is suspended until the
// child exits.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/i-jared/flashdeck/internal/input"
)

// Console is the terminal surface a screen draws on and reads keys from.
type Console interface {
	input.KeyState

	Clear()
	Show()
	// Flush discards buffered input and resamples held keys. It reports
	// whether the terminal was resized since the last call.
	Flush() bool
	// Text draws wrapped text and returns the next free row.
	Text(x, y int, text string, style tcell.Style) int
	// ReadKey blocks until a key is pressed.
	ReadKey() input.Event
	// ReadLine blocks until a line of text is entered.
	ReadLine(x, y int, style tcell.Style) string
}

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	stylePrompt   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleScore    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255)) // Cyan
	styleCorrect  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWrong    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSelected = tcell.StyleDefault.Bold(true).Underline(true)
)
