// Package input turns sampled key state into edge-triggered key presses.
package input

import "fmt"

// Key is a logical key the application reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyRune // printable character, see Event.Rune
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyRune:      "Rune",
}

func (k Key) String() string {
	if k >= KeyNone && k <= KeyRune {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Event is a single key read from the terminal.
type Event struct {
	Key  Key
	Rune rune
}

// KeyState reports whether a key is held at the time of the last sample.
type KeyState interface {
	Held(k Key) bool
}
