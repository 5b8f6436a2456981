package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/i-jared/flashdeck/internal/input"
)

// maxIdleFlushes bounds how long a screen may poll after the script has run
// out before the test is failed instead of hanging.
const maxIdleFlushes = 200

type drawCall struct {
	x, y  int
	text  string
	style tcell.Style
}

// fakeConsole replays a scripted sequence of key frames. Each Flush pops
// one frame; the keys in it count as held until the next Flush.
type fakeConsole struct {
	t *testing.T

	frames [][]input.Key
	keys   []input.Event
	// typeAhead is input buffered since the last Flush; Flush discards it.
	typeAhead []input.Event
	lines  []string

	held    map[input.Key]bool
	flushes int
	idle    int

	drawn []drawCall
	shown []string
}

func newFakeConsole(t *testing.T) *fakeConsole {
	return &fakeConsole{t: t, held: make(map[input.Key]bool)}
}

func (f *fakeConsole) idleFrames(n int) *fakeConsole {
	for i := 0; i < n; i++ {
		f.frames = append(f.frames, nil)
	}
	return f
}

// press adds a frame holding k followed by a release frame.
func (f *fakeConsole) press(k input.Key) *fakeConsole {
	f.frames = append(f.frames, []input.Key{k}, nil)
	return f
}

func (f *fakeConsole) typeKeys(runes ...rune) *fakeConsole {
	for _, r := range runes {
		f.keys = append(f.keys, input.Event{Key: input.KeyRune, Rune: r})
	}
	return f
}

func (f *fakeConsole) typeLines(lines ...string) *fakeConsole {
	f.lines = append(f.lines, lines...)
	return f
}

func (f *fakeConsole) Held(k input.Key) bool { return f.held[k] }

func (f *fakeConsole) Clear() { f.drawn = nil }

func (f *fakeConsole) Show() {
	var b strings.Builder
	for _, d := range f.drawn {
		b.WriteString(d.text)
		b.WriteString("\n")
	}
	f.shown = append(f.shown, b.String())
}

func (f *fakeConsole) Flush() bool {
	f.t.Helper()
	f.flushes++
	clear(f.held)
	f.typeAhead = nil
	if len(f.frames) == 0 {
		f.idle++
		if f.idle > maxIdleFlushes {
			f.t.Fatalf("screen still polling after the script ended (%d flushes)", f.flushes)
		}
		return false
	}
	for _, k := range f.frames[0] {
		f.held[k] = true
	}
	f.frames = f.frames[1:]
	return false
}

func (f *fakeConsole) Text(x, y int, text string, style tcell.Style) int {
	f.drawn = append(f.drawn, drawCall{x: x, y: y, text: text, style: style})
	return y + strings.Count(text, "\n") + 1
}

func (f *fakeConsole) ReadKey() input.Event {
	f.t.Helper()
	if len(f.typeAhead) > 0 {
		ev := f.typeAhead[0]
		f.typeAhead = f.typeAhead[1:]
		return ev
	}
	if len(f.keys) == 0 {
		f.t.Fatalf("ReadKey called with no scripted keys left")
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev
}

func (f *fakeConsole) ReadLine(x, y int, style tcell.Style) string {
	f.t.Helper()
	if len(f.lines) == 0 {
		f.t.Fatalf("ReadLine called with no scripted lines left")
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line
}

// sawText reports whether any shown frame contained s.
func (f *fakeConsole) sawText(s string) bool {
	for _, frame := range f.shown {
		if strings.Contains(frame, s) {
			return true
		}
	}
	return false
}

func (f *fakeConsole) lastShown() string {
	if len(f.shown) == 0 {
		return ""
	}
	return f.shown[len(f.shown)-1]
}

func instantTiming() Timing {
	return Timing{Tick: time.Millisecond, Pause: time.Millisecond, Sleep: func(time.Duration) {}}
}
