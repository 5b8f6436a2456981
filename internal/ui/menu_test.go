package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-jared/flashdeck/internal/deck"
	"github.com/i-jared/flashdeck/internal/input"
)

func newTestMenu(t *testing.T, con *fakeConsole, d *deck.Manager) *RootMenu {
	t.Helper()
	if d == nil {
		d = deck.NewManager(nil)
	}
	path := filepath.Join(t.TempDir(), "cards", "deck.dat")
	return NewApp(con, d, Options{DeckPath: path, Timing: instantTiming()}).menu
}

func addCards(t *testing.T, d *deck.Manager, cards ...[2]string) {
	t.Helper()
	for _, c := range cards {
		_, err := d.Add(c[0], c[1])
		require.NoError(t, err)
	}
}

func TestMenuSelectionStaysInRange(t *testing.T) {
	m := newTestMenu(t, newFakeConsole(t), nil)

	for i := 0; i < 10; i++ {
		m.move(-1)
		assert.Equal(t, OpCreateCard, m.Selected())
	}
	for i := 0; i < 20; i++ {
		m.move(1)
		assert.GreaterOrEqual(t, m.Selected(), Operation(0))
		assert.Less(t, m.Selected(), OperationCount)
	}
	assert.Equal(t, OpExit, m.Selected())
}

func TestMenuNavigationByKeys(t *testing.T) {
	con := newFakeConsole(t)
	con.idleFrames(1)
	for i := 0; i < 3; i++ {
		con.press(input.KeyUp)
	}
	for i := 0; i < 8; i++ {
		con.press(input.KeyDown)
	}
	con.press(input.KeyUp).press(input.KeyEscape)
	m := newTestMenu(t, con, nil)

	m.Run()

	assert.Equal(t, OpSaveCards, m.Selected())
}

func TestMenuRendersSelection(t *testing.T) {
	con := newFakeConsole(t)
	con.idleFrames(1).press(input.KeyDown).press(input.KeyEscape)
	m := newTestMenu(t, con, nil)

	m.Run()

	var selected []string
	for _, d := range con.drawn {
		if d.style == styleSelected {
			selected = append(selected, d.text)
		}
	}
	assert.Equal(t, []string{"2. Review Cards"}, selected)
	assert.Contains(t, con.lastShown(), "Flash Card App (0 cards)")
	assert.Contains(t, con.lastShown(), "6. Exit")
}

func TestMenuSwallowsLatchedConfirm(t *testing.T) {
	con := newFakeConsole(t)
	// Enter is already down when the menu opens. Create Card is selected,
	// so dispatching it would call ReadLine and fail the test.
	con.press(input.KeyEnter).press(input.KeyEscape)
	d := deck.NewManager(nil)
	m := newTestMenu(t, con, d)

	m.Run()

	assert.Zero(t, d.Len())
	assert.False(t, m.isRunning())
}

func TestMenuConfirmAfterGuard(t *testing.T) {
	con := newFakeConsole(t)
	con.press(input.KeyEnter).
		press(input.KeyEnter).
		idleFrames(2).
		press(input.KeyEscape)
	con.typeLines("front", "back")
	d := deck.NewManager(nil)
	m := newTestMenu(t, con, d)

	m.Run()

	assert.Equal(t, 1, d.Len())
}

func TestMenuExitOperation(t *testing.T) {
	con := newFakeConsole(t)
	con.idleFrames(1)
	for i := 0; i < int(OpExit); i++ {
		con.press(input.KeyDown)
	}
	con.press(input.KeyEnter)
	m := newTestMenu(t, con, nil)

	m.Run()

	assert.Equal(t, OpExit, m.Selected())
	assert.False(t, m.isRunning())
}

func selectOp(con *fakeConsole, op Operation) *fakeConsole {
	for i := 0; i < int(op); i++ {
		con.press(input.KeyDown)
	}
	return con
}

func TestMenuCreateSaveReload(t *testing.T) {
	con := newFakeConsole(t)
	con.idleFrames(1).
		press(input.KeyEnter).
		idleFrames(2)
	selectOp(con, OpSaveCards).
		press(input.KeyEnter).
		press(input.KeyEscape)
	con.typeLines("", "   ", "Capital of France", "Paris")

	d := deck.NewManager(nil)
	m := newTestMenu(t, con, d)
	m.Run()

	assert.True(t, con.sawText("Card added."))
	assert.True(t, con.sawText("Saved 1 cards to "+m.deckPath))

	data, err := os.ReadFile(m.deckPath)
	require.NoError(t, err)
	assert.Equal(t, "Capital of France|||Paris|||0\n", string(data))

	fresh := deck.NewManager(nil)
	_, err = fresh.Load(m.deckPath)
	require.NoError(t, err)
	cards := fresh.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Capital of France", cards[0].Front())
	assert.Equal(t, "Paris", cards[0].Back())
	assert.Zero(t, cards[0].Score())
}

func TestMenuLoadReportsSkippedLines(t *testing.T) {
	con := newFakeConsole(t)
	con.idleFrames(1)
	selectOp(con, OpLoadCards).
		press(input.KeyEnter).
		press(input.KeyEscape)

	d := deck.NewManager(nil)
	addCards(t, d, [2]string{"unsaved", "card"})
	m := newTestMenu(t, con, d)
	require.NoError(t, os.MkdirAll(filepath.Dir(m.deckPath), 0o755))
	require.NoError(t, os.WriteFile(m.deckPath, []byte("Q|||A|||notanumber\nGood|||Card|||2\n"), 0o644))

	m.Run()

	assert.True(t, con.sawText("Loaded 1 cards (1 malformed lines skipped)"))
	require.Equal(t, 1, d.Len())
	assert.Equal(t, "Good", d.Cards()[0].Front())
}

func TestMenuLoadMissingFileKeepsCards(t *testing.T) {
	con := newFakeConsole(t)
	con.idleFrames(1)
	selectOp(con, OpLoadCards).
		press(input.KeyEnter).
		press(input.KeyEscape)

	d := deck.NewManager(nil)
	addCards(t, d, [2]string{"unsaved", "card"})
	m := newTestMenu(t, con, d)

	m.Run()

	assert.True(t, con.sawText("Could not open "+m.deckPath))
	assert.Equal(t, 1, d.Len())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Check Progress", OpCheckProgress.String())
	assert.Equal(t, "Operation(6)", OperationCount.String())
}
