package ui

import (
	"fmt"

	"github.com/i-jared/flashdeck/internal/deck"
	"github.com/i-jared/flashdeck/internal/input"
)

// CheckProgress lists every card with its accumulated score.
type CheckProgress struct {
	screen
	deck *deck.Manager

	confirm *input.KeyPoller
}

func newCheckProgress(con Console, timing Timing, d *deck.Manager) *CheckProgress {
	return &CheckProgress{screen: newScreen(con, timing), deck: d}
}

func (p *CheckProgress) Run() {
	p.confirm = input.NewKeyPoller(p.con, input.KeyEnter)
	p.enter(p)
}

func (p *CheckProgress) render() {
	cards := p.deck.Cards()
	if len(cards) == 0 {
		p.renderNoCards()
		return
	}

	y := p.con.Text(0, 0, "Progress", styleTitle)
	y++
	for i, card := range cards {
		y = p.con.Text(0, y, fmt.Sprintf("%d. %s (score %d)", i+1, card.Front(), card.Score()), styleDefault)
	}
	y = p.con.Text(0, y+1, fmt.Sprintf("Total score: %d", p.deck.TotalScore()), styleScore)
	p.con.Text(0, y+1, "Press Enter to return", stylePrompt)
}

func (p *CheckProgress) handleInput() {
	p.confirm.Poll()
	if p.confirm.KeyDown() {
		p.exit()
	}
}
