package ui

import (
	"strings"

	"github.com/i-jared/flashdeck/internal/deck"
)

// CreateCard prompts for both sides of a new card and adds it to the deck.
// Everything happens synchronously inside render.
type CreateCard struct {
	screen
	deck *deck.Manager
}

func newCreateCard(con Console, timing Timing, d *deck.Manager) *CreateCard {
	return &CreateCard{screen: newScreen(con, timing), deck: d}
}

func (c *CreateCard) Run() {
	c.enter(c)
}

func (c *CreateCard) render() {
	y := c.con.Text(0, 0, "Create Card", styleTitle)

	front := c.prompt(y+1, "Front:")
	back := c.prompt(y+4, "Back:")

	msg, style := "Card added.", styleCorrect
	if _, err := c.deck.Add(front, back); err != nil {
		msg, style = "Card not added: "+err.Error(), styleWrong
	}
	c.con.Text(0, y+7, msg, style)
	c.con.Show()
	c.pause()
	c.exit()
}

// prompt asks until something other than whitespace is entered.
func (c *CreateCard) prompt(y int, label string) string {
	c.con.Text(0, y, label, stylePrompt)
	for {
		text := strings.TrimSpace(c.con.ReadLine(2, y+1, styleDefault))
		if text != "" {
			return text
		}
	}
}
