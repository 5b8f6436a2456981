package ui

import (
	"fmt"
	"log/slog"

	"github.com/i-jared/flashdeck/internal/deck"
	"github.com/i-jared/flashdeck/internal/input"
)

// ReviewCards walks the deck in order. For each card it shows the question,
// reveals the answer on Enter and adds the weight of the chosen rating to
// the card's score.
type ReviewCards struct {
	screen
	deck *deck.Manager
	log  *slog.Logger

	confirm *input.KeyPoller
}

func newReviewCards(con Console, timing Timing, d *deck.Manager, logger *slog.Logger) *ReviewCards {
	return &ReviewCards{screen: newScreen(con, timing), deck: d, log: logger}
}

func (r *ReviewCards) Run() {
	r.confirm = input.NewKeyPoller(r.con, input.KeyEnter)
	r.enter(r)
}

func (r *ReviewCards) render() {
	cards := r.deck.Cards()
	if len(cards) == 0 {
		r.renderNoCards()
		return
	}

	for i, card := range cards {
		r.reviewCard(card, i+1, len(cards))
	}
	r.exit()
}

// handleInput only matters for the empty deck notice; a review pass exits
// from render.
func (r *ReviewCards) handleInput() {
	r.confirm.Poll()
	if r.confirm.KeyDown() {
		r.exit()
	}
}

func (r *ReviewCards) reviewCard(card *deck.Card, n, total int) {
	r.con.Clear()
	y := r.drawQuestion(card, n, total)
	r.con.Text(0, y+1, "Press Enter to reveal the answer", stylePrompt)
	r.con.Show()
	r.waitForKey(r.confirm)

	r.con.Clear()
	y = r.drawQuestion(card, n, total)
	y = r.con.Text(0, y+1, "Answer:", styleTitle)
	y = r.con.Text(2, y, card.Back(), styleDefault)
	r.con.Show()
	r.pause()

	r.con.Text(0, y+1, "How hard was it? 1) Hard  2) Medium  3) Easy", stylePrompt)
	r.con.Show()
	rating := r.readRating()

	if err := card.Rate(rating); err != nil {
		r.log.Error("rating rejected", "rating", int(rating), "error", err)
	}
	r.log.Debug("card reviewed", "card", n, "rating", rating.String(), "score", card.Score())

	r.con.Text(0, y+3, fmt.Sprintf("Rated %s. Score is now %d.", rating, card.Score()), styleScore)
	r.con.Show()
	r.pause()
}

func (r *ReviewCards) drawQuestion(card *deck.Card, n, total int) int {
	y := r.con.Text(0, 0, fmt.Sprintf("Card %d of %d", n, total), styleTitle)
	y = r.con.Text(0, y+1, "Question:", styleTitle)
	return r.con.Text(2, y, card.Front(), styleDefault)
}

// readRating blocks until one of the three rating keys is pressed. Other
// keys are ignored, as is anything typed before the prompt was shown.
func (r *ReviewCards) readRating() deck.Rating {
	r.con.Flush()
	for {
		ev := r.con.ReadKey()
		if ev.Key != input.KeyRune {
			continue
		}
		if rating, ok := deck.RatingForSymbol(ev.Rune); ok {
			return rating
		}
	}
}
