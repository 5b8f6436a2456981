package deck

import (
	"fmt"
	"math"
	"strings"
)

// Card is a question/answer pair with an accumulated review score.
// Front and back never change once the card exists; the score only grows.
type Card struct {
	front string
	back  string
	score uint64
}

// NewCard returns a card with a zero score. Both sides must contain text.
func NewCard(front, back string) (*Card, error) {
	if strings.TrimSpace(front) == "" {
		return nil, fmt.Errorf("front: %w", ErrEmptyField)
	}
	if strings.TrimSpace(back) == "" {
		return nil, fmt.Errorf("back: %w", ErrEmptyField)
	}
	return &Card{front: front, back: back}, nil
}

func (c *Card) Front() string { return c.front }
func (c *Card) Back() string { return c.back }
func (c *Card) Score() uint64 { return c.score }

// Rate adds the weight of r to the score.
func (c *Card) Rate(r Rating) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	w := r.Weight()
	if c.score > math.MaxUint64-w {
		c.score = math.MaxUint64
		return nil
	}
	c.score += w
	return nil
}
