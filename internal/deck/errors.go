package deck

import "errors"

// Sentinel errors for the deck package.
// Use errors.Is to check: errors.Is(err, deck.ErrOpen)
var (
	ErrOpen            = errors.New("deck: cannot open file")
	ErrMalformedRecord = errors.New("deck: malformed record")
	ErrEmptyField      = errors.New("deck: card text cannot be empty")
	ErrInvalidRating   = errors.New("deck: invalid rating")
)
