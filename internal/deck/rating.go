package deck

import "fmt"

// Rating is the self-assessed difficulty of recalling a card.
type Rating int

const (
	Hard   Rating = iota + 1 // Recalled with significant difficulty.
	Medium                   // Recalled with some effort.
	Easy                     // Recalled effortlessly.
)

var ratingNames = [...]string{Hard: "Hard", Medium: "Medium", Easy: "Easy"}

// String returns the name of the rating. For invalid values it returns "Rating(n)".
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// IsValid reports whether r is Hard, Medium or Easy.
func (r Rating) IsValid() bool {
	return r >= Hard && r <= Easy
}

// Weight is the amount added to a card's score when it is reviewed with r.
func (r Rating) Weight() uint64 {
	if !r.IsValid() {
		return 0
	}
	return uint64(r)
}

// RatingForSymbol maps the keys offered by the review prompt to a rating.
func RatingForSymbol(c rune) (Rating, bool) {
	switch c {
	case '1':
		return Hard, true
	case '2':
		return Medium, true
	case '3':
		return Easy, true
	}
	return 0, false
}
