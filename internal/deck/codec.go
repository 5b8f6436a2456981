package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator splits the fields of a deck record. It is not escaped, so card
// text containing it cannot be read back.
const Separator = "|||"

func encodeRecord(c *Card) string {
	return c.front + Separator + c.back + Separator + strconv.FormatUint(c.score, 10) + "\n"
}

func decodeRecord(line string) (*Card, error) {
	fields := strings.Split(line, Separator)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	c, err := NewCard(fields[0], fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	// ParseUint rejects signs, separators and whitespace.
	score, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: score %q is not a non-negative integer", ErrMalformedRecord, fields[2])
	}
	c.score = score
	return c, nil
}
