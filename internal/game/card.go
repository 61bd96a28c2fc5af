package game

// MaxRank is the highest rank a card side may carry. Ranks are 0..MaxRank.
const MaxRank = 9

// Side identifies one edge of a placed card.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Card is an immutable rank vector. The engine only ever reads ranks; which
// player controls a placed card is tracked by the board cell, not the card.
type Card struct {
	Top    uint8 `json:"top"`
	Right  uint8 `json:"right"`
	Bottom uint8 `json:"bottom"`
	Left   uint8 `json:"left"`
}

// NewCard validates each rank against MaxRank.
func NewCard(top, right, bottom, left uint8) (Card, error) {
	for _, r := range [4]uint8{top, right, bottom, left} {
		if r > MaxRank {
			return Card{}, ErrInvalidCardAttributes
		}
	}
	return Card{Top: top, Right: right, Bottom: bottom, Left: left}, nil
}

// Rank returns the rank on the given side.
func (c Card) Rank(s Side) uint8 {
	switch s {
	case Top:
		return c.Top
	case Right:
		return c.Right
	case Bottom:
		return c.Bottom
	default:
		return c.Left
	}
}
