package game

// Coord is a board coordinate reported in capture sets and notifications.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Captures computes which neighbors of (x, y) flip to placer when the given
// card lands there. Each direction compares the placed card's facing rank
// against the neighbor's opposing rank; strictly greater captures, ties
// defend. The board must still be in its pre-placement state: all four
// comparisons read that snapshot, so a flip in one direction can never feed
// into another direction's comparison. Callers apply the returned set
// afterwards in one go.
func Captures(b *Board, x, y int, card Card, placer string) []Coord {
	var out []Coord
	for _, n := range b.Neighbors(x, y) {
		cell := b.Cells[n.Y][n.X]
		if !cell.Occupied || cell.Controller == placer {
			continue
		}
		if card.Rank(n.Toward) > cell.Card.Rank(n.Facing) {
			out = append(out, Coord{X: n.X, Y: n.Y})
		}
	}
	return out
}
