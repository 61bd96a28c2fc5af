package game

// Move pairs a target cell with the card to place there. Produced by the
// advisor and consumed by the CLI bot and the hint endpoint.
type Move struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Card Card `json:"card"`
}

// Weights tune the one-ply advisor.
type Weights struct {
	Capture  int // reward per captured neighbor
	Exposure int // penalty per empty adjacent cell left open
	Rank     int // penalty per rank point spent
}

func DefaultWeights() Weights {
	return Weights{Capture: 100, Exposure: 10, Rank: 1}
}

// LegalMoves enumerates every placement of every hand card on an empty cell.
func LegalMoves(g *Game, hand []Card) []Move {
	var moves []Move
	if g.Status == StatusFinished {
		return moves
	}
	for y := 0; y < g.Board.Size; y++ {
		for x := 0; x < g.Board.Size; x++ {
			if g.Board.Cells[y][x].Occupied {
				continue
			}
			for _, card := range hand {
				moves = append(moves, Move{X: x, Y: y, Card: card})
			}
		}
	}
	return moves
}

// ScoreMove rates a candidate placement for player: immediate captures are
// worth the most, placements that leave many open flanks or burn high ranks
// score lower.
func ScoreMove(g *Game, player string, m Move, w Weights) int {
	score := len(Captures(&g.Board, m.X, m.Y, m.Card, player)) * w.Capture

	for _, n := range g.Board.Neighbors(m.X, m.Y) {
		if !g.Board.Cells[n.Y][n.X].Occupied {
			score -= w.Exposure
		}
	}

	spent := int(m.Card.Top) + int(m.Card.Right) + int(m.Card.Bottom) + int(m.Card.Left)
	score -= spent * w.Rank
	return score
}

// BestMove picks the highest scoring legal move. Ties resolve to the first
// candidate in scan order, so the advisor is deterministic.
func BestMove(g *Game, player string, hand []Card, w Weights) (Move, bool) {
	cands := LegalMoves(g, hand)
	if len(cands) == 0 {
		return Move{}, false
	}
	best := cands[0]
	bestScore := ScoreMove(g, player, best, w)
	for _, c := range cands[1:] {
		if s := ScoreMove(g, player, c, w); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best, true
}
