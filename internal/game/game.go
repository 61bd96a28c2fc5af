package game

// Status of a single game. Finished is terminal.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Game is the per-duel state machine. The two players are structurally
// symmetric: the turn owner is stored as one of the two player ids and
// compared by equality, never by positional index.
type Game struct {
	ID       uint64  `json:"id"`
	Creator  string  `json:"creator"`
	Opponent string  `json:"opponent"`
	Board    Board   `json:"board"`
	Turn     string  `json:"turn"`
	Moves    int     `json:"moves"`
	Status   Status  `json:"status"`
	Winner   *string `json:"winner,omitempty"`
	Draw     bool    `json:"draw"`
}

// NewGame starts a duel with an empty board and the creator on turn. The
// creator-first rule is the fixed deterministic default.
func NewGame(id uint64, creator, opponent string, boardSize int) (*Game, error) {
	if creator == "" || opponent == "" || creator == opponent {
		return nil, ErrInvalidMove
	}
	return &Game{
		ID:       id,
		Creator:  creator,
		Opponent: opponent,
		Board:    NewBoard(boardSize),
		Turn:     creator,
		Status:   StatusInProgress,
	}, nil
}

// PlayTurn validates and applies one placement. Validation strictly precedes
// mutation; once the card is placed nothing below can fail, so a game is
// never left half-moved. Returns the set of captured coordinates.
func (g *Game) PlayTurn(player string, x, y int, card Card) ([]Coord, error) {
	if g.Status == StatusFinished {
		return nil, ErrInvalidMove
	}
	if player != g.Turn {
		return nil, ErrNotYourTurn
	}
	if !g.Board.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	if g.Board.Cells[y][x].Occupied {
		return nil, ErrCellOccupied
	}

	// Capture set is computed against the pre-placement board, then the
	// placement and all flips land together.
	captured := Captures(&g.Board, x, y, card, player)
	g.Board.Cells[y][x] = Cell{Card: card, Controller: player, Occupied: true}
	for _, c := range captured {
		g.Board.Cells[c.Y][c.X].Controller = player
	}

	g.Moves++
	g.Turn = g.other(player)
	if g.Board.Full() {
		g.finish()
	}
	return captured, nil
}

func (g *Game) other(player string) string {
	if player == g.Creator {
		return g.Opponent
	}
	return g.Creator
}

// finish settles the duel by raw controlled-cell counts.
func (g *Game) finish() {
	g.Status = StatusFinished
	creatorCells := g.Board.ControlledBy(g.Creator)
	opponentCells := g.Board.ControlledBy(g.Opponent)
	switch {
	case creatorCells > opponentCells:
		w := g.Creator
		g.Winner = &w
	case opponentCells > creatorCells:
		w := g.Opponent
		g.Winner = &w
	default:
		g.Draw = true
	}
}
