package arena

import (
	"log"
	"sync"

	"eterra/internal/game"
)

// Store abstracts where live games are kept.
type Store interface {
	Get(id uint64) (*game.Game, bool)
	Save(g *game.Game)
}

// Authorizer is the card-ownership collaborator: it answers whether a player
// currently holds a card and, if so, yields its rank vector.
type Authorizer interface {
	Authorize(player, cardID string) (game.Card, error)
}

// Notifier receives a structured notification after each successful
// mutation. The manager's obligation ends at producing the payload;
// observers (websocket hub, event ledger, progression) do the rest.
type Notifier interface {
	GameCreated(g *game.Game)
	TurnPlayed(g *game.Game, player string, x, y int, card game.Card, captured []game.Coord)
	GameFinished(g *game.Game)
}

// Snapshot is the read-only projection handed to callers.
type Snapshot struct {
	ID            uint64      `json:"id"`
	Creator       string      `json:"creator"`
	Opponent      string      `json:"opponent"`
	Turn          string      `json:"turn"`
	Status        game.Status `json:"status"`
	Moves         int         `json:"moves"`
	Board         game.Board  `json:"board"`
	CreatorCells  int         `json:"creator_cells"`
	OpponentCells int         `json:"opponent_cells"`
	Winner        *string     `json:"winner,omitempty"`
	Draw          bool        `json:"draw"`
}

// Manager owns the id->game mapping and is the only place game ids are
// allocated. Operations on different ids are independent; operations on the
// same id are serialized by a per-game lock.
type Manager struct {
	mu        sync.Mutex
	store     Store
	boardSize int
	auth      Authorizer
	notifiers []Notifier
	nextID    uint64
	locks     map[uint64]*sync.Mutex
}

func NewManager(s Store, boardSize int, auth Authorizer, notifiers ...Notifier) *Manager {
	return &Manager{
		store:     s,
		boardSize: boardSize,
		auth:      auth,
		notifiers: notifiers,
		nextID:    1,
		locks:     make(map[uint64]*sync.Mutex),
	}
}

// CreateGame allocates a fresh id and an empty duel between two distinct
// players.
func (m *Manager) CreateGame(creator, opponent string) (uint64, error) {
	m.mu.Lock()
	id := m.nextID
	g, err := game.NewGame(id, creator, opponent, m.boardSize)
	if err != nil {
		m.mu.Unlock()
		return 0, err
	}
	m.nextID++
	m.locks[id] = &sync.Mutex{}
	m.store.Save(g)
	m.mu.Unlock()

	log.Printf("game %d created: %s vs %s", id, creator, opponent)
	for _, n := range m.notifiers {
		n.GameCreated(g)
	}
	return id, nil
}

func (m *Manager) lockFor(id uint64) (*sync.Mutex, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	return l, ok
}

// PlayTurn applies one placement with an explicit rank vector. This is the
// raw engine contract; PlayTurnCard is the ownership-checked variant.
func (m *Manager) PlayTurn(id uint64, player string, x, y int, card game.Card) ([]game.Coord, error) {
	l, ok := m.lockFor(id)
	if !ok {
		return nil, game.ErrGameNotFound
	}
	l.Lock()
	defer l.Unlock()

	g, ok := m.store.Get(id)
	if !ok {
		return nil, game.ErrGameNotFound
	}
	captured, err := g.PlayTurn(player, x, y, card)
	if err != nil {
		return nil, err
	}
	m.store.Save(g)

	for _, n := range m.notifiers {
		n.TurnPlayed(g, player, x, y, card, captured)
	}
	if g.Status == game.StatusFinished {
		log.Printf("game %d finished after %d moves", id, g.Moves)
		for _, n := range m.notifiers {
			n.GameFinished(g)
		}
	}
	return captured, nil
}

// PlayTurnCard resolves a minted card through the Authorizer before playing
// it. Without an Authorizer configured the card reference cannot be
// resolved, so the move is rejected outright.
func (m *Manager) PlayTurnCard(id uint64, player string, x, y int, cardID string) ([]game.Coord, error) {
	if m.auth == nil {
		return nil, game.ErrInvalidMove
	}
	card, err := m.auth.Authorize(player, cardID)
	if err != nil {
		return nil, err
	}
	return m.PlayTurn(id, player, x, y, card)
}

// Snapshot projects the current state of a game.
func (m *Manager) Snapshot(id uint64) (Snapshot, error) {
	l, ok := m.lockFor(id)
	if !ok {
		return Snapshot{}, game.ErrGameNotFound
	}
	l.Lock()
	defer l.Unlock()

	g, ok := m.store.Get(id)
	if !ok {
		return Snapshot{}, game.ErrGameNotFound
	}
	return Snapshot{
		ID:            g.ID,
		Creator:       g.Creator,
		Opponent:      g.Opponent,
		Turn:          g.Turn,
		Status:        g.Status,
		Moves:         g.Moves,
		Board:         g.Board.Clone(),
		CreatorCells:  g.Board.ControlledBy(g.Creator),
		OpponentCells: g.Board.ControlledBy(g.Opponent),
		Winner:        g.Winner,
		Draw:          g.Draw,
	}, nil
}

// Hint runs the one-ply advisor over the player's hand.
func (m *Manager) Hint(id uint64, player string, hand []game.Card, w game.Weights) (game.Move, error) {
	l, ok := m.lockFor(id)
	if !ok {
		return game.Move{}, game.ErrGameNotFound
	}
	l.Lock()
	defer l.Unlock()

	g, ok := m.store.Get(id)
	if !ok {
		return game.Move{}, game.ErrGameNotFound
	}
	mv, ok := game.BestMove(g, player, hand, w)
	if !ok {
		return game.Move{}, game.ErrInvalidMove
	}
	return mv, nil
}
