package cards

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"eterra/internal/game"
)

// DefaultOwnedLimit bounds how many cards one player may hold.
const DefaultOwnedLimit = 600

var (
	ErrCardNotFound   = errors.New("card not found")
	ErrNotCardOwner   = errors.New("card not owned by player")
	ErrCollectionFull = errors.New("owned card limit reached")
)

// Rarity classification; influences minted rank floors.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Card is one minted, transferable card. Directional ranks are fixed at mint
// time; North/East/South/West map onto the engine's Top/Right/Bottom/Left.
type Card struct {
	ID       string    `json:"id"`
	Owner    string    `json:"owner"`
	Name     string    `json:"name"`
	North    uint8     `json:"north"`
	East     uint8     `json:"east"`
	South    uint8     `json:"south"`
	West     uint8     `json:"west"`
	Rarity   Rarity    `json:"rarity"`
	MintedAt time.Time `json:"minted_at"`
}

// Ranks converts a collection card into the engine's immutable rank vector.
func (c *Card) Ranks() game.Card {
	return game.Card{Top: c.North, Right: c.East, Bottom: c.South, Left: c.West}
}

// Collection tracks every minted card and a bounded per-owner index.
type Collection struct {
	mu    sync.RWMutex
	cards map[string]*Card
	owned map[string][]string
	limit int
	rng   *rand.Rand
}

func NewCollection(limit int, seed int64) *Collection {
	if limit <= 0 {
		limit = DefaultOwnedLimit
	}
	return &Collection{
		cards: make(map[string]*Card),
		owned: make(map[string][]string),
		limit: limit,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Mint creates a card with pseudo-random ranks for owner. Fails with
// ErrCollectionFull when the owner is at the limit.
func (c *Collection) Mint(owner, name string) (*Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.owned[owner]) >= c.limit {
		return nil, ErrCollectionFull
	}

	rarity, floor := c.rollRarity()
	card := &Card{
		ID:       uuid.NewString(),
		Owner:    owner,
		Name:     name,
		North:    c.rollRank(floor),
		East:     c.rollRank(floor),
		South:    c.rollRank(floor),
		West:     c.rollRank(floor),
		Rarity:   rarity,
		MintedAt: time.Now(),
	}
	c.cards[card.ID] = card
	c.owned[owner] = append(c.owned[owner], card.ID)
	return card, nil
}

// rollRarity picks a rarity tier and the minimum rank it guarantees.
func (c *Collection) rollRarity() (Rarity, uint8) {
	switch roll := c.rng.Intn(100); {
	case roll < 60:
		return RarityCommon, 0
	case roll < 85:
		return RarityUncommon, 1
	case roll < 95:
		return RarityRare, 2
	case roll < 99:
		return RarityEpic, 4
	default:
		return RarityLegendary, 6
	}
}

func (c *Collection) rollRank(floor uint8) uint8 {
	return floor + uint8(c.rng.Intn(int(game.MaxRank-floor)+1))
}

// Transfer moves a card between owners.
func (c *Collection) Transfer(from, to, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	card, ok := c.cards[id]
	if !ok {
		return ErrCardNotFound
	}
	if card.Owner != from {
		return ErrNotCardOwner
	}
	// self-transfer changes nothing, so the limit does not apply
	if from == to {
		return nil
	}
	if len(c.owned[to]) >= c.limit {
		return ErrCollectionFull
	}

	card.Owner = to
	ids := c.owned[from]
	for i, v := range ids {
		if v == id {
			c.owned[from] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	c.owned[to] = append(c.owned[to], id)
	return nil
}

func (c *Collection) Get(id string) (*Card, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	card, ok := c.cards[id]
	if !ok {
		return nil, false
	}
	cp := *card
	return &cp, true
}

// ListOwned returns the owner's cards in mint order.
func (c *Collection) ListOwned(owner string) []*Card {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Card, 0, len(c.owned[owner]))
	for _, id := range c.owned[owner] {
		cp := *c.cards[id]
		out = append(out, &cp)
	}
	return out
}

// Authorize answers the engine's capability check: does player hold this
// card right now. Returns the rank vector to play with.
func (c *Collection) Authorize(player, cardID string) (game.Card, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	card, ok := c.cards[cardID]
	if !ok {
		return game.Card{}, ErrCardNotFound
	}
	if card.Owner != player {
		return game.Card{}, ErrNotCardOwner
	}
	return card.Ranks(), nil
}
