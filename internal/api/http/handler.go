package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eterra/internal/arena"
	"eterra/internal/cards"
	"eterra/internal/game"
	"eterra/internal/gamer"
	"eterra/internal/ledger"
)

// statusFor maps domain errors onto HTTP statuses. Unknown errors are
// treated as bad requests.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, cards.ErrCardNotFound),
		errors.Is(err, gamer.ErrProfileNotFound),
		errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, cards.ErrNotCardOwner):
		return http.StatusForbidden
	case errors.Is(err, game.ErrCellOccupied):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func queryGameID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Query("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid game_id"})
		return 0, false
	}
	return id, true
}

// @Summary Create new game
// @Description Open a duel between two distinct players; the creator moves first
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.CreateGameRequest true "Players"
// @Success 200 {object} map[string]interface{}
// @Router /games [post]
func CreateGameHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.BindJSON(&req); err != nil || req.Creator == "" || req.Opponent == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "creator and opponent required"})
			return
		}
		id, err := m.CreateGame(req.Creator, req.Opponent)
		if err != nil {
			fail(c, err)
			return
		}
		snap, err := m.Snapshot(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game_id": id, "game": snap})
	}
}

// @Summary Play a card
// @Description Place an owned card on an empty cell; returns captured coordinates
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /games/move [post]
func MoveHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil || req.CardID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		captured, err := m.PlayTurnCard(req.GameID, req.Player, req.X, req.Y, req.CardID)
		if err != nil {
			fail(c, err)
			return
		}
		snap, err := m.Snapshot(req.GameID)
		if err != nil {
			fail(c, err)
			return
		}
		if captured == nil {
			captured = []game.Coord{}
		}
		c.JSON(http.StatusOK, gin.H{"captured": captured, "game": snap})
	}
}

// @Summary Get game state
// @Description Current board, turn, per-player cell counts and outcome
// @Tags Game
// @Produce json
// @Param game_id query int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Router /games/state [get]
func StateHandler(m *arena.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := queryGameID(c)
		if !ok {
			return
		}
		snap, err := m.Snapshot(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": snap})
	}
}

// @Summary Suggest a move
// @Description One-ply advisor over the player's owned cards
// @Tags Game
// @Produce json
// @Param game_id query int true "Game ID"
// @Param player query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /games/hint [get]
func HintHandler(m *arena.Manager, col *cards.Collection, w game.Weights) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := queryGameID(c)
		if !ok {
			return
		}
		player := c.Query("player")
		owned := col.ListOwned(player)
		hand := make([]game.Card, 0, len(owned))
		for _, card := range owned {
			hand = append(hand, card.Ranks())
		}
		mv, err := m.Hint(id, player, hand, w)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"x": mv.X, "y": mv.Y, "card": mv.Card})
	}
}

// @Summary List game events
// @Description Ordered event log of one game from the ledger
// @Tags Game
// @Produce json
// @Param game_id query int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Router /games/events [get]
func EventsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := queryGameID(c)
		if !ok {
			return
		}
		events, err := l.Events(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

// @Summary Mint a card
// @Description Mint a card with rolled rarity and ranks for an owner
// @Tags Cards
// @Accept json
// @Produce json
// @Param request body http.MintRequest true "Mint data"
// @Success 200 {object} map[string]interface{}
// @Router /cards/mint [post]
func MintHandler(col *cards.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MintRequest
		if err := c.BindJSON(&req); err != nil || req.Owner == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner required"})
			return
		}
		card, err := col.Mint(req.Owner, req.Name)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"card": card})
	}
}

// @Summary Transfer a card
// @Description Move a card between owners
// @Tags Cards
// @Accept json
// @Produce json
// @Param request body http.TransferRequest true "Transfer data"
// @Success 200 {object} map[string]interface{}
// @Router /cards/transfer [post]
func TransferHandler(col *cards.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransferRequest
		if err := c.BindJSON(&req); err != nil || req.CardID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := col.Transfer(req.From, req.To, req.CardID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary List owned cards
// @Description All cards currently held by a player, in mint order
// @Tags Cards
// @Produce json
// @Param owner query string true "Owner ID"
// @Success 200 {object} map[string]interface{}
// @Router /cards [get]
func ListCardsHandler(col *cards.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.Query("owner")
		if owner == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cards": col.ListOwned(owner)})
	}
}

// @Summary Get player profile
// @Description Tag, avatar, experience and level for one player
// @Tags Profiles
// @Produce json
// @Param player query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /profiles [get]
func ProfileHandler(reg *gamer.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		player := c.Query("player")
		p, err := reg.Get(player)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": p})
	}
}

// @Summary Set player tag
// @Description Set the display tag, 3 to 32 characters
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body http.TagRequest true "Tag data"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/tag [post]
func TagHandler(reg *gamer.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TagRequest
		if err := c.BindJSON(&req); err != nil || req.Player == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := reg.SetTag(req.Player, req.Tag); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Set player avatar
// @Description Store an IPFS-style avatar CID, visible ASCII up to 96 bytes
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body http.AvatarRequest true "Avatar data"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/avatar [post]
func AvatarHandler(reg *gamer.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AvatarRequest
		if err := c.BindJSON(&req); err != nil || req.Player == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := reg.SetAvatar(req.Player, req.CID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
