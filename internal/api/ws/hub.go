package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"eterra/internal/game"
)

// Hub fans game notifications out to websocket subscribers, keyed by game
// id. It implements the arena's notifier contract.
type Hub struct {
	mu    sync.RWMutex
	games map[uint64]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		games: make(map[uint64]map[*websocket.Conn]struct{}),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// HandleWS subscribes a connection to one game's notifications. Moves go
// through the HTTP API; inbound frames are only read to detect disconnects.
func (h *Hub) HandleWS(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Query("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid game_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[*websocket.Conn]struct{})
	}
	h.games[gameID][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.games[gameID], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends one action frame to every subscriber of a game. Dead
// connections are dropped on write failure, so this takes the write lock.
func (h *Hub) Broadcast(gameID uint64, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.games[gameID]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) GameCreated(g *game.Game) {
	h.Broadcast(g.ID, "game_created", gin.H{
		"game_id":  g.ID,
		"creator":  g.Creator,
		"opponent": g.Opponent,
	})
}

func (h *Hub) TurnPlayed(g *game.Game, player string, x, y int, card game.Card, captured []game.Coord) {
	if captured == nil {
		captured = []game.Coord{}
	}
	h.Broadcast(g.ID, "turn_played", gin.H{
		"game_id":   g.ID,
		"player":    player,
		"x":         x,
		"y":         y,
		"card":      card,
		"captured":  captured,
		"next_turn": g.Turn,
		"board":     g.Board,
	})
}

func (h *Hub) GameFinished(g *game.Game) {
	h.Broadcast(g.ID, "game_finished", gin.H{
		"game_id": g.ID,
		"winner":  g.Winner,
		"draw":    g.Draw,
		"moves":   g.Moves,
	})
}
