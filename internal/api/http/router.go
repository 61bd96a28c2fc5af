package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eterra/internal/api/ws"
	"eterra/internal/arena"
	"eterra/internal/cards"
	"eterra/internal/game"
	"eterra/internal/gamer"
	"eterra/internal/ledger"
)

func NewRouter(m *arena.Manager, col *cards.Collection, reg *gamer.Registry, l *ledger.Ledger, hub *ws.Hub, w game.Weights) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- GAME ENDPOINTS ---
	r.POST("/games", CreateGameHandler(m))
	r.POST("/games/move", MoveHandler(m))
	r.GET("/games/state", StateHandler(m))
	r.GET("/games/hint", HintHandler(m, col, w))
	r.GET("/games/events", EventsHandler(l))

	// --- CARD ENDPOINTS ---
	r.POST("/cards/mint", MintHandler(col))
	r.POST("/cards/transfer", TransferHandler(col))
	r.GET("/cards", ListCardsHandler(col))

	// --- PROFILE ENDPOINTS ---
	r.GET("/profiles", ProfileHandler(reg))
	r.POST("/profiles/tag", TagHandler(reg))
	r.POST("/profiles/avatar", AvatarHandler(reg))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
