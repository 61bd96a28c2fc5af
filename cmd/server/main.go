package main

import (
	"log"
	"net/http"

	httpapi "eterra/internal/api/http"
	"eterra/internal/api/ws"
	"eterra/internal/arena"
	"eterra/internal/cards"
	"eterra/internal/config"
	"eterra/internal/game"
	"eterra/internal/gamer"
	"eterra/internal/ledger"
	"eterra/internal/store"

	// swagger packages
	_ "eterra/docs"

	"github.com/gin-gonic/gin"
)

// @title Eterra Duel API
// @version 1.0
// @description REST API for a deterministic card placement duel (Go + Gin)
// @contact.name Backend Team
// @contact.email backend@yourcompany.com
// @BasePath /
func main() {
	cfg := config.Load()

	mem := store.NewMemoryStore()
	led, err := ledger.Open(cfg.LedgerPath)
	if err != nil {
		log.Fatal(err)
	}
	defer led.Close()

	col := cards.NewCollection(cfg.OwnedLimit, cfg.MintSeed)
	profiles := gamer.NewRegistry()
	awards := gamer.NewAwards(profiles)
	hub := ws.NewHub()

	m := arena.NewManager(mem, cfg.BoardSize, col, hub, led, awards)

	weights := game.Weights{
		Capture:  cfg.WCapture,
		Exposure: cfg.WExposure,
		Rank:     cfg.WRank,
	}
	r := httpapi.NewRouter(m, col, profiles, led, hub, weights)

	// Optional: Add root redirect to swagger
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Use HTTP address from config (which reads from env or uses default)
	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
