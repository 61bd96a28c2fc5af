package gamer

import (
	"log"

	"eterra/internal/game"
)

// Experience granted when a duel settles.
const (
	WinXP  = 100
	LossXP = 25
	DrawXP = 50
)

// Awards feeds finished games into the progression registry. It plugs into
// the arena as a notifier.
type Awards struct {
	Profiles *Registry
}

func NewAwards(r *Registry) *Awards {
	return &Awards{Profiles: r}
}

func (a *Awards) GameCreated(g *game.Game) {}

func (a *Awards) TurnPlayed(g *game.Game, player string, x, y int, card game.Card, captured []game.Coord) {
}

func (a *Awards) GameFinished(g *game.Game) {
	if g.Draw {
		a.Profiles.Grant(g.Creator, DrawXP)
		a.Profiles.Grant(g.Opponent, DrawXP)
		return
	}
	if g.Winner == nil {
		return
	}
	loser := g.Creator
	if *g.Winner == g.Creator {
		loser = g.Opponent
	}
	winner := a.Profiles.Grant(*g.Winner, WinXP)
	a.Profiles.Grant(loser, LossXP)
	log.Printf("game %d: %s now level %d", g.ID, *g.Winner, winner.Level)
}
