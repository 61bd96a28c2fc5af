package gamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eterra/internal/game"
)

func TestAwardsGrantWinnerAndLoser(t *testing.T) {
	reg := NewRegistry()
	a := NewAwards(reg)

	g, err := game.NewGame(1, "alice", "bob", 4)
	require.NoError(t, err)
	w := "alice"
	g.Status = game.StatusFinished
	g.Winner = &w

	a.GameFinished(g)

	alice, err := reg.Get("alice")
	require.NoError(t, err)
	bob, err := reg.Get("bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(WinXP), alice.Experience)
	assert.Equal(t, uint64(LossXP), bob.Experience)
}

func TestAwardsSplitOnDraw(t *testing.T) {
	reg := NewRegistry()
	a := NewAwards(reg)

	g, err := game.NewGame(1, "alice", "bob", 4)
	require.NoError(t, err)
	g.Status = game.StatusFinished
	g.Draw = true

	a.GameFinished(g)

	alice, err := reg.Get("alice")
	require.NoError(t, err)
	bob, err := reg.Get("bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(DrawXP), alice.Experience)
	assert.Equal(t, uint64(DrawXP), bob.Experience)
}
