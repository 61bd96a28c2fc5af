package ledger

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eterra/internal/game"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func newFinishedGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(7, "alice", "bob", 4)
	require.NoError(t, err)
	return g
}

func TestGameCreatedWritesSummaryAndEvent(t *testing.T) {
	l := newTestLedger(t)
	g := newFinishedGame(t)

	l.GameCreated(g)

	row, err := l.Game(7)
	require.NoError(t, err)
	assert.Equal(t, "alice", row.Creator)
	assert.Equal(t, "bob", row.Opponent)
	assert.Equal(t, "in_progress", row.Status)

	events, err := l.Events(7)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventGameCreated, events[0].Type)
}

func TestTurnPlayedPayload(t *testing.T) {
	l := newTestLedger(t)
	g := newFinishedGame(t)
	l.GameCreated(g)

	card, err := game.NewCard(1, 5, 1, 5)
	require.NoError(t, err)
	captured, err := g.PlayTurn("alice", 1, 1, card)
	require.NoError(t, err)
	l.TurnPlayed(g, "alice", 1, 1, card, captured)

	events, err := l.Events(7)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventTurnPlayed, events[1].Type)

	var payload struct {
		Player   string       `json:"player"`
		X        int          `json:"x"`
		Y        int          `json:"y"`
		Captured []game.Coord `json:"captured"`
		Move     int          `json:"move"`
	}
	require.NoError(t, json.Unmarshal(events[1].Payload, &payload))
	assert.Equal(t, "alice", payload.Player)
	assert.NotNil(t, payload.Captured)
	assert.Equal(t, 1, payload.Move)
}

func TestGameFinishedSettlesSummary(t *testing.T) {
	l := newTestLedger(t)
	g := newFinishedGame(t)
	l.GameCreated(g)

	w := "alice"
	g.Status = game.StatusFinished
	g.Winner = &w
	g.Moves = 16
	l.GameFinished(g)

	row, err := l.Game(7)
	require.NoError(t, err)
	assert.Equal(t, "finished", row.Status)
	assert.Equal(t, "alice", row.Winner)

	events, err := l.Events(7)
	require.NoError(t, err)
	assert.Equal(t, EventGameFinished, events[len(events)-1].Type)
}

func TestGameNotFound(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Game(404)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	events, err := l.Events(404)
	require.NoError(t, err)
	assert.Empty(t, events)
}
