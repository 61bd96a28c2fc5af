package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eterra/internal/api/ws"
	"eterra/internal/arena"
	"eterra/internal/cards"
	"eterra/internal/game"
	"eterra/internal/gamer"
	"eterra/internal/ledger"
	"eterra/internal/store"
)

type testEnv struct {
	router *gin.Engine
	col    *cards.Collection
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	led, err := ledger.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { led.Close() })

	col := cards.NewCollection(0, 42)
	profiles := gamer.NewRegistry()
	hub := ws.NewHub()
	m := arena.NewManager(store.NewMemoryStore(), 4, col, hub, led, gamer.NewAwards(profiles))

	return &testEnv{
		router: NewRouter(m, col, profiles, led, hub, game.DefaultWeights()),
		col:    col,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateGameEndpoint(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "bob"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, float64(1), out["game_id"])

	w = e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoveEndpointRequiresOwnership(t *testing.T) {
	e := newTestEnv(t)
	e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "bob"})

	card, err := e.col.Mint("bob", "stolen")
	require.NoError(t, err)

	// alice plays bob's card
	w := e.do(t, http.MethodPost, "/games/move", MoveRequest{
		GameID: 1, Player: "alice", X: 0, Y: 0, CardID: card.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	card, err = e.col.Mint("alice", "own")
	require.NoError(t, err)
	w = e.do(t, http.MethodPost, "/games/move", MoveRequest{
		GameID: 1, Player: "alice", X: 0, Y: 0, CardID: card.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.NotNil(t, out["captured"])
}

func TestMoveEndpointStatusMapping(t *testing.T) {
	e := newTestEnv(t)
	e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "bob"})

	a, err := e.col.Mint("alice", "a")
	require.NoError(t, err)
	b, err := e.col.Mint("bob", "b")
	require.NoError(t, err)

	// out of turn
	w := e.do(t, http.MethodPost, "/games/move", MoveRequest{GameID: 1, Player: "bob", X: 0, Y: 0, CardID: b.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodPost, "/games/move", MoveRequest{GameID: 1, Player: "alice", X: 0, Y: 0, CardID: a.ID})
	require.Equal(t, http.StatusOK, w.Code)

	// occupied cell
	w = e.do(t, http.MethodPost, "/games/move", MoveRequest{GameID: 1, Player: "bob", X: 0, Y: 0, CardID: b.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	// unknown game
	w = e.do(t, http.MethodPost, "/games/move", MoveRequest{GameID: 99, Player: "bob", X: 1, Y: 0, CardID: b.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStateAndEventsEndpoints(t *testing.T) {
	e := newTestEnv(t)
	e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "bob"})

	w := e.do(t, http.MethodGet, "/games/state?game_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	g := out["game"].(map[string]interface{})
	assert.Equal(t, "alice", g["turn"])
	assert.Equal(t, "in_progress", g["status"])

	w = e.do(t, http.MethodGet, "/games/state?game_id=404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodGet, "/games/events?game_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out = decode(t, w)
	events := out["events"].([]interface{})
	assert.Len(t, events, 1)
}

func TestHintEndpoint(t *testing.T) {
	e := newTestEnv(t)
	e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "bob"})

	// no cards, no hint
	w := e.do(t, http.MethodGet, "/games/hint?game_id=1&player=alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, err := e.col.Mint("alice", "hinted")
	require.NoError(t, err)
	w = e.do(t, http.MethodGet, "/games/hint?game_id=1&player=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "y")
	assert.Contains(t, out, "card")
}

func TestCardEndpoints(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/cards/mint", MintRequest{Owner: "alice", Name: "first"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	card := out["card"].(map[string]interface{})
	id := card["id"].(string)
	require.NotEmpty(t, id)

	w = e.do(t, http.MethodPost, "/cards/transfer", TransferRequest{From: "alice", To: "bob", CardID: id})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/cards?owner=bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out = decode(t, w)
	assert.Len(t, out["cards"].([]interface{}), 1)

	w = e.do(t, http.MethodPost, "/cards/transfer", TransferRequest{From: "alice", To: "bob", CardID: "no-such-card"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/profiles?player=ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodPost, "/profiles/tag", TagRequest{Player: "alice", Tag: "ace"})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/profiles/tag", TagRequest{Player: "alice", Tag: "ab"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPost, "/profiles/avatar", AvatarRequest{Player: "alice", CID: "QmYwAPJzv5CZsnAzt8auVZRn1pfejgmc"})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/profiles?player=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	p := out["profile"].(map[string]interface{})
	assert.Equal(t, "ace", p["tag"])
}

func TestFullGameOverHTTP(t *testing.T) {
	e := newTestEnv(t)
	e.do(t, http.MethodPost, "/games", CreateGameRequest{Creator: "alice", Opponent: "bob"})

	players := []string{"alice", "bob"}
	move := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := players[move%2]
			card, err := e.col.Mint(p, fmt.Sprintf("card-%d", move))
			require.NoError(t, err)
			w := e.do(t, http.MethodPost, "/games/move", MoveRequest{
				GameID: 1, Player: p, X: x, Y: y, CardID: card.ID,
			})
			require.Equal(t, http.StatusOK, w.Code)
			move++
		}
	}

	w := e.do(t, http.MethodGet, "/games/state?game_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	g := out["game"].(map[string]interface{})
	assert.Equal(t, "finished", g["status"])
	assert.Equal(t, float64(16), g["moves"])

	// the whole history ended up in the ledger
	w = e.do(t, http.MethodGet, "/games/events?game_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out = decode(t, w)
	assert.Len(t, out["events"].([]interface{}), 18)
}
