package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"eterra/internal/game"
)

// Event type names as written to the journal.
const (
	EventGameCreated  = "game_created"
	EventTurnPlayed   = "turn_played"
	EventGameFinished = "game_finished"
)

// EventRow is one persisted notification.
type EventRow struct {
	ID        int64           `json:"id"`
	GameID    uint64          `json:"game_id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// GameRow is the per-game summary kept alongside the event journal.
type GameRow struct {
	ID        uint64    `json:"id"`
	Creator   string    `json:"creator"`
	Opponent  string    `json:"opponent"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger journals every game notification into SQLite so external observers
// can replay what happened without holding the live state.
type Ledger struct {
	db *sql.DB
}

// Open opens (or creates) the database and runs migrations.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL mode for better concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS games (
			id         INTEGER PRIMARY KEY,
			creator    TEXT NOT NULL,
			opponent   TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'in_progress',
			winner     TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id    INTEGER NOT NULL,
			type       TEXT NOT NULL,
			payload    TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_game ON events(game_id);
	`)
	return err
}

func (l *Ledger) append(gameID uint64, eventType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ledger: marshal %s payload: %v", eventType, err)
		return
	}
	if _, err := l.db.Exec(
		"INSERT INTO events (game_id, type, payload) VALUES (?, ?, ?)",
		gameID, eventType, string(raw),
	); err != nil {
		log.Printf("ledger: append %s for game %d: %v", eventType, gameID, err)
	}
}

// GameCreated records the new game and its creation event.
func (l *Ledger) GameCreated(g *game.Game) {
	if _, err := l.db.Exec(
		"INSERT INTO games (id, creator, opponent) VALUES (?, ?, ?)",
		g.ID, g.Creator, g.Opponent,
	); err != nil {
		log.Printf("ledger: insert game %d: %v", g.ID, err)
	}
	l.append(g.ID, EventGameCreated, map[string]any{
		"creator":  g.Creator,
		"opponent": g.Opponent,
		"size":     g.Board.Size,
	})
}

// TurnPlayed records one accepted placement with its capture set.
func (l *Ledger) TurnPlayed(g *game.Game, player string, x, y int, card game.Card, captured []game.Coord) {
	if captured == nil {
		captured = []game.Coord{}
	}
	l.append(g.ID, EventTurnPlayed, map[string]any{
		"player":   player,
		"x":        x,
		"y":        y,
		"card":     card,
		"captured": captured,
		"move":     g.Moves,
	})
}

// GameFinished records the outcome and settles the summary row.
func (l *Ledger) GameFinished(g *game.Game) {
	winner := ""
	if g.Winner != nil {
		winner = *g.Winner
	}
	if _, err := l.db.Exec(
		"UPDATE games SET status = ?, winner = ? WHERE id = ?",
		string(g.Status), winner, g.ID,
	); err != nil {
		log.Printf("ledger: finish game %d: %v", g.ID, err)
	}
	l.append(g.ID, EventGameFinished, map[string]any{
		"winner": winner,
		"draw":   g.Draw,
		"moves":  g.Moves,
	})
}

// Events returns a game's journal in append order.
func (l *Ledger) Events(gameID uint64) ([]EventRow, error) {
	rows, err := l.db.Query(
		"SELECT id, game_id, type, payload, created_at FROM events WHERE game_id = ? ORDER BY id",
		gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []EventRow
	for rows.Next() {
		var r EventRow
		var payload string
		if err := rows.Scan(&r.ID, &r.GameID, &r.Type, &payload, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Payload = json.RawMessage(payload)
		result = append(result, r)
	}
	return result, rows.Err()
}

// Game returns the summary row for one game.
func (l *Ledger) Game(gameID uint64) (*GameRow, error) {
	row := l.db.QueryRow(
		"SELECT id, creator, opponent, status, winner, created_at FROM games WHERE id = ?",
		gameID,
	)
	var g GameRow
	if err := row.Scan(&g.ID, &g.Creator, &g.Opponent, &g.Status, &g.Winner, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}
