package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	// SQLite driver (required for database/sql registration).
	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed ConversationStore.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at the given path, creating the
// file and schema if they don't exist.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exchanges (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		conversation_id TEXT NOT NULL,
		user_message    TEXT NOT NULL,
		ai_response     TEXT NOT NULL,
		model           TEXT,
		created_at      INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);

	CREATE INDEX IF NOT EXISTS idx_exchanges_conversation
		ON exchanges(user_id, conversation_id);
	CREATE INDEX IF NOT EXISTS idx_exchanges_created
		ON exchanges(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveExchange appends one turn pair. Retrieval order rides on the
// rowid, which SQLite assigns atomically per insert, so concurrent
// saves and same-second timestamps keep a stable order.
func (s *Store) SaveExchange(ctx context.Context, ex Exchange) error {
	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now()
	}
	if ex.ConversationID == "" {
		ex.ConversationID = "default"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exchanges (id, user_id, conversation_id, user_message, ai_response, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ex.ID, ex.UserID, ex.ConversationID, ex.UserMessage, ex.AIResponse, ex.Model, ex.CreatedAt.Unix())
	return err
}

// History returns all exchanges for a user's conversation in
// insertion order.
func (s *Store) History(ctx context.Context, userID, conversationID string) ([]Exchange, error) {
	if conversationID == "" {
		conversationID = "default"
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, conversation_id, user_message, ai_response, model, created_at
		FROM exchanges
		WHERE user_id = ? AND conversation_id = ?
		ORDER BY rowid
	`, userID, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Exchange
	for rows.Next() {
		var ex Exchange
		var createdAt int64
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.ConversationID,
			&ex.UserMessage, &ex.AIResponse, &ex.Model, &createdAt); err != nil {
			return nil, err
		}
		ex.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, ex)
	}
	return out, rows.Err()
}
