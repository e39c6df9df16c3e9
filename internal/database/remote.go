package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// RemoteStore mirrors progress documents to a shared Postgres instance so
// a user can pick up on another machine. Best effort: the sync layer
// treats every failure here as retryable and local state stays
// authoritative. Merge semantics are full-document overwrite, last writer
// wins.
type RemoteStore struct {
	db *sqlx.DB
}

// ConnectRemote opens the remote progress store. dsn is a Postgres
// connection string (REMOTE_DATABASE_URL).
func ConnectRemote(dsn string) (*RemoteStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote store: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_progress_docs (
			user_id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			doc TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize remote schema: %v", err)
	}
	return &RemoteStore{db: db}, nil
}

// FetchProgress returns the remote document for a user, if any.
func (s *RemoteStore) FetchProgress(userID string) (doc []byte, found bool, err error) {
	var raw string
	err = s.db.Get(&raw, "SELECT doc FROM user_progress_docs WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch remote progress: %v", err)
	}
	return []byte(raw), true, nil
}

// UpsertProgress overwrites the remote document for a user.
func (s *RemoteStore) UpsertProgress(userID string, schemaVersion int, doc []byte) error {
	query := `
		INSERT INTO user_progress_docs (user_id, schema_version, doc, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.Exec(query, userID, schemaVersion, string(doc), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert remote progress: %v", err)
	}
	return nil
}

// Close closes the remote connection.
func (s *RemoteStore) Close() error {
	return s.db.Close()
}
