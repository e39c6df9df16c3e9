package database

import (
	"database/sql"
	"fmt"
	"time"
)

// ProgressRepository stores the per-user progress document as a whole:
// one row per user, full-document overwrite on every save.
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// Get returns the raw progress document for a user. found is false for
// first-time users; that is not an error.
func (r *ProgressRepository) Get(userID string) (doc []byte, found bool, err error) {
	var raw string
	err = DB.Get(&raw, "SELECT doc FROM user_progress_docs WHERE user_id = $1", userID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get progress document: %v", err)
	}
	return []byte(raw), true, nil
}

// Upsert writes the whole document for a user, replacing any previous one.
func (r *ProgressRepository) Upsert(userID string, schemaVersion int, doc []byte) error {
	query := `
		INSERT INTO user_progress_docs (user_id, schema_version, doc, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at
	`
	_, err := DB.Exec(query, userID, schemaVersion, string(doc), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert progress document: %v", err)
	}
	return nil
}

// AllUserIDs returns every user with a stored document. Used by the
// reminder job to scan for at-risk streaks.
func (r *ProgressRepository) AllUserIDs() ([]string, error) {
	var ids []string
	if err := DB.Select(&ids, "SELECT user_id FROM user_progress_docs ORDER BY user_id"); err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	return ids, nil
}
