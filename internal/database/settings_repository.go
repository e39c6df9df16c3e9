package database

import (
	"database/sql"
	"fmt"
	"time"
)

// SettingsRepository is the per-user key-value store behind the simple
// client settings (voice rate, theme, selected grade, translation
// visibility) and the generation seed.
type SettingsRepository struct{}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// SeedKey is the settings key holding the per-user generation seed.
const SeedKey = "user-seed"

// TelegramChatKey is the settings key holding a user's linked chat id
// for streak reminders.
const TelegramChatKey = "telegram-chat-id"

// Get returns the value for a key; found is false when the key is absent.
func (r *SettingsRepository) Get(userID, key string) (value string, found bool, err error) {
	err = DB.Get(&value, "SELECT value FROM settings WHERE user_id = $1 AND key = $2", userID, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %q: %v", key, err)
	}
	return value, true, nil
}

// Set writes a key for a user.
func (r *SettingsRepository) Set(userID, key, value string) error {
	query := `
		INSERT INTO settings (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := DB.Exec(query, userID, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set setting %q: %v", key, err)
	}
	return nil
}

// UsersWithSetting returns (userID, value) pairs for every user that has
// the given key set. The reminder job uses this to find linked chats.
func (r *SettingsRepository) UsersWithSetting(key string) (map[string]string, error) {
	rows, err := DB.Queryx("SELECT user_id, value FROM settings WHERE key = $1", key)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings %q: %v", key, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var userID, value string
		if err := rows.Scan(&userID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %v", err)
		}
		out[userID] = value
	}
	return out, rows.Err()
}
