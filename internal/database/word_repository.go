package database

import (
	"database/sql"
	"fmt"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// WordRepository handles database operations for flashcard words
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// GetAll returns all words
func (r *WordRepository) GetAll() ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, "SELECT * FROM words ORDER BY english")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %v", err)
	}
	return words, nil
}

// GetByTopic returns words for a topic, capped at limit (0 = no cap).
func (r *WordRepository) GetByTopic(topicID int64, limit int) ([]models.Word, error) {
	var words []models.Word
	query := "SELECT * FROM words WHERE topic_id = $1 ORDER BY english"
	args := []interface{}{topicID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	if err := DB.Select(&words, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get words by topic: %v", err)
	}
	return words, nil
}

// GetByLevel returns words for a CEFR band, capped at limit (0 = no cap).
func (r *WordRepository) GetByLevel(level string, limit int) ([]models.Word, error) {
	var words []models.Word
	query := "SELECT * FROM words WHERE level = $1 ORDER BY english"
	args := []interface{}{level}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	if err := DB.Select(&words, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get words by level: %v", err)
	}
	return words, nil
}

// Upsert inserts a word or refreshes an existing (english, topic) pair.
func (r *WordRepository) Upsert(word *models.Word) error {
	query := `
		INSERT INTO words (english, russian, kazakh, example, topic_id, level, pronunciation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (english, topic_id) DO UPDATE SET
			russian = EXCLUDED.russian,
			kazakh = EXCLUDED.kazakh,
			example = EXCLUDED.example,
			level = EXCLUDED.level,
			pronunciation = EXCLUDED.pronunciation,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := DB.Exec(query,
		word.English, word.Russian, word.Kazakh, word.Example,
		word.TopicID, word.Level, word.Pronunciation,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert word %q: %v", word.English, err)
	}
	return nil
}

// GetOrCreateTopic resolves a topic name to its id, creating the row on
// first sight.
func GetOrCreateTopic(name string) (int64, error) {
	var id int64
	err := DB.Get(&id, "SELECT id FROM topics WHERE name = $1", name)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up topic %q: %v", name, err)
	}

	if DB.DriverName() == "postgres" {
		err = DB.QueryRow("INSERT INTO topics (name) VALUES ($1) RETURNING id", name).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to create topic %q: %v", name, err)
		}
		return id, nil
	}

	res, err := DB.Exec("INSERT INTO topics (name) VALUES ($1)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to create topic %q: %v", name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read topic id: %v", err)
	}
	return id, nil
}

// GetAllTopics retrieves all topics from the database
func GetAllTopics() ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := DB.Select(&topics, "SELECT id, name, created_at FROM topics ORDER BY name"); err != nil {
		return nil, fmt.Errorf("failed to get topics: %v", err)
	}
	return topics, nil
}
