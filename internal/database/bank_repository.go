package database

import (
	"encoding/json"
	"fmt"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// BankRepository stores imported question templates that extend the
// in-code curated banks. Options are stored as a JSON array.
type BankRepository struct{}

// NewBankRepository creates a new repository instance
func NewBankRepository() *BankRepository {
	return &BankRepository{}
}

// LoadBanks returns all imported templates grouped by topic, in insertion
// order (the generator's determinism depends on a stable order).
func (r *BankRepository) LoadBanks() (map[string][]models.QuestionTemplate, error) {
	rows, err := DB.Queryx("SELECT topic, question, options, correct, explanation FROM question_templates ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load question templates: %v", err)
	}
	defer rows.Close()

	banks := make(map[string][]models.QuestionTemplate)
	for rows.Next() {
		var (
			topic, question, optionsJSON, explanation string
			correct                                   int
		)
		if err := rows.Scan(&topic, &question, &optionsJSON, &correct, &explanation); err != nil {
			return nil, fmt.Errorf("failed to scan question template: %v", err)
		}

		var options []string
		if err := json.Unmarshal([]byte(optionsJSON), &options); err != nil {
			return nil, fmt.Errorf("failed to decode options for %q: %v", question, err)
		}

		banks[topic] = append(banks[topic], models.QuestionTemplate{
			Question:    question,
			Options:     options,
			Correct:     correct,
			Explanation: explanation,
		})
	}
	return banks, rows.Err()
}

// SaveTemplate inserts one imported template; duplicates of the same
// (topic, question) pair are updated in place.
func (r *BankRepository) SaveTemplate(topic string, tmpl models.QuestionTemplate) error {
	optionsJSON, err := json.Marshal(tmpl.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %v", err)
	}

	query := `
		INSERT INTO question_templates (topic, question, options, correct, explanation)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (topic, question) DO UPDATE SET
			options = EXCLUDED.options,
			correct = EXCLUDED.correct,
			explanation = EXCLUDED.explanation
	`
	if _, err := DB.Exec(query, topic, tmpl.Question, string(optionsJSON), tmpl.Correct, tmpl.Explanation); err != nil {
		return fmt.Errorf("failed to save question template: %v", err)
	}
	return nil
}
