package models

import "time"

// Word is a flashcard entry: an English word with its translations and a
// usage example. Rows come from the curated import (see internal/excel).
type Word struct {
	ID            int       `json:"id" db:"id"`
	English       string    `json:"english" db:"english"`
	Russian       string    `json:"russian" db:"russian"`
	Kazakh        string    `json:"kazakh" db:"kazakh"`
	Example       string    `json:"example" db:"example"`
	TopicID       int64     `json:"topic_id" db:"topic_id"`
	Level         string    `json:"level" db:"level"` // CEFR band, A1-B1
	Pronunciation string    `json:"pronunciation" db:"pronunciation"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Topic is a named subject area ("Present Simple", "Phrasal Verbs", ...).
// Lesson topics are fixed in code; database topics group flashcard words.
type Topic struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
