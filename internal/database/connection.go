package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the local database connection. SQLite by default; set
// DB_TYPE=postgres and DATABASE_URL to run against Postgres instead.
var DB *sqlx.DB

// Connect establishes the local database connection and initializes the
// schema.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var (
		db  *sqlx.DB
		err error
	)
	if dbType == "postgres" {
		db, err = sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}

		dbPath := filepath.Join(dataDir, "smartspeak.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db
	return initializeSchema(DB)
}

// ConnectTest opens a throwaway SQLite database under dir and installs the
// schema. Test helper; callers close via Close.
func ConnectTest(dir string) error {
	db, err := sqlx.Connect("sqlite3", filepath.Join(dir, "smartspeak_test.db"))
	if err != nil {
		return fmt.Errorf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	DB = db
	return initializeSchema(DB)
}

// Close closes the local database connection.
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates the tables if they don't exist. The DDL below
// is accepted by both SQLite and Postgres.
func initializeSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_progress_docs (
			user_id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			doc TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			user_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, key)
		)`,
		`CREATE TABLE IF NOT EXISTS topics (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			english TEXT NOT NULL,
			russian TEXT NOT NULL,
			kazakh TEXT DEFAULT '',
			example TEXT DEFAULT '',
			topic_id INTEGER NOT NULL,
			level TEXT DEFAULT '',
			pronunciation TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (topic_id) REFERENCES topics(id),
			UNIQUE(english, topic_id)
		)`,
		`CREATE TABLE IF NOT EXISTS question_templates (
			id INTEGER PRIMARY KEY,
			topic TEXT NOT NULL,
			question TEXT NOT NULL,
			options TEXT NOT NULL,
			correct INTEGER NOT NULL,
			explanation TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(topic, question)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
