package db

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db   *sql.DB
	once sync.Once
)

const schema = `
CREATE TABLE IF NOT EXISTS ContactMessage (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_contact_message_created_at ON ContactMessage(created_at);
`

// Init opens the sqlite database at databaseURL and creates the schema.
func Init(databaseURL string) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite3", databaseURL)
		if err != nil {
			err = fmt.Errorf("open database: %w", err)
			return
		}

		if err = db.Ping(); err != nil {
			err = fmt.Errorf("ping database: %w", err)
			return
		}

		if _, err = db.Exec(schema); err != nil {
			err = fmt.Errorf("create schema: %w", err)
			return
		}

		log.Printf("Database initialized successfully: %s", databaseURL)
	})
	return err
}

// Ready reports whether a database has been initialised.
func Ready() bool {
	return db != nil
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
