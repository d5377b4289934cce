package database

import (
	"database/sql"
	"fmt"
)

func RunMigrations(db *sql.DB) error {
	moviesTableSQL := `
	CREATE TABLE IF NOT EXISTS movies (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) UNIQUE NOT NULL,
		year INTEGER NOT NULL,
		description TEXT NOT NULL,
		rating DOUBLE PRECISION,
		ranking INTEGER,
		review TEXT,
		img_url TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(moviesTableSQL)
	if err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}

	return nil
}
