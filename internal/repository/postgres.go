package repository

import (
	"database/sql"
	"fmt"

	"socialmedia/internal/service"

	_ "github.com/lib/pq"
)

type PostgresRepo struct {
	db *sql.DB
}

var _ service.AccountRepository = (*PostgresRepo)(nil)
var _ service.MessageRepository = (*PostgresRepo)(nil)

func NewPostgresRepo(connStr string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	createTablesQuery := `
	CREATE TABLE IF NOT EXISTS account (
		account_id SERIAL PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);
	CREATE TABLE IF NOT EXISTS message (
		message_id SERIAL PRIMARY KEY,
		posted_by INTEGER NOT NULL REFERENCES account(account_id),
		message_text VARCHAR(255) NOT NULL,
		time_posted_epoch BIGINT NOT NULL
	);
	`
	if _, err = db.Exec(createTablesQuery); err != nil {
		return nil, fmt.Errorf("failed to ensure tables exist: %w", err)
	}
	return &PostgresRepo{db: db}, nil
}
