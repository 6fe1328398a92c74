package repository

import (
	"database/sql"

	"socialmedia/internal/models"
)

// InsertAccount stores a new account and returns it with the generated
// account_id.
func (r *PostgresRepo) InsertAccount(account models.Account) (*models.Account, error) {
	query := `INSERT INTO account (username, password)
	          VALUES ($1, $2)
	          RETURNING account_id;`
	if err := r.db.QueryRow(query, account.Username, account.Password).Scan(&account.ID); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepo) UsernameExists(username string) (bool, error) {
	query := `SELECT username FROM account WHERE username=$1;`
	var found string
	err := r.db.QueryRow(query, username).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByCredentials returns the account whose stored username and
// password both match exactly, or nil if there is none.
func (r *PostgresRepo) FindByCredentials(username string, password string) (*models.Account, error) {
	query := `SELECT account_id, username, password FROM account
	          WHERE username=$1 AND password=$2;`
	var account models.Account
	err := r.db.QueryRow(query, username, password).Scan(&account.ID, &account.Username, &account.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
