package repository

import (
	"database/sql"

	"socialmedia/internal/models"
)

// InsertMessage stores a new message and returns it with the generated
// message_id. The text is stored exactly as given.
func (r *PostgresRepo) InsertMessage(message models.Message) (*models.Message, error) {
	query := `INSERT INTO message (posted_by, message_text, time_posted_epoch)
	          VALUES ($1, $2, $3)
	          RETURNING message_id;`
	err := r.db.QueryRow(query, message.PostedBy, message.MessageText, message.TimePostedEpoch).Scan(&message.ID)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetMessageByID returns the message with the given id, or nil if it
// does not exist.
func (r *PostgresRepo) GetMessageByID(id int) (*models.Message, error) {
	query := `SELECT message_id, posted_by, message_text, time_posted_epoch
	          FROM message
	          WHERE message_id=$1;`
	var msg models.Message
	err := r.db.QueryRow(query, id).Scan(&msg.ID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *PostgresRepo) GetAllMessages() ([]models.Message, error) {
	query := `SELECT message_id, posted_by, message_text, time_posted_epoch
	          FROM message;`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch); err != nil {
			return nil, err
		}
		results = append(results, msg)
	}
	return results, rows.Err()
}

// GetMessagesByAccountID returns every message posted by the account,
// joined against the account table so only real accounts match.
func (r *PostgresRepo) GetMessagesByAccountID(accountID int) ([]models.Message, error) {
	query := `SELECT message_id, posted_by, message_text, time_posted_epoch
	          FROM message
	          JOIN account ON message.posted_by = account.account_id
	          WHERE account.account_id=$1;`
	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch); err != nil {
			return nil, err
		}
		results = append(results, msg)
	}
	return results, rows.Err()
}

// DeleteMessageByID removes the message and reports whether a row was
// actually deleted.
func (r *PostgresRepo) DeleteMessageByID(id int) (bool, error) {
	query := `DELETE FROM message WHERE message_id=$1;`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// UpdateMessageText replaces the message's text and reports whether a
// row was actually updated. The other columns are immutable.
func (r *PostgresRepo) UpdateMessageText(id int, text string) (bool, error) {
	query := `UPDATE message SET message_text=$2 WHERE message_id=$1;`
	result, err := r.db.Exec(query, id, text)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// AuthorExists reports whether an account with the given id is
// registered.
func (r *PostgresRepo) AuthorExists(accountID int) (bool, error) {
	query := `SELECT account_id FROM account WHERE account_id=$1;`
	var found int
	err := r.db.QueryRow(query, accountID).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
