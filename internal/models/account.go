package models

// Account is a registered identity. ID is assigned by the database on
// insert and is zero before creation.
type Account struct {
	ID       int    `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
