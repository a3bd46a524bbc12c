package models

// User is the subset of the users table this service reads.
type User struct {
	UserID         int64  `db:"user_id"`
	Name           string `db:"name"`
	HomeCurrencyID int64  `db:"home_currency_id"`
}
