package domain

// User is the owner of transactions and budgets. Account management lives
// elsewhere; this core only needs the home currency.
type User struct {
	UserID         int64  `json:"userID"`
	Name           string `json:"name"`
	HomeCurrencyID int64  `json:"homeCurrencyID"`
}
