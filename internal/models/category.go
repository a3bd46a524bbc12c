package models

// Category represents a row of the categories table.
type Category struct {
	CategoryID int64  `db:"category_id"`
	UserID     int64  `db:"user_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Color      string `db:"color"`
	Icon       string `db:"icon"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
