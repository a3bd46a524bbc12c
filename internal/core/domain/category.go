package domain

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Category groups transactions. Its Type is authoritative for transactions
// recorded against it.
type Category struct {
	CategoryID int64           `json:"categoryID"`
	UserID     int64           `json:"userID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// CategoryLabel is the display part of a category carried alongside transactions.
type CategoryLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Label returns the display fields of the category.
func (c Category) Label() CategoryLabel {
	return CategoryLabel{Name: c.Name, Color: c.Color, Icon: c.Icon}
}
