package domain

// Currency represents a supported currency in the domain.
// Code and Symbol are immutable once a rate or transaction references the currency;
// only IsActive may change afterwards.
type Currency struct {
	CurrencyID int64  `json:"currencyID"` // Primary Key
	Code       string `json:"code"`       // ISO 4217, e.g. "USD"
	Symbol     string `json:"symbol"`     // e.g. "$"
	Name       string `json:"name"`       // e.g. "US Dollar"
	IsActive   bool   `json:"isActive"`
	AuditFields
}
