package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code   string `json:"code" binding:"required,uppercase,len=3"`
	Symbol string `json:"symbol" binding:"required,max=8"`
	Name   string `json:"name" binding:"required,max=64"`
}

// SetCurrencyActiveRequest toggles a currency's active flag.
type SetCurrencyActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    int64     `json:"currencyID"`
	Code          string    `json:"code"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		Code:          curr.Code,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		IsActive:      curr.IsActive,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
