package dto

import "github.com/SscSPs/money_tracker/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=64"`
	Type  string `json:"type" binding:"required,transaction_type"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
	Icon  string `json:"icon" binding:"omitempty,max=32"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID int64  `json:"categoryID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	IsActive   bool   `json:"isActive"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
		Icon:       c.Icon,
		IsActive:   c.IsActive,
	}
}

// ToListCategoryResponse converts categories to their response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
