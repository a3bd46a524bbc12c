package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		UserID:      d.UserID,
		Name:        d.Name,
		Type:        string(d.Type),
		Color:       d.Color,
		Icon:        d.Icon,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        domain.TransactionType(m.Type),
		Color:       m.Color,
		Icon:        m.Icon,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts model Categories to domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	return toDomainSlice(ms, ToDomainCategory)
}
