package handlers

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum validations used in request binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("budget_period", func(fl validator.FieldLevel) bool {
		return domain.BudgetPeriod(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("transaction_type", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).IsValid()
	})
}
