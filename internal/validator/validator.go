// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sip_category", validateSipCategory)
		_ = v.RegisterValidation("risk_tolerance", validateRiskTolerance)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	}
}

func validateSipCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "LARGE_CAP", "MID_CAP", "SMALL_CAP", "DEBT", "HYBRID":
		return true
	}
	return false
}

func validateRiskTolerance(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	// Categories are free-form but must be lowercase identifiers without
	// whitespace so budget matching stays exact.
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
