package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Common errors
var (
	ErrEmptyBusinessID  = errors.New("business_id cannot be empty")
	ErrInvalidRevenue   = errors.New("annual revenue must be positive")
	ErrInvalidExpenses  = errors.New("total expenses cannot be negative")
	ErrBusinessNotFound = errors.New("business not found")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrPDFUpload        = errors.New("PDF extraction requires manual review - please export as CSV/XLSX")
	ErrNotConfigured    = errors.New("service not configured")
)

var validate = validator.New()

// ValidateRecord checks the fields every analysis depends on.
func ValidateRecord(r *FinancialRecord) error {
	if r == nil || strings.TrimSpace(r.BusinessID) == "" {
		return ErrEmptyBusinessID
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid record: %w", err)
	}

	switch fieldErrs[0].Field() {
	case "BusinessID":
		return ErrEmptyBusinessID
	case "AnnualRevenue":
		return ErrInvalidRevenue
	case "TotalExpenses":
		return ErrInvalidExpenses
	}
	return fmt.Errorf("invalid record: %w", err)
}
