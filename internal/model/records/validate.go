package records

import (
	"strings"
	"time"

	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/customerr"
)

const MaxDescriptionLength = 100

type TransactionInput struct {
	Amount      float64                 `json:"amount"`
	Date        time.Time               `json:"date"`
	Description string                  `json:"description"`
	Type        finance.TransactionType `json:"type"`
	Category    string                  `json:"category"`
}

type BudgetInput struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
	Year     int     `json:"year"`
}

func validateTransaction(in TransactionInput, today time.Time) error {
	if in.Amount <= 0 {
		return customerr.NewValidation("amount", "must be a positive number")
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return customerr.NewValidation("description", "is required")
	}
	if len([]rune(in.Description)) > MaxDescriptionLength {
		return customerr.NewValidation("description", "must be at most 100 characters")
	}
	if in.Date.IsZero() {
		return customerr.NewValidation("date", "is required")
	}
	if finance.DateOf(in.Date).After(today) {
		return customerr.NewValidation("date", "cannot be in the future")
	}
	if !in.Type.Valid() {
		return customerr.NewValidation("type", "must be income or expense")
	}
	if strings.TrimSpace(in.Category) == "" {
		return customerr.NewValidation("category", "is required")
	}
	return nil
}

func validateBudget(in BudgetInput) error {
	if strings.TrimSpace(in.Category) == "" {
		return customerr.NewValidation("category", "is required")
	}
	if in.Amount <= 0 {
		return customerr.NewValidation("amount", "must be a positive number")
	}
	if in.Year <= 0 {
		return customerr.NewValidation("year", "is required")
	}
	if len(in.Month) != 2 {
		return customerr.NewValidation("month", "must be two digits from 01 to 12")
	}
	if _, ok := (finance.Budget{Month: in.Month, Year: in.Year}).Period(); !ok {
		return customerr.NewValidation("month", "must be two digits from 01 to 12")
	}
	return nil
}
