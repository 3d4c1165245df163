package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by exactly one user.
type Expense struct {
	ExpenseID string          `json:"expenseID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`    // Owning user
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"` // Positive, stored in USD
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"` // Optional
	AuditFields
}

// Income is a single earning record owned by exactly one user.
type Income struct {
	IncomeID string          `json:"incomeID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes"`
	AuditFields
}

// ConvertedExpense is an Expense projected into a display currency.
// It is derived per request and never persisted.
type ConvertedExpense struct {
	Expense
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// ConvertedIncome is an Income projected into a display currency.
type ConvertedIncome struct {
	Income
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}
