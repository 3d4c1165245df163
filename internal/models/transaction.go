package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the row model for the expenses table.
type Expense struct {
	ExpenseID string          `db:"expense_id"`
	UserID    string          `db:"user_id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	Date      time.Time       `db:"date"`
	Notes     string          `db:"notes"`
	AuditFields
}

// Income is the row model for the income table.
type Income struct {
	IncomeID string          `db:"income_id"`
	UserID   string          `db:"user_id"`
	Title    string          `db:"title"`
	Amount   decimal.Decimal `db:"amount"`
	Category string          `db:"category"`
	Date     time.Time       `db:"date"`
	Notes    string          `db:"notes"`
	AuditFields
}
