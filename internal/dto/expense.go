package dto

import (
	"time"

	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the structure for creating a new expense.
type CreateExpenseRequest struct {
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Notes    string          `json:"notes"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Pointer fields differentiate omitted fields from zero values.
type UpdateExpenseRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Category string `form:"category"`
}

// ExpenseResponse defines the structure for API responses containing expense details.
type ExpenseResponse struct {
	ExpenseID       string           `json:"expenseID"`
	Title           string           `json:"title"`
	Amount          decimal.Decimal  `json:"amount"`
	Category        string           `json:"category"`
	Date            time.Time        `json:"date"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Title:         e.Title,
		Amount:        e.Amount,
		Category:      e.Category,
		Date:          e.Date,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToConvertedExpenseResponse converts a display-currency projection of an expense.
func ToConvertedExpenseResponse(e domain.ConvertedExpense) ExpenseResponse {
	resp := ToExpenseResponse(&e.Expense)
	converted := e.ConvertedAmount
	resp.ConvertedAmount = &converted
	return resp
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
