package services

import (
	"context"

	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/kicky1/dashboard/internal/dto"
)

// ExpenseSvcFacade defines business operations over a user's expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	// ListExpenses returns the user's expenses newest first; a non-empty
	// category narrows the result.
	ListExpenses(ctx context.Context, userID, category string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// IncomeSvcFacade defines business operations over a user's income records.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, error)
	GetIncome(ctx context.Context, userID, incomeID string) (*domain.Income, error)
	ListIncome(ctx context.Context, userID, category string) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}
