package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kicky1/dashboard/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses.
// Every operation is scoped to the owning user; a record owned by someone
// else behaves as if it did not exist.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	// ListExpenses returns all of the user's expenses, newest first.
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	ListExpensesByCategory(ctx context.Context, userID, category string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	// DeleteUserTransactions removes every expense and income record the
	// user owns within a single database transaction, so a failure part way
	// through leaves the data untouched.
	DeleteUserTransactions(ctx context.Context, userID string) error
}

// IncomeRepository defines persistence operations for income records.
type IncomeRepository interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error)
	ListIncome(ctx context.Context, userID string) ([]domain.Income, error)
	ListIncomeByCategory(ctx context.Context, userID, category string) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, income domain.Income) error
	DeleteIncome(ctx context.Context, userID, incomeID string) error
	// DeleteIncomeByUserInTx removes every income record owned by the user
	// using the provided transaction.
	DeleteIncomeByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error
}
