package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
)

// expenseService implements ExpenseSvcFacade on top of the expense repository.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  req.Category,
		Date:      req.Date,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID, category string) ([]domain.Expense, error) {
	var (
		expenses []domain.Expense
		err      error
	)
	if category != "" {
		expenses, err = s.expenseRepo.ListExpensesByCategory(ctx, userID, category)
	} else {
		expenses, err = s.expenseRepo.ListExpenses(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense for update: %w", err)
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
