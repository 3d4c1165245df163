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

// incomeService implements IncomeSvcFacade on top of the income repository.
type incomeService struct {
	incomeRepo portsrepo.IncomeRepository
}

// NewIncomeService creates a new income service.
func NewIncomeService(incomeRepo portsrepo.IncomeRepository) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: incomeRepo}
}

func (s *incomeService) CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: income amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	income := domain.Income{
		IncomeID: uuid.NewString(),
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Notes:    req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	return &income, nil
}

func (s *incomeService) GetIncome(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, userID, incomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}
	return income, nil
}

func (s *incomeService) ListIncome(ctx context.Context, userID, category string) ([]domain.Income, error) {
	var (
		income []domain.Income
		err    error
	)
	if category != "" {
		income, err = s.incomeRepo.ListIncomeByCategory(ctx, userID, category)
	} else {
		income, err = s.incomeRepo.ListIncome(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return income, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, userID, incomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find income for update: %w", err)
	}

	if req.Title != nil {
		income.Title = *req.Title
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: income amount must be positive", apperrors.ErrValidation)
		}
		income.Amount = *req.Amount
	}
	if req.Category != nil {
		income.Category = *req.Category
	}
	if req.Date != nil {
		income.Date = *req.Date
	}
	if req.Notes != nil {
		income.Notes = *req.Notes
	}
	income.LastUpdatedAt = time.Now()
	income.LastUpdatedBy = userID

	if err := s.incomeRepo.UpdateIncome(ctx, *income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}
	return income, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	if err := s.incomeRepo.DeleteIncome(ctx, userID, incomeID); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return nil
}
