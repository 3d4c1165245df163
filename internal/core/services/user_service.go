package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/dto"
	"github.com/kicky1/dashboard/internal/utils"
)

// userService implements UserSvcFacade. It also owns the destructive
// clear-data operation, which the expense repository runs as a single
// transaction across both transaction tables.
type userService struct {
	userRepo        portsrepo.UserRepository
	preferencesRepo portsrepo.PreferencesRepository
	expenseRepo     portsrepo.ExpenseRepository
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo portsrepo.UserRepository,
	preferencesRepo portsrepo.PreferencesRepository,
	expenseRepo portsrepo.ExpenseRepository,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:        userRepo,
		preferencesRepo: preferencesRepo,
		expenseRepo:     expenseRepo,
	}
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Email:        req.Email,
		Name:         req.Name,
		AuthProvider: domain.ProviderLocal,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.createDefaultPreferences(ctx, newUserID, now); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userService) CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProvider(ctx, provider, providerUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	// A local account with the same email gets the provider identity
	// attached instead of a second account being created.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user != nil {
		user.AuthProvider = domain.AuthProvider(provider)
		user.ProviderUserID = providerUserID
		user.EmailVerified = user.EmailVerified || emailVerified
		user.LastUpdatedAt = time.Now()
		user.LastUpdatedBy = user.UserID
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			return nil, fmt.Errorf("failed to link oauth identity: %w", err)
		}
		return user, nil
	}

	now := time.Now()
	newUserID := uuid.NewString()
	newUser := domain.User{
		UserID:         newUserID,
		Email:          email,
		Name:           name,
		AuthProvider:   domain.AuthProvider(provider),
		ProviderUserID: providerUserID,
		EmailVerified:  emailVerified,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	if err := s.createDefaultPreferences(ctx, newUserID, now); err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (s *userService) createDefaultPreferences(ctx context.Context, userID string, now time.Time) error {
	prefs := domain.DefaultUserPreferences(userID)
	prefs.PreferencesID = uuid.NewString()
	prefs.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.preferencesRepo.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("failed to create default preferences: %w", err)
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}
	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.NewUnauthorizedError("account does not support password login")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ClearUserData wipes every expense and income record the user owns. The
// account itself and its preferences survive.
func (s *userService) ClearUserData(ctx context.Context, userID string) error {
	if err := s.expenseRepo.DeleteUserTransactions(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}
