package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
	"github.com/kicky1/dashboard/internal/models"
	"github.com/kicky1/dashboard/internal/utils/mapping"
)

type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepository {
	return &PgxIncomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxIncomeRepository implements portsrepo.IncomeRepository
var _ portsrepo.IncomeRepository = (*PgxIncomeRepository)(nil)

const incomeColumns = `income_id, user_id, title, amount, category, date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.UserID,
		&m.Title,
		&m.Amount,
		&m.Category,
		&m.Date,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
        INSERT INTO income (` + incomeColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.IncomeID,
		m.UserID,
		m.Title,
		m.Amount,
		m.Category,
		m.Date,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save income: %w", err)
	}
	return nil
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM income
		WHERE income_id = $1 AND user_id = $2;
	`
	m, err := scanIncome(r.Pool.QueryRow(ctx, query, incomeID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("income %s not found", incomeID))
		}
		return nil, fmt.Errorf("failed to find income %s: %w", incomeID, err)
	}

	d := mapping.ToDomainIncome(m)
	return &d, nil
}

func (r *PgxIncomeRepository) ListIncome(ctx context.Context, userID string) ([]domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM income
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC, income_id DESC;
	`
	return r.queryIncome(ctx, query, userID)
}

func (r *PgxIncomeRepository) ListIncomeByCategory(ctx context.Context, userID, category string) ([]domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM income
		WHERE user_id = $1 AND category = $2
		ORDER BY date DESC, created_at DESC, income_id DESC;
	`
	return r.queryIncome(ctx, query, userID, category)
}

func (r *PgxIncomeRepository) queryIncome(ctx context.Context, query string, args ...any) ([]domain.Income, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query income: %w", err)
	}
	defer rows.Close()

	ms := []models.Income{}
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}

	return mapping.ToDomainIncomeSlice(ms), nil
}

func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
		UPDATE income
		SET title = $1, amount = $2, category = $3, date = $4, notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE income_id = $8 AND user_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Amount,
		m.Category,
		m.Date,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.IncomeID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update income %s: %w", m.IncomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("income %s not found", m.IncomeID))
	}
	return nil
}

func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	query := `DELETE FROM income WHERE income_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, incomeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income %s: %w", incomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("income %s not found", incomeID))
	}
	return nil
}

// DeleteIncomeByUserInTx removes every income record for userID using the
// provided transaction. The caller owns commit and rollback.
func (r *PgxIncomeRepository) DeleteIncomeByUserInTx(ctx context.Context, tx pgx.Tx, userID string) error {
	query := `DELETE FROM income WHERE user_id = $1;`
	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete income for user %s: %w", userID, err)
	}
	return nil
}
