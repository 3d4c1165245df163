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

type PgxExpenseRepository struct {
	BaseRepository
	incomeRepo portsrepo.IncomeRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool, incomeRepo portsrepo.IncomeRepository) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		incomeRepo:     incomeRepo,
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepository
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, user_id, title, amount, category, date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
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

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (` + expenseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
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
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1 AND user_id = $2;
	`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC, expense_id DESC;
	`
	return r.queryExpenses(ctx, query, userID)
}

func (r *PgxExpenseRepository) ListExpensesByCategory(ctx context.Context, userID, category string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND category = $2
		ORDER BY date DESC, created_at DESC, expense_id DESC;
	`
	return r.queryExpenses(ctx, query, userID, category)
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET title = $1, amount = $2, category = $3, date = $4, notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $8 AND user_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Amount,
		m.Category,
		m.Date,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", m.ExpenseID))
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
	}
	return nil
}

// DeleteUserTransactions removes every expense and income record belonging to
// userID inside a single transaction, so a failure part-way leaves the user's
// data intact.
func (r *PgxExpenseRepository) DeleteUserTransactions(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `DELETE FROM expenses WHERE user_id = $1;`
	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete expenses for user %s: %w", userID, err)
	}

	if err := r.incomeRepo.DeleteIncomeByUserInTx(ctx, tx, userID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
