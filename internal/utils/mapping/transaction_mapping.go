package mapping

import (
	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/kicky1/dashboard/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		UserID:      d.UserID,
		Title:       d.Title,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        d.Date,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		UserID:      m.UserID,
		Title:       m.Title,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:    d.IncomeID,
		UserID:      d.UserID,
		Title:       d.Title,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        d.Date,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:    m.IncomeID,
		UserID:      m.UserID,
		Title:       m.Title,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSlice converts a slice of model Income rows to domain Income
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	ds := make([]domain.Income, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}
