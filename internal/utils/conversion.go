package utils

import (
	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// noConversion reports whether a resolved rate means "leave amounts alone".
// A zero rate stands in for an absent one.
func noConversion(rate decimal.Decimal) bool {
	return rate.IsZero() || rate.Equal(decimal.NewFromInt(1))
}

// ConvertWithRate applies a display-currency rate to an amount. A zero or
// 1 rate returns the amount unchanged.
func ConvertWithRate(amount decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	if noConversion(rate) {
		return amount
	}
	return amount.Mul(rate)
}

// ConvertExpense annotates an expense with its amount in the display currency.
func ConvertExpense(expense domain.Expense, rate decimal.Decimal) domain.ConvertedExpense {
	return domain.ConvertedExpense{
		Expense:         expense,
		ConvertedAmount: ConvertWithRate(expense.Amount, rate),
	}
}

// ConvertIncome annotates an income record with its amount in the display currency.
func ConvertIncome(income domain.Income, rate decimal.Decimal) domain.ConvertedIncome {
	return domain.ConvertedIncome{
		Income:          income,
		ConvertedAmount: ConvertWithRate(income.Amount, rate),
	}
}
