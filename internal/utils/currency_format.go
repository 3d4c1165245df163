package utils

import (
	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
	plnPrinter = message.NewPrinter(language.Polish)
)

// ConvertCurrency converts an amount between the two supported currencies
// given a USD->PLN rate. Same-currency conversion is the identity. Any other
// pair (only reachable if the currency set grows without this function being
// updated) falls back to returning the amount unchanged.
func ConvertCurrency(amount decimal.Decimal, from, to domain.Currency, rate decimal.Decimal) decimal.Decimal {
	if from == to {
		return amount
	}
	if from == domain.CurrencyUSD && to == domain.CurrencyPLN {
		return amount.Mul(rate)
	}
	if from == domain.CurrencyPLN && to == domain.CurrencyUSD {
		return amount.Div(rate)
	}
	return amount
}

// FormatAmount renders an amount for display in the given currency using that
// currency's locale conventions: "$1,234" for USD, "1 234 zł" for PLN
// (pl-PL grouping uses a non-breaking space).
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	v, _ := amount.Float64()
	n := number.Decimal(v, number.MaxFractionDigits(2))
	if currency == domain.CurrencyPLN {
		return plnPrinter.Sprintf("%v zł", n)
	}
	return usdPrinter.Sprintf("$%v", n)
}
