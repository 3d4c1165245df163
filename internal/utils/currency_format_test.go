package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kicky1/dashboard/internal/core/domain"
)

func TestFormatAmountUSD(t *testing.T) {
	assert.Equal(t, "$1,234", FormatAmount(decimal.NewFromInt(1234), domain.CurrencyUSD))
	assert.Equal(t, "$0.99", FormatAmount(decimal.RequireFromString("0.99"), domain.CurrencyUSD))
	assert.Equal(t, "$1,000,000", FormatAmount(decimal.NewFromInt(1000000), domain.CurrencyUSD))
}

func TestFormatAmountPLN(t *testing.T) {
	// pl-PL groups thousands with a space rather than a comma
	formatted := FormatAmount(decimal.NewFromInt(1234), domain.CurrencyPLN)
	assert.Contains(t, formatted, "zł", "PLN amounts should carry the zloty symbol")
	assert.NotContains(t, formatted, ",", "PLN grouping should not use commas")
	assert.Contains(t, formatted, "1", "Grouped digits should survive formatting")
	assert.Contains(t, formatted, "234", "Grouped digits should survive formatting")
}

func TestConvertCurrency(t *testing.T) {
	rate := decimal.RequireFromString("4.00")

	same := ConvertCurrency(decimal.NewFromInt(10), domain.CurrencyUSD, domain.CurrencyUSD, rate)
	assert.True(t, same.Equal(decimal.NewFromInt(10)), "Same-currency conversion should be the identity")

	toPLN := ConvertCurrency(decimal.NewFromInt(10), domain.CurrencyUSD, domain.CurrencyPLN, rate)
	assert.True(t, toPLN.Equal(decimal.NewFromInt(40)), "USD to PLN should multiply by the rate")

	toUSD := ConvertCurrency(decimal.NewFromInt(40), domain.CurrencyPLN, domain.CurrencyUSD, rate)
	assert.True(t, toUSD.Equal(decimal.NewFromInt(10)), "PLN to USD should divide by the rate")
}
