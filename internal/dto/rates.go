package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateResponse describes one directional exchange rate.
type RateResponse struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Rate        decimal.Decimal `json:"rate"`
	Stale       bool            `json:"stale"`
	LastUpdated *time.Time      `json:"lastUpdated,omitempty"`
}

// ConvertAmountRequest asks for a single amount conversion.
type ConvertAmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	From   string          `json:"from" binding:"required,currency"`
	To     string          `json:"to" binding:"required,currency"`
}

// ConvertAmountResponse returns the converted amount with the rate used and
// the locale-formatted rendering for display.
type ConvertAmountResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Rate      decimal.Decimal `json:"rate"`
	Formatted string          `json:"formatted"`
}
