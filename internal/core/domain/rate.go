package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateEntry is one cached directional conversion factor.
// For any pair of supported currencies both directions are written together
// from a single source value, so the stored rates stay multiplicative
// inverses of each other.
type ExchangeRateEntry struct {
	Currency    Currency        `json:"currency"` // target currency of the conversion
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
