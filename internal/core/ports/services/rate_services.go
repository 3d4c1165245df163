package services

import (
	"context"
	"time"

	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines rate lookups that may refresh the cache.
type ExchangeRateReaderSvc interface {
	// GetRate returns the conversion factor from one currency to another,
	// refreshing the cache first when it is stale. Requesting an unsupported
	// currency is a programming error and fails hard.
	GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error)

	// GetMultipleRates resolves several targets sharing a single freshness check.
	GetMultipleRates(ctx context.Context, from domain.Currency, to []domain.Currency) (map[domain.Currency]decimal.Decimal, error)

	// ConvertAmount converts an amount between two supported currencies using
	// the current rate, returning the converted amount and the rate used.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, decimal.Decimal, error)
}

// ExchangeRateCacheSvc defines cache inspection operations that never fetch.
type ExchangeRateCacheSvc interface {
	// GetCachedRate looks a pair up without triggering a refresh.
	GetCachedRate(from, to domain.Currency) (decimal.Decimal, bool)

	// IsStale reports whether the next read would attempt a fetch.
	IsStale() bool

	// LastUpdateTime returns the time of the last successful fetch, nil before one.
	LastUpdateTime() *time.Time
}

// ExchangeRateRefreshSvc defines explicit cache refresh control.
type ExchangeRateRefreshSvc interface {
	// ForceRefresh discards the freshness window and attempts a fetch now.
	ForceRefresh(ctx context.Context) error
}

// ExchangeRateSvcFacade combines all exchange-rate service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateCacheSvc
	ExchangeRateRefreshSvc
}
