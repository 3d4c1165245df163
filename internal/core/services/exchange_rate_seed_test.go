package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kicky1/dashboard/internal/core/domain"
)

// The seeded fallback entries must carry a real timestamp, while the cache as
// a whole still counts as never-fetched until the first upstream call.
func TestSeededRatesCarryConstructionTimestamp(t *testing.T) {
	before := time.Now()
	svc := NewExchangeRateService().(*exchangeRateService)

	keys := []string{
		domain.PairKey(domain.CurrencyUSD, domain.CurrencyPLN),
		domain.PairKey(domain.CurrencyPLN, domain.CurrencyUSD),
	}
	for _, key := range keys {
		entry, ok := svc.rates[key]
		require.True(t, ok, "seeded entry missing for %s", key)
		assert.False(t, entry.LastUpdated.IsZero(), "seeded entry for %s has zero LastUpdated", key)
		assert.False(t, entry.LastUpdated.Before(before))
		assert.False(t, entry.LastUpdated.After(time.Now()))
	}

	assert.Nil(t, svc.lastFetchTime, "no upstream fetch has happened yet")
	assert.True(t, svc.IsStale())
}
