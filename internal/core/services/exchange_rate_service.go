package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
)

const (
	defaultRatesEndpoint = "https://api.exchangerate-api.com/v4/latest/USD"
	defaultCacheDuration = time.Hour
	defaultFetchTimeout  = 10 * time.Second
)

// defaultUSDPLN seeds the cache so conversion works before the first
// successful fetch and keeps working when the upstream API is down.
var defaultUSDPLN = decimal.RequireFromString("4.15")

// ratesAPIResponse mirrors the subset of the exchangerate-api payload we read.
type ratesAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// exchangeRateService caches USD/PLN conversion factors fetched from a public
// rates API. Both directions of the pair are always written together from the
// single fetched value, so the cache never holds inconsistent inverses.
type exchangeRateService struct {
	mu            sync.RWMutex
	rates         map[string]domain.ExchangeRateEntry
	lastFetchTime *time.Time

	endpoint      string
	cacheDuration time.Duration
	fetchTimeout  time.Duration
	httpClient    *http.Client
	logger        *slog.Logger

	// fetchGroup collapses concurrent refresh attempts into one upstream call.
	fetchGroup singleflight.Group
}

// ExchangeRateServiceOption configures an exchangeRateService.
type ExchangeRateServiceOption func(*exchangeRateService)

// WithHTTPClient overrides the HTTP client used for rate fetches.
func WithHTTPClient(client *http.Client) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.httpClient = client
	}
}

// WithRatesEndpoint overrides the upstream rates API URL.
func WithRatesEndpoint(endpoint string) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.endpoint = endpoint
	}
}

// WithCacheDuration overrides how long a fetched rate stays fresh.
func WithCacheDuration(d time.Duration) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.cacheDuration = d
	}
}

// WithFetchTimeout overrides the per-fetch upstream timeout.
func WithFetchTimeout(d time.Duration) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.fetchTimeout = d
	}
}

// WithRatesLogger overrides the logger used for fetch failures.
func WithRatesLogger(logger *slog.Logger) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.logger = logger
	}
}

// NewExchangeRateService creates an exchange rate service seeded with the
// fallback USD/PLN rate. The cache starts stale, so the first read attempts
// a fetch.
func NewExchangeRateService(opts ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	s := &exchangeRateService{
		rates:         make(map[string]domain.ExchangeRateEntry),
		endpoint:      defaultRatesEndpoint,
		cacheDuration: defaultCacheDuration,
		fetchTimeout:  defaultFetchTimeout,
		httpClient:    http.DefaultClient,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.storeRate(defaultUSDPLN, time.Now())
	return s
}

// storeRate writes both directions of the USD/PLN pair from one source value.
// Caller must hold the write lock or be the constructor.
func (s *exchangeRateService) storeRate(usdToPln decimal.Decimal, updated time.Time) {
	s.rates[domain.PairKey(domain.CurrencyUSD, domain.CurrencyPLN)] = domain.ExchangeRateEntry{
		Currency:    domain.CurrencyPLN,
		Rate:        usdToPln,
		LastUpdated: updated,
	}
	s.rates[domain.PairKey(domain.CurrencyPLN, domain.CurrencyUSD)] = domain.ExchangeRateEntry{
		Currency:    domain.CurrencyUSD,
		Rate:        decimal.NewFromInt(1).Div(usdToPln),
		LastUpdated: updated,
	}
}

// IsStale reports whether the next read would attempt a fetch.
func (s *exchangeRateService) IsStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isStaleLocked()
}

func (s *exchangeRateService) isStaleLocked() bool {
	if s.lastFetchTime == nil {
		return true
	}
	return time.Since(*s.lastFetchTime) >= s.cacheDuration
}

// LastUpdateTime returns the time of the last successful fetch, nil before one.
func (s *exchangeRateService) LastUpdateTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastFetchTime == nil {
		return nil
	}
	t := *s.lastFetchTime
	return &t
}

// GetCachedRate looks a pair up without triggering a refresh.
func (s *exchangeRateService) GetCachedRate(from, to domain.Currency) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.rates[domain.PairKey(from, to)]
	if !ok {
		return decimal.Decimal{}, false
	}
	return entry.Rate, true
}

// GetRate returns the conversion factor from one currency to another,
// refreshing the cache first when it is stale. Fetch failures are swallowed:
// the previously cached (or seeded) rate is served instead.
func (s *exchangeRateService) GetRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	if !from.IsSupported() || !to.IsSupported() {
		return decimal.Decimal{}, apperrors.NewValidationError(fmt.Sprintf("unsupported currency pair %s/%s", from, to))
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	s.refreshIfStale(ctx)

	s.mu.RLock()
	entry, ok := s.rates[domain.PairKey(from, to)]
	s.mu.RUnlock()
	if !ok {
		return decimal.Decimal{}, apperrors.NewInternalServerError(fmt.Sprintf("no exchange rate available for %s to %s", from, to))
	}
	return entry.Rate, nil
}

// GetMultipleRates resolves several targets sharing a single freshness check.
func (s *exchangeRateService) GetMultipleRates(ctx context.Context, from domain.Currency, to []domain.Currency) (map[domain.Currency]decimal.Decimal, error) {
	if !from.IsSupported() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported currency %s", from))
	}

	s.refreshIfStale(ctx)

	result := make(map[domain.Currency]decimal.Decimal, len(to))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, target := range to {
		if !target.IsSupported() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported currency %s", target))
		}
		if target == from {
			result[target] = decimal.NewFromInt(1)
			continue
		}
		entry, ok := s.rates[domain.PairKey(from, target)]
		if !ok {
			return nil, apperrors.NewInternalServerError(fmt.Sprintf("no exchange rate available for %s to %s", from, target))
		}
		result[target] = entry.Rate
	}
	return result, nil
}

// ConvertAmount converts an amount between two supported currencies using
// the current directional rate.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := s.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return amount.Mul(rate), rate, nil
}

// ForceRefresh discards the freshness window and attempts a fetch now.
// Unlike the implicit refresh on reads, failures surface to the caller.
func (s *exchangeRateService) ForceRefresh(ctx context.Context) error {
	_, err, _ := s.fetchGroup.Do("fetch", func() (interface{}, error) {
		return nil, s.fetchRates(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to refresh exchange rates: %w", err)
	}
	return nil
}

// refreshIfStale attempts one deduplicated fetch when the cache is stale.
// Failures are logged and swallowed so reads fall back to the cached value.
func (s *exchangeRateService) refreshIfStale(ctx context.Context) {
	if !s.IsStale() {
		return
	}
	_, err, _ := s.fetchGroup.Do("fetch", func() (interface{}, error) {
		// Re-check under dedup: a caller queued behind the winning fetch
		// finds a fresh cache and skips the upstream call.
		if !s.IsStale() {
			return nil, nil
		}
		return nil, s.fetchRates(ctx)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "exchange rate fetch failed, serving cached rate",
			slog.String("error", err.Error()))
	}
}

// fetchRates calls the upstream API and, on success, replaces both directions
// of the USD/PLN pair and stamps lastFetchTime.
func (s *exchangeRateService) fetchRates(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rates API returned status %s", resp.Status)
	}

	var payload ratesAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode rates response: %w", err)
	}

	plnRate, ok := payload.Rates[domain.CurrencyPLN.String()]
	if !ok || plnRate <= 0 {
		return fmt.Errorf("rates response missing a usable PLN rate")
	}

	now := time.Now()
	s.mu.Lock()
	s.storeRate(decimal.NewFromFloat(plnRate), now)
	s.lastFetchTime = &now
	s.mu.Unlock()

	return nil
}
