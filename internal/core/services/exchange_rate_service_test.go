package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kicky1/dashboard/internal/apperrors"
	"github.com/kicky1/dashboard/internal/core/domain"
	portssvc "github.com/kicky1/dashboard/internal/core/ports/services"
	"github.com/kicky1/dashboard/internal/core/services"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	server     *httptest.Server
	fetchCount atomic.Int64
	// respond is swapped per test to shape the upstream answer.
	respond func(w http.ResponseWriter)
	service portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.fetchCount.Store(0)
	suite.respond = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"PLN":4.03,"EUR":0.92}}`))
	}
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.fetchCount.Add(1)
		suite.respond(w)
	}))
	suite.service = services.NewExchangeRateService(
		services.WithRatesEndpoint(suite.server.URL),
		services.WithHTTPClient(suite.server.Client()),
		services.WithCacheDuration(time.Hour),
		services.WithFetchTimeout(2*time.Second),
	)
}

func (suite *ExchangeRateServiceTestSuite) TearDownTest() {
	suite.server.Close()
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestGetRate_SameCurrencyIsOne() {
	rate, err := suite.service.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyUSD)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	// Same-currency lookups never touch the upstream API.
	suite.EqualValues(0, suite.fetchCount.Load())
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_FetchesAndCaches() {
	ctx := context.Background()

	rate, err := suite.service.GetRate(ctx, domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.03")), "got %s", rate)
	suite.EqualValues(1, suite.fetchCount.Load())

	// Second read within the freshness window serves from cache.
	rate, err = suite.service.GetRate(ctx, domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.03")))
	suite.EqualValues(1, suite.fetchCount.Load())
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_InverseDirection() {
	ctx := context.Background()

	usdToPln, err := suite.service.GetRate(ctx, domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	plnToUsd, err := suite.service.GetRate(ctx, domain.CurrencyPLN, domain.CurrencyUSD)
	suite.NoError(err)

	product := usdToPln.Mul(plnToUsd)
	diff := product.Sub(decimal.NewFromInt(1)).Abs()
	suite.True(diff.LessThan(decimal.RequireFromString("0.000001")), "directions are not inverses: %s", product)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_UnsupportedCurrency() {
	_, err := suite.service.GetRate(context.Background(), domain.CurrencyUSD, domain.Currency("EUR"))
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.EqualValues(0, suite.fetchCount.Load())
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_FallsBackOnFetchFailure() {
	suite.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	rate, err := suite.service.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.15")), "expected seeded fallback, got %s", rate)
	suite.Nil(suite.service.LastUpdateTime())
	suite.True(suite.service.IsStale())
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_KeepsFetchedRateAcrossLaterFailures() {
	ctx := context.Background()

	shortLived := services.NewExchangeRateService(
		services.WithRatesEndpoint(suite.server.URL),
		services.WithHTTPClient(suite.server.Client()),
		services.WithCacheDuration(time.Nanosecond),
	)

	rate, err := shortLived.GetRate(ctx, domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.03")))

	suite.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
	}

	// Cache is stale again and the refresh fails; the last good rate survives.
	rate, err = shortLived.GetRate(ctx, domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.03")))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_ConcurrentReadersShareOneFetch() {
	ctx := context.Background()
	release := make(chan struct{})
	suite.respond = func(w http.ResponseWriter) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"PLN":4.03}}`))
	}

	const readers = 8
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			rate, err := suite.service.GetRate(ctx, domain.CurrencyUSD, domain.CurrencyPLN)
			suite.NoError(err)
			suite.False(rate.IsZero())
		}()
	}

	// Let the readers pile up behind the in-flight fetch, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	suite.EqualValues(1, suite.fetchCount.Load())
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount() {
	converted, rate, err := suite.service.ConvertAmount(context.Background(), decimal.NewFromInt(100), domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.03")))
	suite.True(converted.Equal(decimal.RequireFromString("403")), "got %s", converted)
}

func (suite *ExchangeRateServiceTestSuite) TestGetMultipleRates() {
	rates, err := suite.service.GetMultipleRates(context.Background(), domain.CurrencyUSD, []domain.Currency{domain.CurrencyUSD, domain.CurrencyPLN})
	suite.NoError(err)
	suite.Len(rates, 2)
	suite.True(rates[domain.CurrencyUSD].Equal(decimal.NewFromInt(1)))
	suite.True(rates[domain.CurrencyPLN].Equal(decimal.RequireFromString("4.03")))
}

func (suite *ExchangeRateServiceTestSuite) TestForceRefresh_SurfacesFailure() {
	suite.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	err := suite.service.ForceRefresh(context.Background())
	suite.Error(err)

	suite.respond = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"PLN":3.97}}`))
	}
	suite.NoError(suite.service.ForceRefresh(context.Background()))

	rate, ok := suite.service.GetCachedRate(domain.CurrencyUSD, domain.CurrencyPLN)
	suite.True(ok)
	suite.True(rate.Equal(decimal.RequireFromString("3.97")))
	suite.NotNil(suite.service.LastUpdateTime())
	suite.False(suite.service.IsStale())
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_MissingRateInResponse() {
	suite.respond = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}

	// A payload without PLN counts as a failed fetch, so the fallback serves.
	rate, err := suite.service.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyPLN)
	suite.NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("4.15")))
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
