package tinvest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"strategy/src/clients/tinvest"
	"strategy/src/config"
	"strategy/src/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*tinvest.ServiceClient, *ratelimit.MemoryCounter) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	counter := ratelimit.NewMemoryCounter()
	limiter := ratelimit.NewLimiter(counter, 190, time.Millisecond)

	cfg := &config.Config{}
	cfg.ExternalClients.TInvest.BaseURL = server.URL
	cfg.ExternalClients.TInvest.Token = "test-token"

	client, err := tinvest.NewClient(cfg, limiter)
	require.NoError(t, err)
	return client, counter
}

func TestShares(t *testing.T) {
	calls := 0
	client, counter := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Contains(t, r.URL.Path, "InstrumentsService/Shares")

		fmt.Fprint(w, `{"instruments": [
			{"figi": "BBG004730N88", "ticker": "SBER", "classCode": "TQBR", "currency": "rub",
			 "name": "Sberbank", "brand": {"logoName": "SBER.png"}}
		]}`)
	})

	shares, err := client.Shares(context.Background())
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "SBER", shares[0].Ticker)
	assert.Equal(t, "BBG004730N88", shares[0].FIGI)
	assert.Equal(t, "https://invest-brands.cdn-tinkoff.ru/SBERx160.png", tinvest.LogoURL(shares[0].Brand))

	count, err := counter.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A second listing within the cache TTL does not hit the API again.
	_, err = client.Shares(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLastPrices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			FIGI []string `json:"figi"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"FIGI-A", "FIGI-B"}, body.FIGI)

		// Units arrive as a JSON string; FIGI-B has no known price.
		fmt.Fprint(w, `{"lastPrices": [
			{"figi": "FIGI-A", "price": {"units": "283", "nano": 500000000}}
		]}`)
	})

	prices, err := client.LastPrices(context.Background(), []string{"FIGI-A", "FIGI-B"})
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, int64(283), prices["FIGI-A"].Units)
	assert.Equal(t, int32(500000000), prices["FIGI-A"].Nano)
	assert.InDelta(t, 283.5, prices["FIGI-A"].Value(), 1e-9)

	_, ok := prices["FIGI-B"]
	assert.False(t, ok)
}

func TestDividends(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			FIGI string `json:"figi"`
			From string `json:"from"`
			To   string `json:"to"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "FIGI-A", body.FIGI)

		fmt.Fprint(w, `{"dividends": [
			{"dividendNet": {"currency": "rub", "units": "10", "nano": 500000000},
			 "lastBuyDate": "2026-09-11T00:00:00Z"},
			{"dividendNet": {"currency": "rub", "units": "1", "nano": 0},
			 "lastBuyDate": "2026-12-01T00:00:00Z"}
		]}`)
	})

	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	dividends, err := client.Dividends(context.Background(), "FIGI-A", from, to)
	require.NoError(t, err)
	require.Len(t, dividends, 2)
	assert.InDelta(t, 10.5, dividends[0].DividendNet.Value(), 1e-9)
	assert.Equal(t, 11, dividends[0].LastBuyDate.Day())
}

func TestUpstreamErrorDoesNotCountRequest(t *testing.T) {
	client, counter := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "quota exceeded"}`, http.StatusTooManyRequests)
	})

	_, err := client.LastPrices(context.Background(), []string{"FIGI-A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	count, err := counter.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
