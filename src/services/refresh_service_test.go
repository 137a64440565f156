package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"strategy/src/clients/tinvest"
	"strategy/src/models"
	"strategy/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func share(figi, ticker string) tinvest.Share {
	return tinvest.Share{
		FIGI:      figi,
		Ticker:    ticker,
		ClassCode: "TQBR",
		Currency:  "rub",
		Name:      ticker + " Inc",
		Brand:     tinvest.Brand{LogoName: ticker + ".png"},
	}
}

func TestRefreshAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("fails fast without a token", func(t *testing.T) {
		service := services.NewRefreshService("", &fakeMarketClient{}, &fakePriceRepo{}, &fakeHoldingRepo{}, &fakeNotifier{})

		_, err := service.RefreshAssets(ctx)
		assert.ErrorIs(t, err, services.ErrTokenNotConfigured)
	})

	t.Run("empty instrument list is a non-error terminal", func(t *testing.T) {
		prices := &fakePriceRepo{}
		notifier := &fakeNotifier{}
		service := services.NewRefreshService("token", &fakeMarketClient{}, prices, &fakeHoldingRepo{}, notifier)

		result, err := service.RefreshAssets(ctx)
		require.NoError(t, err)
		assert.Equal(t, "success", result.Status)
		assert.Equal(t, 0, prices.replaceCalls)
		assert.Equal(t, 0, notifier.runs)
	})

	t.Run("persists prices, updates holdings and notifies", func(t *testing.T) {
		market := &fakeMarketClient{
			shares: []tinvest.Share{
				share("FIGI-A", "AAA"),
				share("FIGI-B", "BBB"),
				share("FIGI-C", "CCC"),
				{FIGI: "FIGI-D"}, // no ticker, ignored
			},
			prices: map[string]tinvest.Quotation{
				"FIGI-A": {Units: 283, Nano: 500_000_000},
				"FIGI-B": {Units: 10, Nano: 0},
				// FIGI-C has no price and is skipped with a warning.
			},
		}
		prices := &fakePriceRepo{}
		holdings := &fakeHoldingRepo{}
		require.NoError(t, holdings.Create(ctx, &models.Holding{
			Ticker: "AAA", BuyPrice: 200, BuyCount: 2,
			BuyDate: time.Now().AddDate(0, -3, 0), OwnerID: 1,
		}))
		notifier := &fakeNotifier{}
		service := services.NewRefreshService("token", market, prices, holdings, notifier)

		result, err := service.RefreshAssets(ctx)
		require.NoError(t, err)
		assert.Equal(t, "success", result.Status)
		assert.Equal(t, "refreshed 2 instruments", result.Message)

		require.Len(t, prices.rows, 2)
		assert.Equal(t, "AAA", prices.rows[0].Ticker)
		assert.Equal(t, int64(283), prices.rows[0].Units)
		assert.Equal(t, int32(500_000_000), prices.rows[0].Nano)
		assert.Equal(t, "https://invest-brands.cdn-tinkoff.ru/AAAx160.png", prices.rows[0].LogoURL)

		assert.InDelta(t, 283.5, holdings.holdings[0].CurrentPrice, 1e-9)
		assert.Equal(t, 1, notifier.runs)
	})

	t.Run("failed batches are skipped, the rest survives", func(t *testing.T) {
		// 60 instruments make two batches; the failing FIGI sits in the
		// first one.
		market := &fakeMarketClient{prices: map[string]tinvest.Quotation{}}
		for i := 0; i < 60; i++ {
			figi := fmt.Sprintf("FIGI-%03d", i)
			market.shares = append(market.shares, share(figi, fmt.Sprintf("T%03d", i)))
			market.prices[figi] = tinvest.Quotation{Units: int64(i), Nano: 0}
		}
		market.failFIGI = "FIGI-000"

		prices := &fakePriceRepo{}
		service := services.NewRefreshService("token", market, prices, &fakeHoldingRepo{}, &fakeNotifier{})

		result, err := service.RefreshAssets(ctx)
		require.NoError(t, err)
		assert.Equal(t, "refreshed 10 instruments (1 batches failed)", result.Message)
		assert.Len(t, prices.rows, 10)
	})

	t.Run("replacing twice with identical input is idempotent", func(t *testing.T) {
		market := &fakeMarketClient{
			shares: []tinvest.Share{share("FIGI-A", "AAA")},
			prices: map[string]tinvest.Quotation{"FIGI-A": {Units: 42, Nano: 100}},
		}
		prices := &fakePriceRepo{}
		service := services.NewRefreshService("token", market, prices, &fakeHoldingRepo{}, &fakeNotifier{})

		_, err := service.RefreshAssets(ctx)
		require.NoError(t, err)
		first := append([]models.InstrumentPrice(nil), prices.rows...)

		_, err = service.RefreshAssets(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, prices.replaceCalls)
		assert.Equal(t, first, prices.rows)
	})
}
