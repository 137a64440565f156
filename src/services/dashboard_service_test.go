package services_test

import (
	"context"
	"testing"
	"time"

	"strategy/src/models"
	"strategy/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	settings := &fakeSettingsRepo{settings: map[int]*models.UserSettings{
		1: {CentralBankRate: 0.165, OwnerID: 1},
	}}
	prices := &fakePriceRepo{rows: []models.InstrumentPrice{
		{Ticker: "AAA", Units: 120, Nano: 0, LogoURL: "https://cdn/AAAx160.png"},
	}}
	holdings := &fakeHoldingRepo{}
	require.NoError(t, holdings.Create(ctx, &models.Holding{
		Ticker: "AAA", BuyPrice: 100, BuyCount: 2,
		BuyDate: time.Now(), TargetPrice: 110, OwnerID: 1,
	}))

	service := services.NewDashboardService(holdings, prices, &fakeDividendRepo{}, &fakeCandidateRepo{}, settings)

	response, err := service.GetDashboard(ctx, 1)
	require.NoError(t, err)

	require.Len(t, response.Rows, 1)
	row := response.Rows[0]
	assert.Equal(t, "https://cdn/AAAx160.png", row.LogoURL)
	assert.Equal(t, 1, row.HoldingMonths)
	assert.InDelta(t, 120, row.CurrentPrice, 1e-9)
	assert.InDelta(t, 40, row.PriceDiff, 1e-9)
	assert.InDelta(t, 116.5, row.ExpectedPrice, 1e-9)
	assert.True(t, row.CanSell)
	assert.True(t, row.IsDanger)

	assert.Equal(t, 1, response.TotalAssets)
	assert.InDelta(t, 240, response.TotalPrice, 1e-9)
	assert.InDelta(t, 40, response.TotalProfit, 1e-9)
	assert.Equal(t, 1, response.MaxHoldingMonths)

	// Reading the dashboard persists the fresh current price.
	assert.InDelta(t, 120, holdings.holdings[0].CurrentPrice, 1e-9)
}

func TestGetCandidates(t *testing.T) {
	ctx := context.Background()

	settings := &fakeSettingsRepo{settings: map[int]*models.UserSettings{
		1: {OwnerID: 1},
	}}
	candidates := &fakeCandidateRepo{}
	require.NoError(t, candidates.ReplaceByOwner(ctx, 1, []models.Candidate{
		{Ticker: "AAA", Price: 100, Count: 4, Costs: 400.12, Share: 10.003, Dividend: 17.4, OwnerID: 1},
		{Ticker: "ZZZ", Price: 50, Count: 0, OwnerID: 1}, // zero count rows are hidden
	}))

	service := services.NewDashboardService(&fakeHoldingRepo{}, &fakePriceRepo{}, &fakeDividendRepo{}, candidates, settings)

	response, err := service.GetCandidates(ctx, 1)
	require.NoError(t, err)

	require.Len(t, response.Rows, 1)
	assert.Equal(t, "AAA", response.Rows[0].Ticker)
	assert.Equal(t, 4, response.TotalCount)
	assert.InDelta(t, 400.12, response.TotalCosts, 1e-9)
}
