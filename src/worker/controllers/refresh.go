package controllers

import (
	"context"

	"strategy/src/schemas"
)

// RefreshAssets runs one full price-refresh cycle.
func (c *Controller) RefreshAssets(ctx context.Context) (*schemas.RefreshResult, error) {
	return c.RefreshService.RefreshAssets(ctx)
}

// RefreshDividends rebuilds the owner's dividend events.
func (c *Controller) RefreshDividends(ctx context.Context, userID int) (*schemas.RefreshResult, error) {
	return c.DividendService.RefreshDividends(ctx, userID)
}

// GenerateCandidates rebuilds the owner's sized candidates.
func (c *Controller) GenerateCandidates(ctx context.Context, userID int) (*schemas.RefreshResult, error) {
	return c.CandidateService.GenerateCandidates(ctx, userID)
}

// ResetCounter zeroes the shared API request counter.
func (c *Controller) ResetCounter(ctx context.Context) error {
	return c.Limiter.Reset(ctx)
}

// Dashboard returns the holdings view for one owner.
func (c *Controller) Dashboard(ctx context.Context, userID int) (*schemas.DashboardResponse, error) {
	return c.DashboardService.GetDashboard(ctx, userID)
}

// Dividends returns the dividend events view for one owner.
func (c *Controller) Dividends(ctx context.Context, userID int) (*schemas.DividendsResponse, error) {
	return c.DashboardService.GetDividends(ctx, userID)
}

// Candidates returns the candidates view for one owner.
func (c *Controller) Candidates(ctx context.Context, userID int) (*schemas.CandidatesResponse, error) {
	return c.DashboardService.GetCandidates(ctx, userID)
}
