package controllers

import (
	"context"

	"strategy/src/models"
	"strategy/src/schemas"
)

func settingsResponse(s *models.UserSettings) *schemas.SettingsResponse {
	return &schemas.SettingsResponse{
		AvailableCapital:  s.AvailableCapital,
		BrokerCommission:  s.BrokerCommission,
		DividendTax:       s.DividendTax,
		CentralBankRate:   s.CentralBankRate,
		DividendsFromDate: s.DividendsFromDate.Format("2006-01-02"),
		DividendsToDate:   s.DividendsToDate.Format("2006-01-02"),
		ChatID:            s.ChatID,
	}
}

// CreateUser registers an account with default strategy settings.
func (c *Controller) CreateUser(ctx context.Context, username string) (*schemas.UserResponse, error) {
	user, err := c.PortfolioService.RegisterUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return &schemas.UserResponse{ID: user.ID, Username: user.Username}, nil
}

func (c *Controller) Settings(ctx context.Context, userID int) (*schemas.SettingsResponse, error) {
	settings, err := c.PortfolioService.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return settingsResponse(settings), nil
}

func (c *Controller) UpdateSettings(ctx context.Context, userID int, update *schemas.SettingsUpdate) (*schemas.SettingsResponse, error) {
	settings, err := c.PortfolioService.UpdateSettings(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	return settingsResponse(settings), nil
}

func (c *Controller) AddHolding(ctx context.Context, userID int, req *schemas.NewHoldingRequest) (int, error) {
	holding, err := c.PortfolioService.AddHolding(ctx, userID, req)
	if err != nil {
		return 0, err
	}
	return holding.ID, nil
}

func (c *Controller) RemoveHolding(ctx context.Context, holdingID int) error {
	return c.PortfolioService.RemoveHolding(ctx, holdingID)
}

func (c *Controller) UpdateHoldingField(ctx context.Context, holdingID int, update *schemas.HoldingFieldUpdate) error {
	return c.PortfolioService.UpdateHoldingField(ctx, holdingID, update.Field, update.Value)
}

func (c *Controller) SetEventPriority(ctx context.Context, eventID int, priority int) error {
	return c.PortfolioService.SetEventPriority(ctx, eventID, priority)
}
