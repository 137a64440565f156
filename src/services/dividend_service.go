package services

import (
	"context"
	"fmt"

	"strategy/src/clients/tinvest"
	"strategy/src/models"
	"strategy/src/repositories"
	"strategy/src/schemas"
	"strategy/src/utils"
)

// snapshotCurrency is the only currency the strategy trades in; instruments
// and dividend payouts in anything else are ignored.
const snapshotCurrency = "rub"

type DividendServiceI interface {
	RefreshDividends(ctx context.Context, ownerID int) (*schemas.RefreshResult, error)
}

// DividendService rebuilds one owner's dividend_events table from the
// brokerage dividend calendar, restricted to the owner's date window.
type DividendService struct {
	token string

	market             tinvest.ServiceClientI
	priceRepository    repositories.InstrumentPriceRepository
	dividendRepository repositories.DividendRepository
	settingsRepository repositories.SettingsRepository
}

func NewDividendService(
	token string,
	market tinvest.ServiceClientI,
	priceRepository repositories.InstrumentPriceRepository,
	dividendRepository repositories.DividendRepository,
	settingsRepository repositories.SettingsRepository,
) *DividendService {
	return &DividendService{
		token:              token,
		market:             market,
		priceRepository:    priceRepository,
		dividendRepository: dividendRepository,
		settingsRepository: settingsRepository,
	}
}

func (s *DividendService) RefreshDividends(ctx context.Context, ownerID int) (*schemas.RefreshResult, error) {
	logger := utils.LoggerFromContext(ctx)

	if s.token == "" {
		return nil, ErrTokenNotConfigured
	}

	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}

	shares, err := s.market.Shares(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	logger.Infof("found %d instruments", len(shares))

	snapshot, err := s.priceRepository.MapByTicker(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price snapshot: %w", err)
	}

	// Only instruments in the strategy currency that have a snapshot price.
	type priced struct {
		share tinvest.Share
		price float64
	}
	var candidates []priced
	for _, share := range shares {
		if share.Currency != snapshotCurrency {
			continue
		}
		row, ok := snapshot[share.Ticker]
		if !ok {
			continue
		}
		candidates = append(candidates, priced{share: share, price: row.Price()})
	}
	logger.Infof("checking dividends for %d %s instruments", len(candidates), snapshotCurrency)

	from := settings.DividendsFromDate
	to := settings.DividendsToDate
	var events []models.DividendEvent
	for _, c := range candidates {
		dividends, err := s.market.Dividends(ctx, c.share.FIGI, from, to)
		if err != nil {
			logger.Errorf("failed to fetch dividends for %s: %v", c.share.Ticker, err)
			continue
		}
		if len(dividends) == 0 {
			continue
		}

		// Only the first event in the range is used.
		first := dividends[0]
		if first.DividendNet.Currency != snapshotCurrency {
			continue
		}
		payday := first.LastBuyDate
		if payday.Before(from) || payday.After(to) {
			continue
		}

		dividend := first.DividendNet.Value()
		events = append(events, models.DividendEvent{
			Ticker:        c.share.Ticker,
			CompanyName:   c.share.Name,
			Payday:        payday,
			Dividend:      dividend,
			Profitability: dividend / c.price * 100,
			Price:         c.price,
			OwnerID:       ownerID,
		})
	}

	logger.Infof("persisting %d dividend events for owner %d", len(events), ownerID)
	if err := s.dividendRepository.ReplaceByOwner(ctx, ownerID, events); err != nil {
		return nil, fmt.Errorf("failed to replace dividend events: %w", err)
	}

	return &schemas.RefreshResult{
		Status:  "success",
		Message: fmt.Sprintf("found %d dividend events between %s and %s", len(events), from.Format("2006-01-02"), to.Format("2006-01-02")),
	}, nil
}
