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

type RefreshServiceI interface {
	RefreshAssets(ctx context.Context) (*schemas.RefreshResult, error)
}

// RefreshService runs one full price-refresh cycle: list instruments, fetch
// last prices in batches, replace the snapshot table, update holding prices,
// then hand over to the notifier.
type RefreshService struct {
	token string

	market            tinvest.ServiceClientI
	priceRepository   repositories.InstrumentPriceRepository
	holdingRepository repositories.HoldingRepository
	notifier          NotifierServiceI
}

func NewRefreshService(
	token string,
	market tinvest.ServiceClientI,
	priceRepository repositories.InstrumentPriceRepository,
	holdingRepository repositories.HoldingRepository,
	notifier NotifierServiceI,
) *RefreshService {
	return &RefreshService{
		token:             token,
		market:            market,
		priceRepository:   priceRepository,
		holdingRepository: holdingRepository,
		notifier:          notifier,
	}
}

func (s *RefreshService) RefreshAssets(ctx context.Context) (*schemas.RefreshResult, error) {
	logger := utils.LoggerFromContext(ctx)

	if s.token == "" {
		return nil, ErrTokenNotConfigured
	}

	logger.Info("starting instrument refresh")
	shares, err := s.market.Shares(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	if len(shares) == 0 {
		logger.Warn("no instruments returned, nothing to refresh")
		return &schemas.RefreshResult{Status: "success", Message: "no instruments found"}, nil
	}
	logger.Infof("found %d instruments", len(shares))

	figis := make([]string, 0, len(shares))
	figiToShare := make(map[string]tinvest.Share, len(shares))
	for _, share := range shares {
		if share.Ticker == "" || share.FIGI == "" {
			continue
		}
		figis = append(figis, share.FIGI)
		figiToShare[share.FIGI] = share
	}

	var rows []models.InstrumentPrice
	failedBatches := 0
	for i := 0; i < len(figis); i += tinvest.BatchSize {
		end := i + tinvest.BatchSize
		if end > len(figis) {
			end = len(figis)
		}
		batch := figis[i:end]

		prices, err := s.market.LastPrices(ctx, batch)
		if err != nil {
			// A failed batch is logged and skipped; the rest of the job
			// continues.
			logger.Errorf("failed to fetch prices for batch %d: %v", i/tinvest.BatchSize, err)
			failedBatches++
			continue
		}

		for _, figi := range batch {
			share := figiToShare[figi]
			price, ok := prices[figi]
			if !ok {
				logger.Warnf("price not found for %s", share.Ticker)
				continue
			}
			rows = append(rows, models.InstrumentPrice{
				Ticker:    share.Ticker,
				ClassCode: share.ClassCode,
				Units:     price.Units,
				Nano:      price.Nano,
				LogoURL:   tinvest.LogoURL(share.Brand),
			})
		}
	}

	logger.Infof("persisting %d price rows", len(rows))
	if err := s.priceRepository.ReplaceAll(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to replace price snapshot: %w", err)
	}

	if err := s.updateHoldingPrices(ctx, rows); err != nil {
		return nil, err
	}

	if err := s.notifier.Run(ctx); err != nil {
		logger.Errorf("notifier pass failed: %v", err)
	}

	message := fmt.Sprintf("refreshed %d instruments", len(rows))
	if failedBatches > 0 {
		message = fmt.Sprintf("%s (%d batches failed)", message, failedBatches)
	}
	return &schemas.RefreshResult{Status: "success", Message: message}, nil
}

// updateHoldingPrices rewrites every holding's current price from the fresh
// snapshot. Within one snapshot the last row per ticker wins.
func (s *RefreshService) updateHoldingPrices(ctx context.Context, rows []models.InstrumentPrice) error {
	logger := utils.LoggerFromContext(ctx)

	byTicker := make(map[string]models.InstrumentPrice, len(rows))
	for _, row := range rows {
		byTicker[row.Ticker] = row
	}

	holdings, err := s.holdingRepository.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list holdings: %w", err)
	}
	for _, holding := range holdings {
		price, ok := byTicker[holding.Ticker]
		if !ok {
			logger.Warnf("no snapshot price for holding %s", holding.Ticker)
			continue
		}
		if err := s.holdingRepository.UpdateCurrentPrice(ctx, holding.ID, price.Price()); err != nil {
			return fmt.Errorf("failed to update current price for %s: %w", holding.Ticker, err)
		}
	}
	return nil
}
