package services

import (
	"context"
	"fmt"
	"time"

	"strategy/src/repositories"
	"strategy/src/schemas"
	"strategy/src/utils"
)

type DashboardServiceI interface {
	GetDashboard(ctx context.Context, ownerID int) (*schemas.DashboardResponse, error)
	GetDividends(ctx context.Context, ownerID int) (*schemas.DividendsResponse, error)
	GetCandidates(ctx context.Context, ownerID int) (*schemas.CandidatesResponse, error)
}

// DashboardService assembles the read contracts consumed by the web layer.
type DashboardService struct {
	holdingRepository   repositories.HoldingRepository
	priceRepository     repositories.InstrumentPriceRepository
	dividendRepository  repositories.DividendRepository
	candidateRepository repositories.CandidateRepository
	settingsRepository  repositories.SettingsRepository
}

func NewDashboardService(
	holdingRepository repositories.HoldingRepository,
	priceRepository repositories.InstrumentPriceRepository,
	dividendRepository repositories.DividendRepository,
	candidateRepository repositories.CandidateRepository,
	settingsRepository repositories.SettingsRepository,
) *DashboardService {
	return &DashboardService{
		holdingRepository:   holdingRepository,
		priceRepository:     priceRepository,
		dividendRepository:  dividendRepository,
		candidateRepository: candidateRepository,
		settingsRepository:  settingsRepository,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, ownerID int) (*schemas.DashboardResponse, error) {
	logger := utils.LoggerFromContext(ctx)

	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}

	holdings, err := s.holdingRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.priceRepository.MapByTicker(ctx)
	if err != nil {
		return nil, err
	}

	response := &schemas.DashboardResponse{TotalAssets: len(holdings)}
	today := time.Now()
	for _, holding := range holdings {
		if row, ok := snapshot[holding.Ticker]; ok {
			last := row.Price()
			if err := s.holdingRepository.UpdateCurrentPrice(ctx, holding.ID, last); err != nil {
				logger.Errorf("failed to store current price for %s: %v", holding.Ticker, err)
			}
			holding.CurrentPrice = last
		}

		logoURL := snapshot[holding.Ticker].LogoURL
		months := HoldingMonths(holding.BuyDate, today)
		diff := PriceDiff(holding.CurrentPrice, holding.BuyPrice, holding.BuyCount)
		expected := ExpectedPriceByKeyRate(holding.BuyPrice, settings.CentralBankRate, months)

		response.Rows = append(response.Rows, schemas.DashboardRow{
			LogoURL:       logoURL,
			BuyPrice:      holding.BuyPrice,
			BuyCount:      holding.BuyCount,
			BuyDate:       holding.BuyDate,
			HoldingMonths: months,
			CurrentPrice:  holding.CurrentPrice,
			PriceDiff:     diff,
			ExpectedPrice: expected,
			CanSell:       CanSell(holding.CurrentPrice, expected, holding.TargetPrice),
			TargetPrice:   holding.TargetPrice,
			IsDanger:      IsDanger(expected, holding.TargetPrice),
			ID:            holding.ID,
		})

		response.TotalPrice += holding.CurrentPrice * float64(holding.BuyCount)
		response.TotalProfit += diff
		if months > response.MaxHoldingMonths {
			response.MaxHoldingMonths = months
		}
	}
	return response, nil
}

func (s *DashboardService) GetDividends(ctx context.Context, ownerID int) (*schemas.DividendsResponse, error) {
	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}

	events, err := s.dividendRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.priceRepository.MapByTicker(ctx)
	if err != nil {
		return nil, err
	}

	response := &schemas.DividendsResponse{
		DateFrom: settings.DividendsFromDate,
		DateTo:   settings.DividendsToDate,
	}
	for _, event := range events {
		response.Rows = append(response.Rows, schemas.DividendRow{
			LogoURL:       snapshot[event.Ticker].LogoURL,
			CompanyName:   event.CompanyName,
			Payday:        event.Payday,
			Dividend:      event.Dividend,
			Profitability: event.Profitability,
			Price:         event.Price,
			Priority:      event.Priority,
			MaxPart:       event.MaxPart,
			ID:            event.ID,
			Ticker:        event.Ticker,
		})
	}
	return response, nil
}

func (s *DashboardService) GetCandidates(ctx context.Context, ownerID int) (*schemas.CandidatesResponse, error) {
	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}

	candidates, err := s.candidateRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.priceRepository.MapByTicker(ctx)
	if err != nil {
		return nil, err
	}

	response := &schemas.CandidatesResponse{
		DateFrom: settings.DividendsFromDate,
		DateTo:   settings.DividendsToDate,
	}
	for _, candidate := range candidates {
		if candidate.Count == 0 {
			continue
		}
		response.Rows = append(response.Rows, schemas.CandidateRow{
			LogoURL:  snapshot[candidate.Ticker].LogoURL,
			Ticker:   candidate.Ticker,
			Price:    candidate.Price,
			Count:    candidate.Count,
			Costs:    candidate.Costs,
			Share:    candidate.Share,
			Dividend: candidate.Dividend,
		})
		response.TotalCount += candidate.Count
		response.TotalCosts += candidate.Costs
		response.TotalShare += candidate.Share
		response.TotalDividend += candidate.Dividend
	}
	return response, nil
}
