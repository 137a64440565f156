package services

import (
	"context"
	"fmt"
	"strings"

	"strategy/src/models"
	"strategy/src/repositories"
	"strategy/src/schemas"
	"strategy/src/utils"
)

type CandidateServiceI interface {
	GenerateCandidates(ctx context.Context, ownerID int) (*schemas.RefreshResult, error)
}

// CandidateService sizes every dividend event the user has assigned a
// max-part to and rebuilds the owner's candidates table.
type CandidateService struct {
	dividendRepository  repositories.DividendRepository
	candidateRepository repositories.CandidateRepository
	settingsRepository  repositories.SettingsRepository
}

func NewCandidateService(
	dividendRepository repositories.DividendRepository,
	candidateRepository repositories.CandidateRepository,
	settingsRepository repositories.SettingsRepository,
) *CandidateService {
	return &CandidateService{
		dividendRepository:  dividendRepository,
		candidateRepository: candidateRepository,
		settingsRepository:  settingsRepository,
	}
}

func (s *CandidateService) GenerateCandidates(ctx context.Context, ownerID int) (*schemas.RefreshResult, error) {
	logger := utils.LoggerFromContext(ctx)

	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}

	events, err := s.dividendRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dividend events: %w", err)
	}

	var candidates []models.Candidate
	var skipped []string
	for _, event := range events {
		if event.MaxPart == nil || *event.MaxPart == 0 {
			logger.Warnf("no max part configured for %s, skipping", event.Ticker)
			skipped = append(skipped, event.Ticker)
			continue
		}

		count := CandidateCount(settings.AvailableCapital, *event.MaxPart, event.Price, event.Dividend)
		costs := CandidateCosts(event.Price, count, settings.BrokerCommission)
		candidates = append(candidates, models.Candidate{
			Ticker:   event.Ticker,
			Price:    event.Price,
			Count:    count,
			Costs:    costs,
			Share:    CandidateShare(costs, settings.AvailableCapital),
			Dividend: CandidateNetDividend(count, event.Dividend, settings.DividendTax),
			OwnerID:  ownerID,
		})
	}

	if err := s.candidateRepository.ReplaceByOwner(ctx, ownerID, candidates); err != nil {
		return nil, fmt.Errorf("failed to replace candidates: %w", err)
	}

	message := fmt.Sprintf("generated %d candidates", len(candidates))
	if len(skipped) > 0 {
		message = fmt.Sprintf("%s, skipped without max part: %s", message, strings.Join(skipped, ", "))
	}
	return &schemas.RefreshResult{Status: "success", Message: message}, nil
}
