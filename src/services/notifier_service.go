package services

import (
	"context"
	"fmt"
	"time"

	"strategy/src/clients/telegram"
	"strategy/src/repositories"
	"strategy/src/utils"
)

type NotifierServiceI interface {
	Run(ctx context.Context) error
}

// NotifierService scans holdings for sell and danger conditions and messages
// the owner's chat. The notified flag is the only dedup: it is set on a
// delivered message and cleared once the condition goes away.
type NotifierService struct {
	holdingRepository  repositories.HoldingRepository
	settingsRepository repositories.SettingsRepository
	bot                telegram.BotClientI
}

func NewNotifierService(
	holdingRepository repositories.HoldingRepository,
	settingsRepository repositories.SettingsRepository,
	bot telegram.BotClientI,
) *NotifierService {
	return &NotifierService{
		holdingRepository:  holdingRepository,
		settingsRepository: settingsRepository,
		bot:                bot,
	}
}

func (s *NotifierService) Run(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	holdings, err := s.holdingRepository.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list holdings: %w", err)
	}

	today := time.Now()
	for _, holding := range holdings {
		settings, err := s.settingsRepository.GetByOwner(ctx, holding.OwnerID)
		if err != nil {
			logger.Errorf("no settings for owner %d: %v", holding.OwnerID, err)
			continue
		}

		months := HoldingMonths(holding.BuyDate, today)
		expected := ExpectedPriceByKeyRate(holding.BuyPrice, settings.CentralBankRate, months)
		canSell := CanSell(holding.CurrentPrice, expected, holding.TargetPrice)
		danger := IsDanger(expected, holding.TargetPrice)

		switch {
		case canSell || danger:
			if holding.Notified || settings.ChatID == 0 {
				continue
			}
			text := fmt.Sprintf("Stock %s can be sold!", holding.Ticker)
			if err := s.bot.SendMessage(ctx, settings.ChatID, text); err != nil {
				// Leave the flag unset so the next cycle retries.
				logger.Errorf("failed to notify owner %d about %s: %v", holding.OwnerID, holding.Ticker, err)
				continue
			}
			if err := s.holdingRepository.SetNotified(ctx, holding.ID, true); err != nil {
				logger.Errorf("failed to mark %s as notified: %v", holding.Ticker, err)
			}
		case holding.Notified:
			if err := s.holdingRepository.SetNotified(ctx, holding.ID, false); err != nil {
				logger.Errorf("failed to clear notified flag for %s: %v", holding.Ticker, err)
			}
		}
	}
	return nil
}
