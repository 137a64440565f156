package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"strategy/src/models"
	"strategy/src/repositories"
	"strategy/src/schemas"
	"strategy/src/utils"
)

const dateLayout = "2006-01-02"

type PortfolioServiceI interface {
	RegisterUser(ctx context.Context, username string) (*models.User, error)
	GetSettings(ctx context.Context, ownerID int) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, ownerID int, update *schemas.SettingsUpdate) (*models.UserSettings, error)
	AddHolding(ctx context.Context, ownerID int, req *schemas.NewHoldingRequest) (*models.Holding, error)
	RemoveHolding(ctx context.Context, id int) error
	UpdateHoldingField(ctx context.Context, id int, field, value string) error
	SetEventPriority(ctx context.Context, id int, priority int) error
}

// PortfolioService covers account registration and the manual edits a user
// makes between refresh cycles: tracked positions, strategy settings and
// dividend event priorities.
type PortfolioService struct {
	userRepository     repositories.UserRepository
	settingsRepository repositories.SettingsRepository
	holdingRepository  repositories.HoldingRepository
	dividendRepository repositories.DividendRepository
}

func NewPortfolioService(
	userRepository repositories.UserRepository,
	settingsRepository repositories.SettingsRepository,
	holdingRepository repositories.HoldingRepository,
	dividendRepository repositories.DividendRepository,
) *PortfolioService {
	return &PortfolioService{
		userRepository:     userRepository,
		settingsRepository: settingsRepository,
		holdingRepository:  holdingRepository,
		dividendRepository: dividendRepository,
	}
}

func (s *PortfolioService) RegisterUser(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, utils.BadRequest("username is required")
	}

	user := &models.User{Username: username}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *PortfolioService) GetSettings(ctx context.Context, ownerID int) (*models.UserSettings, error) {
	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}
	return settings, nil
}

func (s *PortfolioService) UpdateSettings(ctx context.Context, ownerID int, update *schemas.SettingsUpdate) (*models.UserSettings, error) {
	settings, err := s.settingsRepository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w for owner %d", ErrSettingsNotFound, ownerID)
	}

	if update.AvailableCapital != nil {
		if *update.AvailableCapital <= 0 {
			return nil, utils.BadRequest("available capital must be positive")
		}
		settings.AvailableCapital = *update.AvailableCapital
	}
	if update.BrokerCommission != nil {
		if *update.BrokerCommission < 0 {
			return nil, utils.BadRequest("broker commission must not be negative")
		}
		settings.BrokerCommission = *update.BrokerCommission
	}
	if update.DividendTax != nil {
		if *update.DividendTax < 0 || *update.DividendTax > 100 {
			return nil, utils.BadRequest("dividend tax must be between 0 and 100")
		}
		settings.DividendTax = *update.DividendTax
	}
	if update.CentralBankRate != nil {
		if *update.CentralBankRate < 0 {
			return nil, utils.BadRequest("central bank rate must not be negative")
		}
		settings.CentralBankRate = *update.CentralBankRate
	}
	if update.DividendsFromDate != nil {
		from, err := time.Parse(dateLayout, *update.DividendsFromDate)
		if err != nil {
			return nil, utils.BadRequest("dividendsFromDate must use the 2006-01-02 layout")
		}
		settings.DividendsFromDate = from
	}
	if update.DividendsToDate != nil {
		to, err := time.Parse(dateLayout, *update.DividendsToDate)
		if err != nil {
			return nil, utils.BadRequest("dividendsToDate must use the 2006-01-02 layout")
		}
		settings.DividendsToDate = to
	}
	if settings.DividendsToDate.Before(settings.DividendsFromDate) {
		return nil, utils.BadRequest("dividend window end must not precede its start")
	}
	if update.ChatID != nil {
		settings.ChatID = *update.ChatID
	}

	if err := s.settingsRepository.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

func (s *PortfolioService) AddHolding(ctx context.Context, ownerID int, req *schemas.NewHoldingRequest) (*models.Holding, error) {
	if strings.TrimSpace(req.Ticker) == "" {
		return nil, utils.BadRequest("ticker is required")
	}
	if req.BuyPrice <= 0 {
		return nil, utils.BadRequest("buy price must be positive")
	}
	if req.BuyCount <= 0 {
		return nil, utils.BadRequest("buy count must be positive")
	}
	buyDate, err := time.Parse(dateLayout, req.BuyDate)
	if err != nil {
		return nil, utils.BadRequest("buyDate must use the 2006-01-02 layout")
	}
	if _, err := s.userRepository.GetByID(ctx, ownerID); err != nil {
		return nil, utils.NotFound(fmt.Sprintf("user %d not found", ownerID))
	}

	holding := &models.Holding{
		Ticker:      strings.ToUpper(strings.TrimSpace(req.Ticker)),
		BuyPrice:    req.BuyPrice,
		BuyCount:    req.BuyCount,
		BuyDate:     buyDate,
		TargetPrice: req.TargetPrice,
		OwnerID:     ownerID,
	}
	if err := s.holdingRepository.Create(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}
	return holding, nil
}

func (s *PortfolioService) RemoveHolding(ctx context.Context, id int) error {
	if err := s.holdingRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holding %d: %w", id, err)
	}
	return nil
}

// UpdateHoldingField applies a single-field edit. The field set is closed:
// anything outside it is rejected before touching the database.
func (s *PortfolioService) UpdateHoldingField(ctx context.Context, id int, field, value string) error {
	switch field {
	case "buy_price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price <= 0 {
			return utils.BadRequest("buy_price must be a positive number")
		}
		return s.holdingRepository.UpdateBuyPrice(ctx, id, price)
	case "buy_count":
		count, err := strconv.Atoi(value)
		if err != nil || count <= 0 {
			return utils.BadRequest("buy_count must be a positive integer")
		}
		return s.holdingRepository.UpdateBuyCount(ctx, id, count)
	case "buy_date":
		date, err := time.Parse(dateLayout, value)
		if err != nil {
			return utils.BadRequest("buy_date must use the 2006-01-02 layout")
		}
		return s.holdingRepository.UpdateBuyDate(ctx, id, date)
	case "target_price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price <= 0 {
			return utils.BadRequest("target_price must be a positive number")
		}
		return s.holdingRepository.UpdateTargetPrice(ctx, id, price)
	default:
		return utils.BadRequest(fmt.Sprintf("unknown field %q", field))
	}
}

func (s *PortfolioService) SetEventPriority(ctx context.Context, id int, priority int) error {
	if priority != 1 && priority != 3 && priority != 5 {
		return utils.BadRequest("priority must be 1, 3 or 5")
	}
	if err := s.dividendRepository.SetPriority(ctx, id, priority); err != nil {
		return fmt.Errorf("failed to set priority for event %d: %w", id, err)
	}
	return nil
}
