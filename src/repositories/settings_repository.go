package repositories

import (
	"context"

	"strategy/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository interface {
	GetByOwner(ctx context.Context, ownerID int) (*models.UserSettings, error)
	Update(ctx context.Context, settings *models.UserSettings) error
}

type settingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetByOwner(ctx context.Context, ownerID int) (*models.UserSettings, error) {
	var s models.UserSettings
	err := r.db.QueryRow(ctx,
		`SELECT id, available_capital, broker_commission, dividend_tax, central_bank_rate,
			dividends_from_date, dividends_to_date, chat_id, owner_id
		FROM user_settings
		WHERE owner_id = $1`, ownerID,
	).Scan(&s.ID, &s.AvailableCapital, &s.BrokerCommission, &s.DividendTax, &s.CentralBankRate,
		&s.DividendsFromDate, &s.DividendsToDate, &s.ChatID, &s.OwnerID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, settings *models.UserSettings) error {
	_, err := r.db.Exec(ctx,
		`UPDATE user_settings SET
			available_capital = $1,
			broker_commission = $2,
			dividend_tax = $3,
			central_bank_rate = $4,
			dividends_from_date = $5,
			dividends_to_date = $6,
			chat_id = $7
		WHERE owner_id = $8`,
		settings.AvailableCapital, settings.BrokerCommission, settings.DividendTax,
		settings.CentralBankRate, settings.DividendsFromDate, settings.DividendsToDate,
		settings.ChatID, settings.OwnerID)
	return err
}
