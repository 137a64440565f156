package repositories

import (
	"context"

	"strategy/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

// Create inserts the user together with its default settings row, in one
// transaction.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ($1) RETURNING id, created_at`,
		user.Username,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}

	settings := models.DefaultSettings(user.ID)
	_, err = tx.Exec(ctx,
		`INSERT INTO user_settings
			(available_capital, broker_commission, dividend_tax, central_bank_rate,
			 dividends_from_date, dividends_to_date, chat_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		settings.AvailableCapital, settings.BrokerCommission, settings.DividendTax,
		settings.CentralBankRate, settings.DividendsFromDate, settings.DividendsToDate,
		settings.ChatID, settings.OwnerID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, created_at FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
