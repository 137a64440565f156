package repositories

import (
	"context"
	"time"

	"strategy/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	ListAll(ctx context.Context) ([]models.Holding, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Holding, error)
	Create(ctx context.Context, h *models.Holding) error
	Delete(ctx context.Context, id int) error
	UpdateCurrentPrice(ctx context.Context, id int, price float64) error
	SetNotified(ctx context.Context, id int, notified bool) error

	// Closed set of user-updatable fields, one typed setter each.
	UpdateBuyPrice(ctx context.Context, id int, price float64) error
	UpdateBuyCount(ctx context.Context, id int, count int) error
	UpdateBuyDate(ctx context.Context, id int, date time.Time) error
	UpdateTargetPrice(ctx context.Context, id int, price float64) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

const holdingColumns = `id, ticker, buy_price, buy_count, buy_date, current_price, target_price, notified, owner_id`

func (r *holdingRepo) scanRows(rows pgx.Rows) ([]models.Holding, error) {
	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.Ticker, &h.BuyPrice, &h.BuyCount, &h.BuyDate,
			&h.CurrentPrice, &h.TargetPrice, &h.Notified, &h.OwnerID); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepo) ListAll(ctx context.Context) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+` FROM holdings ORDER BY buy_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *holdingRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE owner_id = $1 ORDER BY buy_date`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO holdings (ticker, buy_price, buy_count, buy_date, current_price, target_price, notified, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		h.Ticker, h.BuyPrice, h.BuyCount, h.BuyDate, h.CurrentPrice, h.TargetPrice, h.Notified, h.OwnerID,
	).Scan(&h.ID)
}

func (r *holdingRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM holdings WHERE id = $1`, id)
	return err
}

func (r *holdingRepo) UpdateCurrentPrice(ctx context.Context, id int, price float64) error {
	_, err := r.db.Exec(ctx, `UPDATE holdings SET current_price = $1 WHERE id = $2`, price, id)
	return err
}

func (r *holdingRepo) SetNotified(ctx context.Context, id int, notified bool) error {
	_, err := r.db.Exec(ctx, `UPDATE holdings SET notified = $1 WHERE id = $2`, notified, id)
	return err
}

func (r *holdingRepo) UpdateBuyPrice(ctx context.Context, id int, price float64) error {
	_, err := r.db.Exec(ctx, `UPDATE holdings SET buy_price = $1 WHERE id = $2`, price, id)
	return err
}

func (r *holdingRepo) UpdateBuyCount(ctx context.Context, id int, count int) error {
	_, err := r.db.Exec(ctx, `UPDATE holdings SET buy_count = $1 WHERE id = $2`, count, id)
	return err
}

func (r *holdingRepo) UpdateBuyDate(ctx context.Context, id int, date time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE holdings SET buy_date = $1 WHERE id = $2`, date, id)
	return err
}

func (r *holdingRepo) UpdateTargetPrice(ctx context.Context, id int, price float64) error {
	_, err := r.db.Exec(ctx, `UPDATE holdings SET target_price = $1 WHERE id = $2`, price, id)
	return err
}
