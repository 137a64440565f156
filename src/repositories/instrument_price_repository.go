package repositories

import (
	"context"

	"strategy/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InstrumentPriceRepository interface {
	// ReplaceAll swaps the whole snapshot table for the given rows in one
	// transaction, so readers never observe a partially-replaced table.
	ReplaceAll(ctx context.Context, prices []models.InstrumentPrice) error
	GetByTicker(ctx context.Context, ticker string) (*models.InstrumentPrice, error)
	MapByTicker(ctx context.Context) (map[string]models.InstrumentPrice, error)
}

type instrumentPriceRepo struct {
	db *pgxpool.Pool
}

func NewInstrumentPriceRepository(db *pgxpool.Pool) InstrumentPriceRepository {
	return &instrumentPriceRepo{db: db}
}

func (r *instrumentPriceRepo) ReplaceAll(ctx context.Context, prices []models.InstrumentPrice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM instrument_prices`); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"instrument_prices"},
		[]string{"ticker", "class_code", "units", "nano", "logo_url"},
		pgx.CopyFromSlice(len(prices), func(i int) ([]any, error) {
			p := prices[i]
			return []any{p.Ticker, p.ClassCode, p.Units, p.Nano, p.LogoURL}, nil
		}))
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *instrumentPriceRepo) GetByTicker(ctx context.Context, ticker string) (*models.InstrumentPrice, error) {
	var p models.InstrumentPrice
	// Ticker is not unique within a snapshot; the newest row wins.
	err := r.db.QueryRow(ctx,
		`SELECT id, ticker, class_code, units, nano, logo_url
		FROM instrument_prices
		WHERE ticker = $1
		ORDER BY id DESC
		LIMIT 1`, ticker,
	).Scan(&p.ID, &p.Ticker, &p.ClassCode, &p.Units, &p.Nano, &p.LogoURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *instrumentPriceRepo) MapByTicker(ctx context.Context) (map[string]models.InstrumentPrice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticker, class_code, units, nano, logo_url
		FROM instrument_prices
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]models.InstrumentPrice)
	for rows.Next() {
		var p models.InstrumentPrice
		if err := rows.Scan(&p.ID, &p.Ticker, &p.ClassCode, &p.Units, &p.Nano, &p.LogoURL); err != nil {
			return nil, err
		}
		prices[p.Ticker] = p
	}
	return prices, rows.Err()
}
