package repositories

import (
	"context"
	"fmt"

	"strategy/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// priorityToMaxPart is the closed mapping from a user-picked priority to the
// maximum share of capital for one candidate.
var priorityToMaxPart = map[int]int{
	1: 1,
	3: 10,
	5: 20,
}

type DividendRepository interface {
	// ReplaceByOwner swaps the owner's dividend rows for the given set in one
	// transaction.
	ReplaceByOwner(ctx context.Context, ownerID int, events []models.DividendEvent) error
	ListByOwner(ctx context.Context, ownerID int) ([]models.DividendEvent, error)
	// SetPriority stores the priority and its derived max-part. Only 1, 3 and
	// 5 are accepted.
	SetPriority(ctx context.Context, id int, priority int) error
}

type dividendRepo struct {
	db *pgxpool.Pool
}

func NewDividendRepository(db *pgxpool.Pool) DividendRepository {
	return &dividendRepo{db: db}
}

func (r *dividendRepo) ReplaceByOwner(ctx context.Context, ownerID int, events []models.DividendEvent) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM dividend_events WHERE owner_id = $1`, ownerID); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"dividend_events"},
		[]string{"ticker", "company_name", "payday", "dividend", "profitability", "price", "priority", "max_part", "owner_id"},
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			e := events[i]
			return []any{e.Ticker, e.CompanyName, e.Payday, e.Dividend, e.Profitability, e.Price, e.Priority, e.MaxPart, ownerID}, nil
		}))
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *dividendRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.DividendEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticker, company_name, payday, dividend, profitability, price, priority, max_part, owner_id
		FROM dividend_events
		WHERE owner_id = $1
		ORDER BY profitability DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.DividendEvent
	for rows.Next() {
		var e models.DividendEvent
		if err := rows.Scan(&e.ID, &e.Ticker, &e.CompanyName, &e.Payday, &e.Dividend,
			&e.Profitability, &e.Price, &e.Priority, &e.MaxPart, &e.OwnerID); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *dividendRepo) SetPriority(ctx context.Context, id int, priority int) error {
	maxPart, ok := priorityToMaxPart[priority]
	if !ok {
		return fmt.Errorf("priority must be 1, 3 or 5, got %d", priority)
	}
	_, err := r.db.Exec(ctx,
		`UPDATE dividend_events SET priority = $1, max_part = $2 WHERE id = $3`,
		priority, maxPart, id)
	return err
}
