package repositories

import (
	"context"

	"strategy/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CandidateRepository interface {
	ReplaceByOwner(ctx context.Context, ownerID int, candidates []models.Candidate) error
	ListByOwner(ctx context.Context, ownerID int) ([]models.Candidate, error)
}

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) ReplaceByOwner(ctx context.Context, ownerID int, candidates []models.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM candidates WHERE owner_id = $1`, ownerID); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"candidates"},
		[]string{"ticker", "price", "count", "costs", "share", "dividend", "owner_id"},
		pgx.CopyFromSlice(len(candidates), func(i int) ([]any, error) {
			c := candidates[i]
			return []any{c.Ticker, c.Price, c.Count, c.Costs, c.Share, c.Dividend, ownerID}, nil
		}))
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *candidateRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticker, price, count, costs, share, dividend, owner_id
		FROM candidates
		WHERE owner_id = $1
		ORDER BY share DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Ticker, &c.Price, &c.Count, &c.Costs, &c.Share, &c.Dividend, &c.OwnerID); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
