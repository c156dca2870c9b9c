package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/investor"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const insertInvestor = `
	INSERT INTO investors (name, year, amount_idr, note)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
`

func (s *Store) CreateInvestor(ctx context.Context, inv *investor.Investor) error {
	err := s.db.QueryRowContext(ctx, insertInvestor, inv.Name, inv.Year, inv.Amount, inv.Note).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating investor: %w", err)
	}

	return nil
}

func (s *Store) CreateInvestors(ctx context.Context, invs []*investor.Investor) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	for i, inv := range invs {
		err := dbTx.QueryRowContext(ctx, insertInvestor, inv.Name, inv.Year, inv.Amount, inv.Note).
			Scan(&inv.ID, &inv.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating investor %d: %w", i+1, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListInvestors(ctx context.Context, year *int) ([]*investor.Investor, error) {
	query := `
		SELECT id, name, year, amount_idr, note, created_at
		FROM investors
		WHERE ($1::int IS NULL OR year = $1::int)
		ORDER BY created_at DESC, name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("listing investors: %w", err)
	}
	defer rows.Close()

	invs := []*investor.Investor{}

	for rows.Next() {
		var inv investor.Investor
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Year, &inv.Amount, &inv.Note, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning investor: %w", err)
		}

		invs = append(invs, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating investors: %w", err)
	}

	return invs, nil
}

func (s *Store) SummaryByYear(ctx context.Context) ([]investor.YearTotal, error) {
	query := `
		SELECT year, COUNT(*), COALESCE(SUM(amount_idr), 0)::BIGINT
		FROM investors
		GROUP BY year
		ORDER BY year DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing investors: %w", err)
	}
	defer rows.Close()

	totals := []investor.YearTotal{}

	for rows.Next() {
		var yt investor.YearTotal
		if err := rows.Scan(&yt.Year, &yt.Count, &yt.Total); err != nil {
			return nil, fmt.Errorf("scanning year total: %w", err)
		}

		totals = append(totals, yt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating year totals: %w", err)
	}

	return totals, nil
}

func (s *Store) DeleteInvestor(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM investors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting investor: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting investor: %w", err)
	}

	if n == 0 {
		return investor.ErrNotFound
	}

	return nil
}
