package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/buyer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuyer(s scanner) (*buyer.Buyer, error) {
	var b buyer.Buyer

	var phone sql.NullString

	if err := s.Scan(&b.ID, &b.Name, &phone, &b.WAOptIn, &b.Note, &b.CreatedAt); err != nil {
		return nil, err
	}

	b.Phone = phone.String

	return &b, nil
}

const selectBuyerColumns = `id, name, phone_e164, wa_opt_in, note, created_at`

// nullable stores an empty phone as NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

const insertBuyer = `
	INSERT INTO buyers (name, phone_e164, wa_opt_in, note)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
`

func (s *Store) CreateBuyer(ctx context.Context, b *buyer.Buyer) error {
	err := s.db.QueryRowContext(ctx, insertBuyer, b.Name, nullable(b.Phone), b.WAOptIn, b.Note).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating buyer: %w", err)
	}

	return nil
}

// CreateBuyers inserts all rows or none.
func (s *Store) CreateBuyers(ctx context.Context, bs []*buyer.Buyer) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	for i, b := range bs {
		err := dbTx.QueryRowContext(ctx, insertBuyer, b.Name, nullable(b.Phone), b.WAOptIn, b.Note).
			Scan(&b.ID, &b.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating buyer %d: %w", i+1, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetBuyer(ctx context.Context, id uuid.UUID) (*buyer.Buyer, error) {
	query := `SELECT ` + selectBuyerColumns + ` FROM buyers WHERE id = $1`

	b, err := scanBuyer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, buyer.ErrNotFound
		}

		return nil, fmt.Errorf("getting buyer: %w", err)
	}

	return b, nil
}

func (s *Store) ListBuyers(ctx context.Context, q string, limit int) ([]*buyer.Buyer, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if q != "" {
		like := "%" + q + "%"
		rows, err = s.db.QueryContext(ctx, `SELECT `+selectBuyerColumns+`
			FROM buyers
			WHERE name ILIKE $1 OR COALESCE(phone_e164, '') ILIKE $1
			ORDER BY name ASC
			LIMIT $2`, like, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `SELECT `+selectBuyerColumns+`
			FROM buyers
			ORDER BY created_at DESC
			LIMIT $1`, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("listing buyers: %w", err)
	}
	defer rows.Close()

	buyers := []*buyer.Buyer{}

	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning buyer: %w", err)
		}

		buyers = append(buyers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buyers: %w", err)
	}

	return buyers, nil
}

func (s *Store) DeleteBuyer(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM buyers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting buyer: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting buyer: %w", err)
	}

	if n == 0 {
		return buyer.ErrNotFound
	}

	return nil
}
