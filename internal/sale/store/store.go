package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/sale"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, sale_date, buyer_id, buyer_name, buyer_phone, total_amount,
// total_cost, total_profit, paid_amount, change_amount, wa_status, wa_sent_at, created_at
func scanSale(s scanner) (*sale.Sale, error) {
	var (
		sl        sale.Sale
		status    string
		buyerName sql.NullString
		phone     sql.NullString
	)

	if err := s.Scan(
		&sl.ID, &sl.Date, &sl.BuyerID, &buyerName, &phone,
		&sl.TotalAmount, &sl.TotalCost, &sl.TotalProfit, &sl.Paid, &sl.Change,
		&status, &sl.SentAt, &sl.CreatedAt,
	); err != nil {
		return nil, err
	}

	sl.Status = sale.Status(status)
	sl.BuyerName = buyerName.String
	sl.BuyerPhone = phone.String

	return &sl, nil
}

const selectSaleColumns = `
	s.id, s.sale_date, s.buyer_id, b.name AS buyer_name, b.phone_e164 AS buyer_phone,
	s.total_amount, s.total_cost, s.total_profit, s.paid_amount, s.change_amount,
	s.wa_status, s.wa_sent_at, s.created_at
`

func (s *Store) GetSale(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + `
		FROM sales s
		LEFT JOIN buyers b ON b.id = s.buyer_id
		WHERE s.id = $1`

	sl, err := scanSale(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	lines, err := s.lines(ctx, id)
	if err != nil {
		return nil, err
	}

	sl.Lines = lines

	return sl, nil
}

func (s *Store) lines(ctx context.Context, saleID uuid.UUID) ([]sale.Line, error) {
	query := `
		SELECT id, sale_id, item_name, cost_price, sale_price, qty, line_total, line_cost, line_profit, created_at
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("listing sale lines: %w", err)
	}
	defer rows.Close()

	lines := []sale.Line{}

	for rows.Next() {
		var l sale.Line
		if err := rows.Scan(
			&l.ID, &l.SaleID, &l.Name, &l.CostPrice, &l.SalePrice, &l.Qty,
			&l.Total, &l.Cost, &l.Profit, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning sale line: %w", err)
		}

		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale lines: %w", err)
	}

	return lines, nil
}

func (s *Store) ListSales(ctx context.Context, r period.Range, limit int) ([]*sale.Sale, error) {
	from, to := r.Args()

	query := `SELECT ` + selectSaleColumns + `
		FROM sales s
		LEFT JOIN buyers b ON b.id = s.buyer_id
		WHERE ($1::date IS NULL OR s.sale_date >= $1::date)
		  AND ($2::date IS NULL OR s.sale_date <= $2::date)
		ORDER BY s.sale_date DESC, s.created_at DESC
		LIMIT $3`

	return s.list(ctx, query, from, to, limit)
}

func (s *Store) ListByStatus(ctx context.Context, status sale.Status, limit int) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + `
		FROM sales s
		LEFT JOIN buyers b ON b.id = s.buyer_id
		WHERE s.wa_status = $1
		ORDER BY s.sale_date ASC, s.created_at ASC
		LIMIT $2`

	return s.list(ctx, query, string(status), limit)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*sale.Sale, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	sales := []*sale.Sale{}

	for rows.Next() {
		sl, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}

	return sales, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status sale.Status, sentAt *time.Time) error {
	query := `
		UPDATE sales
		SET wa_status = $1, wa_sent_at = COALESCE($2, wa_sent_at)
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, string(status), sentAt, id)
	if err != nil {
		return fmt.Errorf("updating receipt status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating receipt status: %w", err)
	}

	if n == 0 {
		return sale.ErrNotFound
	}

	return nil
}

type recordTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRecord(ctx context.Context) (sale.RecordTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning record tx: %w", err)
	}

	return &recordTx{tx: dbTx}, nil
}

func (rtx *recordTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *recordTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *recordTx) BuyerContact(ctx context.Context, id uuid.UUID) (*sale.Contact, error) {
	var c sale.Contact

	var phone sql.NullString

	err := rtx.tx.QueryRowContext(ctx, `SELECT name, phone_e164 FROM buyers WHERE id = $1`, id).
		Scan(&c.Name, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting buyer contact: %w", err)
	}

	c.Phone = phone.String

	return &c, nil
}

func (rtx *recordTx) InsertSale(ctx context.Context, sl *sale.Sale) error {
	query := `
		INSERT INTO sales (sale_date, buyer_id, total_amount, total_cost, total_profit,
			paid_amount, change_amount, wa_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := rtx.tx.QueryRowContext(ctx, query,
		sl.Date,
		sl.BuyerID,
		sl.TotalAmount,
		sl.TotalCost,
		sl.TotalProfit,
		sl.Paid,
		sl.Change,
		string(sl.Status),
	).Scan(&sl.ID, &sl.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating sale: %w", err)
	}

	return nil
}

func (rtx *recordTx) InsertLines(ctx context.Context, saleID uuid.UUID, lines []sale.Line) error {
	query := `
		INSERT INTO sale_items (sale_id, item_name, cost_price, sale_price, qty,
			line_total, line_cost, line_profit, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	for i := range lines {
		l := &lines[i]

		err := rtx.tx.QueryRowContext(ctx, query,
			saleID,
			l.Name,
			l.CostPrice,
			l.SalePrice,
			l.Qty,
			l.Total,
			l.Cost,
			l.Profit,
			i,
		).Scan(&l.ID, &l.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating sale line %d: %w", i, err)
		}
	}

	return nil
}
