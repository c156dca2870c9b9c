package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/waserda/kasir/internal/database"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func wrap(verb string, err error) error {
	if database.IsUndefinedObject(err) {
		return fmt.Errorf("%s: %w: %w", verb, report.ErrUnavailable, err)
	}

	return fmt.Errorf("%s: %w", verb, err)
}

func (s *Store) ProfitTotal(ctx context.Context, r period.Range) (int64, error) {
	from, to := r.Args()

	var total sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		`SELECT total_laba FROM f_profit_sharing($1::date, $2::date)`, from, to,
	).Scan(&total)
	if err != nil {
		return 0, wrap("reading profit sharing", err)
	}

	return total.Int64, nil
}

func (s *Store) SumProfit(ctx context.Context, r period.Range) (int64, error) {
	from, to := r.Args()

	query := `
		SELECT COALESCE(SUM(total_profit), 0)::BIGINT
		FROM sales
		WHERE ($1::date IS NULL OR sale_date >= $1::date)
		  AND ($2::date IS NULL OR sale_date <= $2::date)
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing profit: %w", err)
	}

	return total, nil
}

func (s *Store) DailyView(ctx context.Context, r period.Range) ([]report.DailySales, error) {
	from, to := r.Args()

	query := `
		SELECT day, trx_count, total_penjualan, total_modal, total_laba
		FROM v_sales_by_day
		WHERE ($1::date IS NULL OR day >= $1::date)
		  AND ($2::date IS NULL OR day <= $2::date)
		ORDER BY day ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, wrap("reading daily sales view", err)
	}
	defer rows.Close()

	days := []report.DailySales{}

	for rows.Next() {
		var d report.DailySales
		if err := rows.Scan(&d.Day, &d.TransactionCount, &d.TotalSales, &d.TotalCost, &d.TotalProfit); err != nil {
			return nil, fmt.Errorf("scanning daily sales: %w", err)
		}

		d.Day = period.Day(d.Day)
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily sales: %w", err)
	}

	return days, nil
}

func (s *Store) SaleHeaders(ctx context.Context, r period.Range) ([]report.Header, error) {
	from, to := r.Args()

	query := `
		SELECT sale_date, total_amount, total_cost, total_profit
		FROM sales
		WHERE ($1::date IS NULL OR sale_date >= $1::date)
		  AND ($2::date IS NULL OR sale_date <= $2::date)
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing sale headers: %w", err)
	}
	defer rows.Close()

	var headers []report.Header

	for rows.Next() {
		var h report.Header
		if err := rows.Scan(&h.Date, &h.Amount, &h.Cost, &h.Profit); err != nil {
			return nil, fmt.Errorf("scanning sale header: %w", err)
		}

		headers = append(headers, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale headers: %w", err)
	}

	return headers, nil
}
