package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/database"
	"github.com/waserda/kasir/internal/database/dbtest"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/report"
	"github.com/waserda/kasir/internal/report/store"
	"github.com/waserda/kasir/internal/sale"
	salestore "github.com/waserda/kasir/internal/sale/store"
)

func TestStore_ViewAndFallbackAgree(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	sales := sale.NewService(salestore.New(db))

	carts := []struct {
		day   int
		lines []sale.LineParams
		paid  int64
	}{
		{1, []sale.LineParams{{Name: "Beras", Cost: 1000, Price: 1500, Qty: 2}, {Name: "Gula", Cost: 1500, Price: 2400, Qty: 1}}, 6000},
		{1, []sale.LineParams{{Name: "Kopi", Cost: 300, Price: 500, Qty: 4}}, 2000},
		{4, []sale.LineParams{{Name: "Teh", Cost: 900, Price: 1000, Qty: 1}}, 1000},
	}

	for _, c := range carts {
		_, err := sales.Record(ctx, sale.RecordParams{
			Date:  time.Date(2025, 3, c.day, 0, 0, 0, 0, time.UTC),
			Lines: c.lines,
			Paid:  c.paid,
		})
		require.NoError(t, err)
	}

	st := store.New(db)
	r := period.Between(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))

	viewRows, err := st.DailyView(ctx, r)
	require.NoError(t, err)

	headers, err := st.SaleHeaders(ctx, r)
	require.NoError(t, err)

	assert.Equal(t, viewRows, report.Rollup(headers))
	require.Len(t, viewRows, 2)
	assert.Equal(t, int64(2), viewRows[0].TransactionCount)

	fnTotal, err := st.ProfitTotal(ctx, r)
	require.NoError(t, err)

	sumTotal, err := st.SumProfit(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, sumTotal, fnTotal)
	assert.Equal(t, int64(1900+800+100), fnTotal)

	empty, err := st.ProfitTotal(ctx, period.Between(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestStore_MissingViewIsUnavailable(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `DROP VIEW v_sales_by_day`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Migrate(context.Background(), db) })

	_, err = store.New(db).DailyView(ctx, period.Range{})
	assert.ErrorIs(t, err, report.ErrUnavailable)
}
