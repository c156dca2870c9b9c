package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/database/dbtest"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/sale"
	"github.com/waserda/kasir/internal/sale/store"
)

func TestStore_RecordAndGet(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	var buyerID uuid.UUID
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO buyers (name, phone_e164) VALUES ('Bu Sri', '+6281234567890') RETURNING id`,
	).Scan(&buyerID))

	svc := sale.NewService(store.New(db))
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	recorded, err := svc.Record(ctx, sale.RecordParams{
		Date:    day,
		BuyerID: &buyerID,
		Lines: []sale.LineParams{
			{Name: "Beras 1kg", Cost: 1000, Price: 1500, Qty: 2},
			{Name: "Gula", Cost: 1500, Price: 2400, Qty: 1},
		},
		Paid: 6000,
	})
	require.NoError(t, err)
	assert.Equal(t, sale.StatusPending, recorded.Status)

	got, err := svc.Get(ctx, recorded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bu Sri", got.BuyerName)
	assert.Equal(t, "+6281234567890", got.BuyerPhone)
	assert.Equal(t, int64(5400), got.TotalAmount)
	assert.Equal(t, int64(600), got.Change)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "Beras 1kg", got.Lines[0].Name)
	assert.Equal(t, "Gula", got.Lines[1].Name)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, svc.SetStatus(ctx, recorded.ID, sale.StatusSent, &now))

	got, err = svc.Get(ctx, recorded.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.StatusSent, got.Status)
	require.NotNil(t, got.SentAt)
	assert.Equal(t, int64(5400), got.TotalAmount)

	list, err := svc.List(ctx, period.Between(day, day))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.List(ctx, period.Between(day.AddDate(0, 0, 1), day.AddDate(0, 0, 2)))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_UnknownBuyerLeavesNothing(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	missing := uuid.New()

	_, err := sale.NewService(store.New(db)).Record(ctx, sale.RecordParams{
		Date:    time.Now(),
		BuyerID: &missing,
		Lines:   []sale.LineParams{{Name: "Kopi", Price: 500, Qty: 1}},
		Paid:    500,
	})
	assert.True(t, apperr.IsValidation(err))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n))
	assert.Zero(t, n)
}

func TestStore_GetMissing(t *testing.T) {
	db := dbtest.Open(t)

	_, err := store.New(db).GetSale(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
