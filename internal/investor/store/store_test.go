package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/database/dbtest"
	"github.com/waserda/kasir/internal/investor"
	"github.com/waserda/kasir/internal/investor/store"
)

func TestStore_ListAndSummary(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	svc := investor.NewService(store.New(db))

	_, err := svc.CreateBatch(ctx, []investor.CreateParams{
		{Name: "Haji Umar", Year: 2024, Amount: 5000000},
		{Name: "Bu Ani", Year: 2025, Amount: 2500000},
		{Name: "Pak Dedi", Year: 2025, Amount: 1500000},
	})
	require.NoError(t, err)

	year := 2025
	items, err := svc.List(ctx, &year)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []investor.YearTotal{
		{Year: 2025, Count: 2, Total: 4000000},
		{Year: 2024, Count: 1, Total: 5000000},
	}, summary)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), apperr.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, items[0].ID))
}
