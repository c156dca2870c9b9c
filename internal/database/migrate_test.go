package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/database"
	"github.com/waserda/kasir/internal/database/dbtest"
)

func TestMigrate_AddsPositionToExistingItems(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `ALTER TABLE sale_items DROP COLUMN position`)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, db))

	var n int
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = 'sale_items' AND column_name = 'position'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMigrate_RejectsNegativeTotals(t *testing.T) {
	db := dbtest.Open(t)

	_, err := db.ExecContext(context.Background(), `
		INSERT INTO sales (sale_date, total_amount, total_cost, total_profit, paid_amount, change_amount)
		VALUES ('2025-03-14', -10, 0, -10, 0, 0)`)
	require.Error(t, err)
	assert.True(t, database.IsCheckViolation(err))
}
