// Package dbtest opens the integration test database. Tests using it are skipped unless
// KASIR_TEST_DATABASE_URL points at a disposable Postgres database. Every package
// truncates the same tables, so run them with -p 1.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/waserda/kasir/internal/database"
)

const EnvURL = "KASIR_TEST_DATABASE_URL"

// Open connects, applies the schema and empties every table. The pool is closed when
// the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set", EnvURL)
	}

	db, err := database.New(url, database.PoolOptions{
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db))

	_, err = db.ExecContext(ctx, `TRUNCATE sale_items, sales, buyers, investors`)
	require.NoError(t, err)

	return db
}
