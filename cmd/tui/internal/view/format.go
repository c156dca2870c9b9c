package view

import (
	"context"
	"time"

	"github.com/waserda/kasir/internal/money"
	"github.com/waserda/kasir/internal/sale"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders whole rupiah with Indonesian grouping.
func FormatAmount(n int64) string {
	return money.Format(n)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// FormatStatus renders a receipt status for tables.
func FormatStatus(s sale.Status) string {
	switch s {
	case sale.StatusSent:
		return "sent"
	case sale.StatusPending:
		return "pending"
	case sale.StatusFailed:
		return "FAILED"
	}

	return "-"
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
