package sale

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
)

var ErrNotFound = fmt.Errorf("sale %w", apperr.ErrNotFound)

// Status is the delivery state of a sale's receipt.
type Status string

const (
	StatusNone    Status = "none"
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// CanMoveTo reports whether the receipt status may change from s to next.
// A sent receipt may be re-delivered and stays sent.
func (s Status) CanMoveTo(next Status) bool {
	switch s {
	case StatusNone, StatusFailed:
		return next == StatusPending
	case StatusPending:
		return next == StatusSent || next == StatusFailed
	case StatusSent:
		return next == StatusSent
	}

	return false
}

// Sale is a committed sale header. Lines are only loaded on detail lookups.
type Sale struct {
	ID          uuid.UUID
	Date        time.Time
	BuyerID     *uuid.UUID
	BuyerName   string // Loaded via JOIN
	BuyerPhone  string // Loaded via JOIN
	TotalAmount int64
	TotalCost   int64
	TotalProfit int64
	Paid        int64
	Change      int64
	Status      Status
	SentAt      *time.Time
	CreatedAt   time.Time
	Lines       []Line
}

// Line is one item on a sale. Amounts are whole rupiah.
type Line struct {
	ID        uuid.UUID
	SaleID    uuid.UUID
	Name      string
	CostPrice int64
	SalePrice int64
	Qty       int64
	Total     int64
	Cost      int64
	Profit    int64
	CreatedAt time.Time
}

// Contact is the part of a buyer a sale needs to route its receipt.
type Contact struct {
	Name  string
	Phone string
}
