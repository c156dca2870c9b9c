package investor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
)

var ErrNotFound = fmt.Errorf("investor %w", apperr.ErrNotFound)

const (
	MinYear = 2000
	MaxYear = 2100
)

// Investor is a capital contribution for a given year.
type Investor struct {
	ID        uuid.UUID
	Name      string
	Year      int
	Amount    int64
	Note      string
	CreatedAt time.Time
}

// YearTotal aggregates contributions per year.
type YearTotal struct {
	Year  int
	Count int
	Total int64
}
