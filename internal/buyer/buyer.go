package buyer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
)

var ErrNotFound = fmt.Errorf("buyer %w", apperr.ErrNotFound)

// Buyer is a customer who may receive receipts. Buyers are never edited in place.
type Buyer struct {
	ID        uuid.UUID
	Name      string
	Phone     string // +E.164, empty when unknown
	WAOptIn   bool
	Note      string
	CreatedAt time.Time
}
