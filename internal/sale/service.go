package sale

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/money"
	"github.com/waserda/kasir/internal/period"
)

// ListLimit caps ListSales.
const ListLimit = 1000

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	BeginRecord(ctx context.Context) (RecordTx, error)
	GetSale(ctx context.Context, id uuid.UUID) (*Sale, error)
	ListSales(ctx context.Context, r period.Range, limit int) ([]*Sale, error)
	ListByStatus(ctx context.Context, status Status, limit int) ([]*Sale, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, sentAt *time.Time) error
}

// RecordTx writes one sale atomically. Nothing is visible until Commit.
type RecordTx interface {
	BuyerContact(ctx context.Context, id uuid.UUID) (*Contact, error)
	InsertSale(ctx context.Context, s *Sale) error
	InsertLines(ctx context.Context, saleID uuid.UUID, lines []Line) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type LineParams struct {
	Name  string
	Cost  int64
	Price int64
	Qty   int64
}

type RecordParams struct {
	Date    time.Time
	BuyerID *uuid.UUID
	Lines   []LineParams
	Paid    int64
}

func (p RecordParams) validate() error {
	if p.Date.IsZero() {
		return apperr.Invalid("date", "required")
	}

	if len(p.Lines) == 0 {
		return apperr.Invalid("items", "at least one item is required")
	}

	var amount, cost int64

	for i, l := range p.Lines {
		field := fmt.Sprintf("items[%d]", i)

		switch {
		case strings.TrimSpace(l.Name) == "":
			return apperr.Invalid(field+".name", "required")
		case l.Cost < 0:
			return apperr.Invalid(field+".cost", "must not be negative")
		case l.Price < 0:
			return apperr.Invalid(field+".price", "must not be negative")
		case l.Qty <= 0:
			return apperr.Invalid(field+".qty", "must be greater than zero")
		case l.Price > math.MaxInt64/l.Qty, l.Cost > math.MaxInt64/l.Qty:
			return apperr.Invalid(field+".qty", "line total is out of range")
		}

		if amount > math.MaxInt64-l.Price*l.Qty || cost > math.MaxInt64-l.Cost*l.Qty {
			return apperr.Invalid(field+".qty", "sale total is out of range")
		}

		amount += l.Price * l.Qty
		cost += l.Cost * l.Qty
	}

	if p.Paid < 0 {
		return apperr.Invalid("paid_amount", "must not be negative")
	}

	return nil
}

// Record validates and persists a sale with its lines in one transaction. Underpayment
// is rejected before anything is written.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Sale, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	lines, totals := Compute(params.Lines)
	if params.Paid < totals.Amount {
		return nil, apperr.Invalidf("paid_amount", "paid %s is less than total %s",
			money.Format(params.Paid), money.Format(totals.Amount))
	}

	rtx, err := s.repo.BeginRecord(ctx)
	if err != nil {
		return nil, apperr.Storage("begin record", err)
	}
	defer rtx.Rollback()

	sale := &Sale{
		Date:        time.Date(params.Date.Year(), params.Date.Month(), params.Date.Day(), 0, 0, 0, 0, time.UTC),
		BuyerID:     params.BuyerID,
		TotalAmount: totals.Amount,
		TotalCost:   totals.Cost,
		TotalProfit: totals.Profit,
		Paid:        params.Paid,
		Change:      Change(params.Paid, totals.Amount),
		Status:      StatusNone,
	}

	if params.BuyerID != nil {
		contact, err := rtx.BuyerContact(ctx, *params.BuyerID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Invalid("buyer_id", "unknown buyer")
			}

			return nil, apperr.Storage("resolve buyer", err)
		}

		sale.BuyerName = contact.Name
		sale.BuyerPhone = contact.Phone

		if contact.Phone != "" {
			sale.Status = StatusPending
		}
	}

	if err := rtx.InsertSale(ctx, sale); err != nil {
		return nil, apperr.Storage("insert sale", err)
	}

	for i := range lines {
		lines[i].SaleID = sale.ID
	}

	if err := rtx.InsertLines(ctx, sale.ID, lines); err != nil {
		return nil, apperr.Storage("insert sale lines", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, apperr.Storage("commit sale", err)
	}

	sale.Lines = lines

	return sale, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sale, error) {
	sale, err := s.repo.GetSale(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get sale", err)
	}

	return sale, nil
}

// List returns sale headers in r, newest first.
func (s *Service) List(ctx context.Context, r period.Range) ([]*Sale, error) {
	sales, err := s.repo.ListSales(ctx, r, ListLimit)
	if err != nil {
		return nil, apperr.Storage("list sales", err)
	}

	if sales == nil {
		sales = []*Sale{}
	}

	return sales, nil
}

// Failed returns sales whose receipt could not be delivered, oldest first.
func (s *Service) Failed(ctx context.Context) ([]*Sale, error) {
	sales, err := s.repo.ListByStatus(ctx, StatusFailed, ListLimit)
	if err != nil {
		return nil, apperr.Storage("list failed receipts", err)
	}

	return sales, nil
}

// SetStatus records a receipt status change. Financial fields are never touched.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status, sentAt *time.Time) error {
	if err := s.repo.UpdateStatus(ctx, id, status, sentAt); err != nil {
		return apperr.Storage("update receipt status", err)
	}

	return nil
}
