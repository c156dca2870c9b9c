package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/sale"
)

const DefaultTimeout = 10 * time.Second

//go:generate mockgen -source=service.go -destination=service_mock.go -package=notify
type Sales interface {
	Get(ctx context.Context, id uuid.UUID) (*sale.Sale, error)
	SetStatus(ctx context.Context, id uuid.UUID, status sale.Status, sentAt *time.Time) error
}

type Sender interface {
	Send(ctx context.Context, number, text string) error
}

type Outcome string

const (
	OutcomeSkipped Outcome = "skipped"
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
)

// Result describes one delivery attempt. Err carries soft failures only.
type Result struct {
	Outcome Outcome
	Status  sale.Status
	Err     error
}

type Service struct {
	sales     Sales
	sender    Sender
	log       *zap.Logger
	storeName string
	timeout   time.Duration
	now       func() time.Time
}

type Option func(*Service)

func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(sales Sales, sender Sender, log *zap.Logger, storeName string, opts ...Option) *Service {
	s := &Service{
		sales:     sales,
		sender:    sender,
		log:       log,
		storeName: storeName,
		timeout:   DefaultTimeout,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dispatch delivers the receipt of a freshly recorded sale. Sales without a buyer phone
// are skipped. The returned error is reserved for lookup failures.
func (s *Service) Dispatch(ctx context.Context, id uuid.UUID) (Result, error) {
	sl, err := s.sales.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}

	if sl.BuyerPhone == "" {
		return Result{Outcome: OutcomeSkipped, Status: sl.Status}, nil
	}

	return s.deliver(ctx, sl)
}

// Resend delivers the receipt again. A sale without a buyer phone is a validation error.
func (s *Service) Resend(ctx context.Context, id uuid.UUID) (Result, error) {
	sl, err := s.sales.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}

	if sl.BuyerPhone == "" {
		return Result{}, apperr.Invalid("buyer", "buyer has no WhatsApp number")
	}

	return s.deliver(ctx, sl)
}

func (s *Service) deliver(ctx context.Context, sl *sale.Sale) (Result, error) {
	log := s.log.With(zap.Stringer("sale_id", sl.ID))

	if sl.Status != sale.StatusPending && sl.Status.CanMoveTo(sale.StatusPending) {
		if err := s.sales.SetStatus(ctx, sl.ID, sale.StatusPending, nil); err != nil {
			return Result{}, err
		}

		sl.Status = sale.StatusPending
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sendErr := s.sender.Send(sendCtx, Number(sl.BuyerPhone), Receipt(s.storeName, sl))
	if sendErr == nil {
		sentAt := s.now().UTC()
		res := Result{Outcome: OutcomeSent, Status: sale.StatusSent}

		if err := s.sales.SetStatus(ctx, sl.ID, sale.StatusSent, &sentAt); err != nil {
			log.Error("recording delivered receipt", zap.Error(err))
			res.Err = err
		}

		log.Info("receipt sent")

		return res, nil
	}

	var ne *apperr.NotificationError
	if !errors.As(sendErr, &ne) {
		sendErr = &apperr.NotificationError{Err: sendErr}
	}

	log.Warn("receipt delivery failed", zap.Error(sendErr))

	// A receipt that already reached the buyer stays sent.
	if sl.Status == sale.StatusSent {
		return Result{Outcome: OutcomeFailed, Status: sale.StatusSent, Err: sendErr}, nil
	}

	res := Result{Outcome: OutcomeFailed, Status: sale.StatusFailed, Err: sendErr}

	if err := s.sales.SetStatus(ctx, sl.ID, sale.StatusFailed, nil); err != nil {
		log.Error("recording failed receipt", zap.Error(err))
		res.Err = errors.Join(sendErr, err)
	}

	return res, nil
}
