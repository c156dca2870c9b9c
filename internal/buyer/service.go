package buyer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
)

const (
	ListLimit          = 1000
	DefaultCountryCode = "62"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=buyer
type Repository interface {
	CreateBuyer(ctx context.Context, b *Buyer) error
	CreateBuyers(ctx context.Context, bs []*Buyer) error
	GetBuyer(ctx context.Context, id uuid.UUID) (*Buyer, error)
	ListBuyers(ctx context.Context, query string, limit int) ([]*Buyer, error)
	DeleteBuyer(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo        Repository
	countryCode string
}

func NewService(repo Repository, countryCode string) *Service {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	return &Service{repo: repo, countryCode: countryCode}
}

type CreateParams struct {
	Name    string
	Phone   string
	WAOptIn bool
	Note    string
}

func (s *Service) build(p CreateParams) (*Buyer, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, apperr.Invalid("name", "required")
	}

	phone, ok := NormalizePhone(p.Phone, s.countryCode)
	if !ok {
		return nil, apperr.Invalidf("phone", "%q is not a valid phone number", p.Phone)
	}

	return &Buyer{
		Name:    name,
		Phone:   phone,
		WAOptIn: p.WAOptIn,
		Note:    strings.TrimSpace(p.Note),
	}, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Buyer, error) {
	b, err := s.build(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateBuyer(ctx, b); err != nil {
		return nil, apperr.Storage("create buyer", err)
	}

	return b, nil
}

// CreateBatch validates every row first and then stores all of them in one transaction.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Buyer, error) {
	if len(params) == 0 {
		return []*Buyer{}, nil
	}

	buyers := make([]*Buyer, len(params))

	for i, p := range params {
		b, err := s.build(p)
		if err != nil {
			return nil, apperr.Invalidf("rows", "row %d: %v", i+1, err)
		}

		buyers[i] = b
	}

	if err := s.repo.CreateBuyers(ctx, buyers); err != nil {
		return nil, apperr.Storage("import buyers", err)
	}

	return buyers, nil
}

// List matches query case-insensitively against name or phone. An empty query lists
// the newest buyers.
func (s *Service) List(ctx context.Context, query string) ([]*Buyer, error) {
	buyers, err := s.repo.ListBuyers(ctx, strings.TrimSpace(query), ListLimit)
	if err != nil {
		return nil, apperr.Storage("list buyers", err)
	}

	if buyers == nil {
		buyers = []*Buyer{}
	}

	return buyers, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Buyer, error) {
	b, err := s.repo.GetBuyer(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get buyer", err)
	}

	return b, nil
}

// Delete removes the buyer. Its sales are kept and lose the buyer reference.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteBuyer(ctx, id); err != nil {
		return apperr.Storage("delete buyer", err)
	}

	return nil
}
