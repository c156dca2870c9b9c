package investor

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=investor
type Repository interface {
	CreateInvestor(ctx context.Context, inv *Investor) error
	CreateInvestors(ctx context.Context, invs []*Investor) error
	ListInvestors(ctx context.Context, year *int) ([]*Investor, error)
	DeleteInvestor(ctx context.Context, id uuid.UUID) error
	SummaryByYear(ctx context.Context) ([]YearTotal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name   string
	Year   int
	Amount int64
	Note   string
}

func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

func build(p CreateParams) (*Investor, error) {
	name := strings.TrimSpace(p.Name)

	switch {
	case name == "":
		return nil, apperr.Invalid("name", "required")
	case !ValidYear(p.Year):
		return nil, apperr.Invalidf("year", "must be between %d and %d", MinYear, MaxYear)
	case p.Amount < 0:
		return nil, apperr.Invalid("amount", "must not be negative")
	}

	return &Investor{Name: name, Year: p.Year, Amount: p.Amount, Note: strings.TrimSpace(p.Note)}, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Investor, error) {
	inv, err := build(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateInvestor(ctx, inv); err != nil {
		return nil, apperr.Storage("create investor", err)
	}

	return inv, nil
}

func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Investor, error) {
	invs := make([]*Investor, 0, len(params))

	for i, p := range params {
		inv, err := build(p)
		if err != nil {
			return nil, apperr.Invalidf("rows", "row %d: %v", i+1, err)
		}

		invs = append(invs, inv)
	}

	if len(invs) == 0 {
		return invs, nil
	}

	if err := s.repo.CreateInvestors(ctx, invs); err != nil {
		return nil, apperr.Storage("import investors", err)
	}

	return invs, nil
}

// List returns investors, optionally restricted to one year, newest first.
func (s *Service) List(ctx context.Context, year *int) ([]*Investor, error) {
	if year != nil && !ValidYear(*year) {
		return nil, apperr.Invalidf("year", "must be between %d and %d", MinYear, MaxYear)
	}

	invs, err := s.repo.ListInvestors(ctx, year)
	if err != nil {
		return nil, apperr.Storage("list investors", err)
	}

	if invs == nil {
		invs = []*Investor{}
	}

	return invs, nil
}

// Summary totals contributions per year across all investors, latest year first.
func (s *Service) Summary(ctx context.Context) ([]YearTotal, error) {
	totals, err := s.repo.SummaryByYear(ctx)
	if err != nil {
		return nil, apperr.Storage("summarize investors", err)
	}

	if totals == nil {
		totals = []YearTotal{}
	}

	return totals, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteInvestor(ctx, id); err != nil {
		return apperr.Storage("delete investor", err)
	}

	return nil
}
