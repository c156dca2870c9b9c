package report

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/investor"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/sale"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// ProfitTotal reads the precomputed profit sharing function.
	ProfitTotal(ctx context.Context, r period.Range) (int64, error)
	// SumProfit aggregates sales directly.
	SumProfit(ctx context.Context, r period.Range) (int64, error)
	// DailyView reads the precomputed daily view.
	DailyView(ctx context.Context, r period.Range) ([]DailySales, error)
	SaleHeaders(ctx context.Context, r period.Range) ([]Header, error)
}

type Sales interface {
	List(ctx context.Context, r period.Range) ([]*sale.Sale, error)
}

type Investors interface {
	List(ctx context.Context, year *int) ([]*investor.Investor, error)
	Summary(ctx context.Context) ([]investor.YearTotal, error)
}

type Service struct {
	repo      Repository
	sales     Sales
	investors Investors
	log       *zap.Logger
}

func NewService(repo Repository, sales Sales, investors Investors, log *zap.Logger) *Service {
	return &Service{repo: repo, sales: sales, investors: investors, log: log}
}

// ProfitSharing splits the profit of r 30/35/35. The total comes from the precomputed
// function when it is available and from the sales table otherwise.
func (s *Service) ProfitSharing(ctx context.Context, r period.Range) (ProfitShare, error) {
	total, err := s.repo.ProfitTotal(ctx, r)
	if err != nil {
		s.degraded("profit sharing function", err)

		total, err = s.repo.SumProfit(ctx, r)
		if err != nil {
			return ProfitShare{}, apperr.Storage("sum profit", err)
		}
	}

	return Split(r, total), nil
}

func (s *Service) degraded(what string, err error) {
	if errors.Is(err, ErrUnavailable) {
		s.log.Info(what+" not installed, using fallback")
		return
	}

	s.log.Warn(what+" failed, using fallback", zap.Error(err))
}

// SalesByDay returns one row per day with sales in r, ascending.
func (s *Service) SalesByDay(ctx context.Context, r period.Range) ([]DailySales, error) {
	days, err := s.repo.DailyView(ctx, r)
	if err == nil {
		if days == nil {
			days = []DailySales{}
		}

		return days, nil
	}

	s.degraded("daily sales view", err)

	headers, err := s.repo.SaleHeaders(ctx, r)
	if err != nil {
		return nil, apperr.Storage("load sale headers", err)
	}

	return Rollup(headers), nil
}

// InvestorSummary lists investors, filtered by year when given. The per-year totals
// always cover every year.
func (s *Service) InvestorSummary(ctx context.Context, year *int) (InvestorSummary, error) {
	items, err := s.investors.List(ctx, year)
	if err != nil {
		return InvestorSummary{}, err
	}

	years, err := s.investors.Summary(ctx)
	if err != nil {
		return InvestorSummary{}, err
	}

	return InvestorSummary{Items: items, Years: years}, nil
}

// Report combines the profit share, the daily rollup and the sales list of r.
func (s *Service) Report(ctx context.Context, r period.Range) (*Summary, error) {
	share, err := s.ProfitSharing(ctx, r)
	if err != nil {
		return nil, err
	}

	days, err := s.SalesByDay(ctx, r)
	if err != nil {
		return nil, err
	}

	sales, err := s.sales.List(ctx, r)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Range:  r,
		Share:  share,
		Days:   days,
		Sales:  sales,
		Totals: Total(days),
	}, nil
}
