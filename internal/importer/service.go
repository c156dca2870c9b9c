package importer

import (
	"context"
	"io"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/buyer"
	"github.com/waserda/kasir/internal/investor"
)

type Buyers interface {
	CreateBatch(ctx context.Context, params []buyer.CreateParams) ([]*buyer.Buyer, error)
}

type Investors interface {
	CreateBatch(ctx context.Context, params []investor.CreateParams) ([]*investor.Investor, error)
}

// Service imports directory spreadsheets. Each file is stored in one transaction; a bad
// row rejects the whole file.
type Service struct {
	buyers    Buyers
	investors Investors
}

func NewService(buyers Buyers, investors Investors) *Service {
	return &Service{buyers: buyers, investors: investors}
}

func (s *Service) ImportBuyers(ctx context.Context, r io.Reader) ([]*buyer.Buyer, error) {
	params, err := ParseBuyers(r)
	if err != nil {
		return nil, apperr.Invalid("file", err.Error())
	}

	return s.buyers.CreateBatch(ctx, params)
}

func (s *Service) ImportInvestors(ctx context.Context, r io.Reader) ([]*investor.Investor, error) {
	params, err := ParseInvestors(r)
	if err != nil {
		return nil, apperr.Invalid("file", err.Error())
	}

	return s.investors.CreateBatch(ctx, params)
}

// Import feeds r to the directory selected by kind and returns the number of rows stored.
func (s *Service) Import(ctx context.Context, kind Kind, r io.Reader) (int, error) {
	switch kind {
	case KindBuyers:
		bs, err := s.ImportBuyers(ctx, r)
		return len(bs), err
	case KindInvestors:
		invs, err := s.ImportInvestors(ctx, r)
		return len(invs), err
	}

	return 0, apperr.Invalidf("kind", "unknown import kind %q", kind)
}
