package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/investor"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/report"
	"github.com/waserda/kasir/internal/sale"
)

type mocks struct {
	repo      *report.MockRepository
	sales     *report.MockSales
	investors *report.MockInvestors
}

func newService(t *testing.T) (*report.Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		repo:      report.NewMockRepository(ctrl),
		sales:     report.NewMockSales(ctrl),
		investors: report.NewMockInvestors(ctrl),
	}

	return report.NewService(m.repo, m.sales, m.investors, zap.NewNop()), m
}

var errUndefined = errors.New(`ERROR: function f_profit_sharing(date, date) does not exist (SQLSTATE 42883)`)

func TestService_ProfitSharing(t *testing.T) {
	r := period.Between(day(1), day(31))

	type testCase struct {
		name      string
		setupMock func(m mocks)
		wantTotal int64
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "PrecomputedFunction",
			setupMock: func(m mocks) {
				m.repo.EXPECT().ProfitTotal(gomock.Any(), r).Return(int64(1900), nil)
			},
			wantTotal: 1900,
		},
		{
			name: "FallbackToSum",
			setupMock: func(m mocks) {
				m.repo.EXPECT().ProfitTotal(gomock.Any(), r).Return(int64(0), errUndefined)
				m.repo.EXPECT().SumProfit(gomock.Any(), r).Return(int64(101), nil)
			},
			wantTotal: 101,
		},
		{
			name: "EmptyRange",
			setupMock: func(m mocks) {
				m.repo.EXPECT().ProfitTotal(gomock.Any(), r).Return(int64(0), nil)
			},
			wantTotal: 0,
		},
		{
			name: "BothPathsFail",
			setupMock: func(m mocks) {
				m.repo.EXPECT().ProfitTotal(gomock.Any(), r).Return(int64(0), errUndefined)
				m.repo.EXPECT().SumProfit(gomock.Any(), r).Return(int64(0), errors.New("conn refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			got, err := svc.ProfitSharing(context.Background(), r)
			if tt.wantErr {
				var se *apperr.StorageError
				assert.ErrorAs(t, err, &se)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, report.Split(r, tt.wantTotal), got)
			assert.Equal(t, r.From, got.From)
		})
	}
}

func TestService_SalesByDay_FallbackMatchesView(t *testing.T) {
	r := period.Between(day(1), day(31))

	headers := []report.Header{
		{Date: day(2), Amount: 1000, Cost: 700, Profit: 300},
		{Date: day(2), Amount: 5400, Cost: 3500, Profit: 1900},
		{Date: day(9), Amount: 200, Cost: 150, Profit: 50},
	}
	view := []report.DailySales{
		{Day: day(2), TransactionCount: 2, TotalSales: 6400, TotalCost: 4200, TotalProfit: 2200},
		{Day: day(9), TransactionCount: 1, TotalSales: 200, TotalCost: 150, TotalProfit: 50},
	}

	svc, m := newService(t)
	m.repo.EXPECT().DailyView(gomock.Any(), r).Return(view, nil)

	fromView, err := svc.SalesByDay(context.Background(), r)
	require.NoError(t, err)

	svc, m = newService(t)
	m.repo.EXPECT().DailyView(gomock.Any(), r).Return(nil, errors.New(`relation "v_sales_by_day" does not exist`))
	m.repo.EXPECT().SaleHeaders(gomock.Any(), r).Return(headers, nil)

	fromRollup, err := svc.SalesByDay(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, fromView, fromRollup)
}

func TestService_SalesByDay_Empty(t *testing.T) {
	svc, m := newService(t)
	m.repo.EXPECT().DailyView(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := svc.SalesByDay(context.Background(), period.Range{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_InvestorSummary(t *testing.T) {
	svc, m := newService(t)
	year := 2025

	m.investors.EXPECT().List(gomock.Any(), &year).Return([]*investor.Investor{{Name: "Bu Ani", Year: 2025, Amount: 10}}, nil)
	m.investors.EXPECT().Summary(gomock.Any()).Return([]investor.YearTotal{
		{Year: 2025, Count: 1, Total: 10},
		{Year: 2024, Count: 3, Total: 300},
	}, nil)

	got, err := svc.InvestorSummary(context.Background(), &year)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Len(t, got.Years, 2)
}

func TestService_Report(t *testing.T) {
	svc, m := newService(t)
	r := period.Between(day(1), day(2))

	m.repo.EXPECT().ProfitTotal(gomock.Any(), r).Return(int64(1900), nil)
	m.repo.EXPECT().DailyView(gomock.Any(), r).Return([]report.DailySales{
		{Day: day(1), TransactionCount: 1, TotalSales: 5400, TotalCost: 3500, TotalProfit: 1900},
	}, nil)
	m.sales.EXPECT().List(gomock.Any(), r).Return([]*sale.Sale{{TotalAmount: 5400}}, nil)

	got, err := svc.Report(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(570), got.Share.Employees)
	assert.Equal(t, int64(5400), got.Totals.TotalSales)
	assert.Len(t, got.Sales, 1)
}
