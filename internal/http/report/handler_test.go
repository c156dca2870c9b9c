package report_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	reporthttp "github.com/waserda/kasir/internal/http/report"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/report"
	"github.com/waserda/kasir/internal/sale"
)

type mocks struct {
	repo      *report.MockRepository
	sales     *report.MockSales
	investors *report.MockInvestors
}

func newRouter(t *testing.T) (mocks, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:      report.NewMockRepository(ctrl),
		sales:     report.NewMockSales(ctrl),
		investors: report.NewMockInvestors(ctrl),
	}

	svc := report.NewService(m.repo, m.sales, m.investors, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/reports", reporthttp.NewHandler(svc, zap.NewNop(), "Toko Waserda").Routes)

	return m, r
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func march(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestHandler_ProfitSharing(t *testing.T) {
	m, h := newRouter(t)
	rng := period.Between(march(1), march(31))

	m.repo.EXPECT().ProfitTotal(gomock.Any(), rng).Return(int64(0), report.ErrUnavailable)
	m.repo.EXPECT().SumProfit(gomock.Any(), rng).Return(int64(101), nil)

	rec := get(h, "/reports/profit-sharing?from=2025-03-01&to=2025-03-31")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"from": "2025-03-01",
		"to": "2025-03-31",
		"total_profit": 101,
		"karyawan_share": 30,
		"pemodal_share": 35,
		"kas_share": 35,
		"leakage": 1
	}`, rec.Body.String())
}

func TestHandler_ProfitSharing_OpenRange(t *testing.T) {
	m, h := newRouter(t)

	m.repo.EXPECT().ProfitTotal(gomock.Any(), period.Range{}).Return(int64(1900), nil)

	rec := get(h, "/reports/profit-sharing")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body["from"])
	assert.EqualValues(t, 570, body["karyawan_share"])
}

func TestHandler_SalesByDay(t *testing.T) {
	m, h := newRouter(t)
	rng := period.Between(march(1), march(2))

	m.repo.EXPECT().DailyView(gomock.Any(), rng).Return(nil, errors.New("relation does not exist"))
	m.repo.EXPECT().SaleHeaders(gomock.Any(), rng).Return([]report.Header{
		{Date: march(2), Amount: 100, Cost: 60, Profit: 40},
		{Date: march(1), Amount: 50, Cost: 30, Profit: 20},
		{Date: march(2), Amount: 10, Cost: 5, Profit: 5},
	}, nil)

	rec := get(h, "/reports/sales-by-day?from=2025-03-01&to=2025-03-02")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"day":"2025-03-01","transaction_count":1,"total_sales":50,"total_cost":30,"total_profit":20},
		{"day":"2025-03-02","transaction_count":2,"total_sales":110,"total_cost":65,"total_profit":45}
	]`, rec.Body.String())
}

func TestHandler_BadRange(t *testing.T) {
	_, h := newRouter(t)

	for _, path := range []string{"profit-sharing", "sales-by-day", "summary", "pdf"} {
		rec := get(h, "/reports/"+path+"?to=31-03-2025")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func expectReport(m mocks, rng period.Range) {
	m.repo.EXPECT().ProfitTotal(gomock.Any(), rng).Return(int64(1900), nil)
	m.repo.EXPECT().DailyView(gomock.Any(), rng).Return([]report.DailySales{
		{Day: march(14), TransactionCount: 1, TotalSales: 5400, TotalCost: 3500, TotalProfit: 1900},
	}, nil)
	m.sales.EXPECT().List(gomock.Any(), rng).Return([]*sale.Sale{
		{ID: uuid.New(), Date: march(14), BuyerName: "Siti", TotalAmount: 5400, TotalProfit: 1900, Status: sale.StatusSent},
	}, nil)
}

func TestHandler_Summary(t *testing.T) {
	m, h := newRouter(t)
	rng := period.Between(march(14), march(14))
	expectReport(m, rng)

	rec := get(h, "/reports/summary?from=2025-03-14&to=2025-03-14")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ProfitSharing struct {
			Investors int64 `json:"pemodal_share"`
		} `json:"profit_sharing"`
		Days   []map[string]any `json:"days"`
		Totals struct {
			Day         string `json:"day"`
			TotalProfit int64  `json:"total_profit"`
		} `json:"totals"`
		Sales []map[string]any `json:"sales"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, int64(665), body.ProfitSharing.Investors)
	assert.Len(t, body.Days, 1)
	assert.Empty(t, body.Totals.Day)
	assert.Equal(t, int64(1900), body.Totals.TotalProfit)
	require.Len(t, body.Sales, 1)
	assert.Equal(t, "Siti", body.Sales[0]["buyer_name"])
}

func TestHandler_PDF(t *testing.T) {
	m, h := newRouter(t)
	rng := period.Between(march(14), march(14))
	expectReport(m, rng)

	rec := get(h, "/reports/pdf?from=2025-03-14&to=2025-03-14")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "laporan_2025-03-14_2025-03-14.pdf")
	assert.True(t, len(rec.Body.Bytes()) > 5)
	assert.Equal(t, "%PDF-", rec.Body.String()[:5])
}
