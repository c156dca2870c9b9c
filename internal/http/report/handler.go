package report

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/http/respond"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/report"
)

type Handler struct {
	svc       *report.Service
	log       *zap.Logger
	storeName string
}

func NewHandler(svc *report.Service, log *zap.Logger, storeName string) *Handler {
	return &Handler{svc: svc, log: log, storeName: storeName}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/profit-sharing", h.profitSharing)
	r.Get("/sales-by-day", h.salesByDay)
	r.Get("/summary", h.summary)
	r.Get("/pdf", h.pdf)
}

type shareResponse struct {
	From        *string `json:"from"`
	To          *string `json:"to"`
	TotalProfit int64   `json:"total_profit"`
	Employees   int64   `json:"karyawan_share"`
	Investors   int64   `json:"pemodal_share"`
	Cash        int64   `json:"kas_share"`
	Leakage     int64   `json:"leakage"`
}

type dayResponse struct {
	Day              string `json:"day"`
	TransactionCount int64  `json:"transaction_count"`
	TotalSales       int64  `json:"total_sales"`
	TotalCost        int64  `json:"total_cost"`
	TotalProfit      int64  `json:"total_profit"`
}

type saleResponse struct {
	ID          string `json:"id"`
	Date        string `json:"sale_date"`
	BuyerName   string `json:"buyer_name"`
	TotalAmount int64  `json:"total_amount"`
	TotalProfit int64  `json:"total_profit"`
	Status      string `json:"wa_status"`
}

type summaryResponse struct {
	ProfitSharing shareResponse  `json:"profit_sharing"`
	Days          []dayResponse  `json:"days"`
	Totals        dayResponse    `json:"totals"`
	Sales         []saleResponse `json:"sales"`
}

func day(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}

func toShare(p report.ProfitShare) shareResponse {
	return shareResponse{
		From:        day(p.From),
		To:          day(p.To),
		TotalProfit: p.TotalProfit,
		Employees:   p.Employees,
		Investors:   p.Investors,
		Cash:        p.Cash,
		Leakage:     p.Leakage(),
	}
}

func toDay(d report.DailySales) dayResponse {
	resp := dayResponse{
		TransactionCount: d.TransactionCount,
		TotalSales:       d.TotalSales,
		TotalCost:        d.TotalCost,
		TotalProfit:      d.TotalProfit,
	}

	if !d.Day.IsZero() {
		resp.Day = d.Day.Format(time.DateOnly)
	}

	return resp
}

func toDays(days []report.DailySales) []dayResponse {
	resp := make([]dayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, toDay(d))
	}

	return resp
}

func (h *Handler) rangeOf(w http.ResponseWriter, r *http.Request) (period.Range, bool) {
	rng, err := period.Parse(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		respond.Error(w, r, h.log, err)
		return period.Range{}, false
	}

	return rng, true
}

func (h *Handler) profitSharing(w http.ResponseWriter, r *http.Request) {
	rng, ok := h.rangeOf(w, r)
	if !ok {
		return
	}

	share, err := h.svc.ProfitSharing(r.Context(), rng)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, toShare(share))
}

func (h *Handler) salesByDay(w http.ResponseWriter, r *http.Request) {
	rng, ok := h.rangeOf(w, r)
	if !ok {
		return
	}

	days, err := h.svc.SalesByDay(r.Context(), rng)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, toDays(days))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	rng, ok := h.rangeOf(w, r)
	if !ok {
		return
	}

	sum, err := h.svc.Report(r.Context(), rng)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	resp := summaryResponse{
		ProfitSharing: toShare(sum.Share),
		Days:          toDays(sum.Days),
		Totals:        toDay(sum.Totals),
		Sales:         make([]saleResponse, 0, len(sum.Sales)),
	}

	for _, s := range sum.Sales {
		resp.Sales = append(resp.Sales, saleResponse{
			ID:          s.ID.String(),
			Date:        s.Date.Format(time.DateOnly),
			BuyerName:   s.BuyerName,
			TotalAmount: s.TotalAmount,
			TotalProfit: s.TotalProfit,
			Status:      string(s.Status),
		})
	}

	respond.JSON(w, h.log, http.StatusOK, resp)
}

// pdf renders into a buffer first so a rendering failure can still be reported as JSON.
func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	rng, ok := h.rangeOf(w, r)
	if !ok {
		return
	}

	sum, err := h.svc.Report(r.Context(), rng)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := report.RenderPDF(&buf, h.storeName, sum); err != nil {
		respond.Error(w, r, h.log, fmt.Errorf("rendering report: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename(rng)+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.log.Error("failed to write report", zap.Error(err))
	}
}

func filename(r period.Range) string {
	name := "laporan"

	if r.From != nil {
		name += "_" + r.From.Format(time.DateOnly)
	}

	if r.To != nil {
		name += "_" + r.To.Format(time.DateOnly)
	}

	return name + ".pdf"
}
