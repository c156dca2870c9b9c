package sale

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/http/respond"
	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/sale"
)

type Handler struct {
	sales    *sale.Service
	notifier *notify.Service
	log      *zap.Logger
}

func NewHandler(sales *sale.Service, notifier *notify.Service, log *zap.Logger) *Handler {
	return &Handler{sales: sales, notifier: notifier, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/resend", h.resend)
}

type itemRequest struct {
	Name  string `json:"name"`
	Cost  int64  `json:"cost"`
	Price int64  `json:"price"`
	Qty   int64  `json:"qty"`
}

type createSaleRequest struct {
	Date    string        `json:"date"`
	BuyerID string        `json:"buyer_id"`
	Items   []itemRequest `json:"items"`
	Paid    int64         `json:"paid_amount"`
}

func (req createSaleRequest) params() (sale.RecordParams, error) {
	p := sale.RecordParams{Paid: req.Paid}

	if strings.TrimSpace(req.Date) == "" {
		return p, apperr.Invalid("date", "required")
	}

	d, err := period.ParseDay(req.Date)
	if err != nil {
		return p, apperr.Invalid("date", err.Error())
	}

	p.Date = d

	if id := strings.TrimSpace(req.BuyerID); id != "" {
		buyerID, err := uuid.Parse(id)
		if err != nil {
			return p, apperr.Invalid("buyer_id", "invalid id")
		}

		p.BuyerID = &buyerID
	}

	for _, it := range req.Items {
		p.Lines = append(p.Lines, sale.LineParams{Name: it.Name, Cost: it.Cost, Price: it.Price, Qty: it.Qty})
	}

	return p, nil
}

// create records the sale and then dispatches its receipt. A failed receipt never fails
// the request; the sale is already committed.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	params, err := req.params()
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	s, err := h.sales.Record(r.Context(), params)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	h.log.Info("sale recorded",
		zap.Stringer("sale_id", s.ID),
		zap.Int64("total", s.TotalAmount),
		zap.String("wa_status", string(s.Status)),
	)

	notification := notificationResponse{Outcome: notify.OutcomeSkipped, Status: s.Status}

	res, err := h.notifier.Dispatch(context.WithoutCancel(r.Context()), s.ID)
	if err != nil {
		h.log.Error("dispatching receipt", zap.Stringer("sale_id", s.ID), zap.Error(err))
		notification.Error = "receipt not dispatched"
	} else {
		notification = toNotification(res)
	}

	respond.JSON(w, h.log, http.StatusCreated, createSaleResponse{
		SaleID:       s.ID,
		TotalAmount:  s.TotalAmount,
		TotalCost:    s.TotalCost,
		TotalProfit:  s.TotalProfit,
		Paid:         s.Paid,
		Change:       s.Change,
		Notification: notification,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rng, err := period.Parse(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	sales, err := h.sales.List(r.Context(), rng)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, toResponseList(sales))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, h.log, http.StatusBadRequest, "invalid id")
		return
	}

	s, err := h.sales.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, toResponse(s))
}

func (h *Handler) resend(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, h.log, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.notifier.Resend(context.WithoutCancel(r.Context()), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	resp := resendResponse{OK: res.Outcome == notify.OutcomeSent, Status: res.Status}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}

	respond.JSON(w, h.log, http.StatusOK, resp)
}
