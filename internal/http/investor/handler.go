package investor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/http/respond"
	"github.com/waserda/kasir/internal/investor"
)

type Handler struct {
	svc *investor.Service
	log *zap.Logger
}

func NewHandler(svc *investor.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

type createInvestorRequest struct {
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
}

type investorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Amount    int64     `json:"amount"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type yearTotalResponse struct {
	Year  int   `json:"year"`
	Count int   `json:"count"`
	Total int64 `json:"total"`
}

type listResponse struct {
	Items   []investorResponse  `json:"items"`
	Summary []yearTotalResponse `json:"summary"`
}

func toResponse(inv *investor.Investor) investorResponse {
	return investorResponse{
		ID:        inv.ID,
		Name:      inv.Name,
		Year:      inv.Year,
		Amount:    inv.Amount,
		Note:      inv.Note,
		CreatedAt: inv.CreatedAt,
	}
}

func parseYear(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return nil, apperr.Invalid("year", "must be a number")
	}

	return &year, nil
}

// list returns the investors of ?year= (all when absent) together with the per-year
// totals over every year.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r.URL.Query().Get("year"))
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	invs, err := h.svc.List(r.Context(), year)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	totals, err := h.svc.Summary(r.Context())
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	resp := listResponse{
		Items:   make([]investorResponse, 0, len(invs)),
		Summary: make([]yearTotalResponse, 0, len(totals)),
	}

	for _, inv := range invs {
		resp.Items = append(resp.Items, toResponse(inv))
	}

	for _, t := range totals {
		resp.Summary = append(resp.Summary, yearTotalResponse(t))
	}

	respond.JSON(w, h.log, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvestorRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	inv, err := h.svc.Create(r.Context(), investor.CreateParams(req))
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, toResponse(inv))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, h.log, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
