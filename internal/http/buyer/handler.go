package buyer

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/buyer"
	"github.com/waserda/kasir/internal/http/respond"
)

type Handler struct {
	svc *buyer.Service
	log *zap.Logger
}

func NewHandler(svc *buyer.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type createBuyerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	WAOptIn *bool  `json:"wa_opt_in"`
	Note    string `json:"note"`
}

type buyerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	WAOptIn   bool      `json:"wa_opt_in"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(b *buyer.Buyer) buyerResponse {
	return buyerResponse{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		WAOptIn:   b.WAOptIn,
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	resp := make([]buyerResponse, 0, len(buyers))
	for _, b := range buyers {
		resp = append(resp, toResponse(b))
	}

	respond.JSON(w, h.log, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBuyerRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	optIn := true
	if req.WAOptIn != nil {
		optIn = *req.WAOptIn
	}

	b, err := h.svc.Create(r.Context(), buyer.CreateParams{
		Name:    req.Name,
		Phone:   req.Phone,
		WAOptIn: optIn,
		Note:    req.Note,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, toResponse(b))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, h.log, http.StatusBadRequest, "invalid id")
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, toResponse(b))
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
