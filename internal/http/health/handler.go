package health

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/http/respond"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db  Pinger
	log *zap.Logger
}

func NewHandler(db Pinger, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

type statusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		respond.JSON(w, h.log, http.StatusServiceUnavailable, statusResponse{Status: "degraded", Database: "unreachable"})

		return
	}

	respond.JSON(w, h.log, http.StatusOK, statusResponse{Status: "ok", Database: "ok"})
}
