package importcsv

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
	"github.com/waserda/kasir/internal/http/respond"
	"github.com/waserda/kasir/internal/importer"
)

const maxUploadSize = 10 << 20

// Handler accepts directory spreadsheets as a multipart "file" field.
type Handler struct {
	svc *importer.Service
	log *zap.Logger
}

func NewHandler(svc *importer.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) Buyers(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, importer.KindBuyers)
}

func (h *Handler) Investors(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, importer.KindInvestors)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, kind importer.Kind) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, r, h.log, apperr.Invalid("file", "failed to parse form: "+err.Error()))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, h.log, apperr.Invalid("file", "required"))
		return
	}
	defer file.Close()

	n, err := h.svc.Import(r.Context(), kind, file)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	h.log.Info("directory imported", zap.String("kind", string(kind)), zap.Int("rows", n))

	respond.JSON(w, h.log, http.StatusCreated, importResponse{Imported: n})
}
