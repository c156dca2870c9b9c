package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/auth"
	"github.com/waserda/kasir/internal/http/respond"
)

const CookieName = "kasir_token"

type Handler struct {
	svc *auth.Service
	log *zap.Logger
}

func NewHandler(svc *auth.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	token, exp, err := h.svc.Login(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.log.Warn("login rejected", zap.String("username", req.Username))
		respond.Message(w, h.log, http.StatusUnauthorized, err.Error())

		return
	}

	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	respond.JSON(w, h.log, http.StatusOK, loginResponse{Token: token, ExpiresAt: exp})
}

func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func tokenFrom(r *http.Request) string {
	if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(bearer)
	}

	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}

	return ""
}

// Middleware rejects requests without a valid token in the Authorization header or
// the session cookie.
func Middleware(svc *auth.Service, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFrom(r)
			if token == "" {
				respond.Message(w, log, http.StatusUnauthorized, "authentication required")
				return
			}

			if _, err := svc.Verify(token); err != nil {
				log.Debug("token rejected", zap.Error(err))
				respond.Message(w, log, http.StatusUnauthorized, "invalid or expired token")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
