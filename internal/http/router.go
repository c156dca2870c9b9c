package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/auth"
	authhttp "github.com/waserda/kasir/internal/http/auth"
	"github.com/waserda/kasir/internal/http/buyer"
	"github.com/waserda/kasir/internal/http/health"
	"github.com/waserda/kasir/internal/http/importcsv"
	"github.com/waserda/kasir/internal/http/investor"
	"github.com/waserda/kasir/internal/http/report"
	"github.com/waserda/kasir/internal/http/sale"
	"github.com/waserda/kasir/internal/logger"
)

type Handlers struct {
	Sales     *sale.Handler
	Buyers    *buyer.Handler
	Investors *investor.Handler
	Reports   *report.Handler
	Import    *importcsv.Handler
	Auth      *authhttp.Handler
	Health    *health.Handler
}

type Options struct {
	AllowedOrigins []string
	// Guard protects every route except login, logout and health when set.
	Guard *auth.Service
}

func New(log *zap.Logger, h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.RequestLogger(log))
	router.Use(middleware.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/healthz", h.Health)
		r.Route("/auth", h.Auth.Routes)

		r.Group(func(r chi.Router) {
			if opts.Guard != nil {
				r.Use(authhttp.Middleware(opts.Guard, log))
			}

			r.Route("/sales", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Sales.Routes(r)
			})

			r.Route("/buyers", func(r chi.Router) {
				r.Post("/import", h.Import.Buyers)
				h.Buyers.Routes(r)
			})

			r.Route("/investors", func(r chi.Router) {
				r.Post("/import", h.Import.Investors)
				h.Investors.Routes(r)
			})

			r.Route("/reports", h.Reports.Routes)
		})
	})

	return router
}
