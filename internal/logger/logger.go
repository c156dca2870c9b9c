package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Config selects the verbosity and encoder of the process logger.
type Config struct {
	Level       string
	Development bool
	// File redirects output away from stdout/stderr when set.
	File string
}

// New builds a zap logger. Level is one of zap's textual levels ("debug", "info", ...).
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapcfg := zap.NewProductionConfig()
	if cfg.Development {
		zapcfg = zap.NewDevelopmentConfig()
	}

	zapcfg.Level = lvl

	if cfg.File != "" {
		zapcfg.OutputPaths = []string{cfg.File}
		zapcfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapcfg.Build()
}

// RequestLogger logs one line per handled request.
func RequestLogger(zl *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				zl.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
