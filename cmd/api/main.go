package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/auth"
	"github.com/waserda/kasir/internal/buyer"
	buyerStore "github.com/waserda/kasir/internal/buyer/store"
	"github.com/waserda/kasir/internal/config"
	"github.com/waserda/kasir/internal/database"
	kasirHttp "github.com/waserda/kasir/internal/http"
	authHandler "github.com/waserda/kasir/internal/http/auth"
	buyerHandler "github.com/waserda/kasir/internal/http/buyer"
	healthHandler "github.com/waserda/kasir/internal/http/health"
	importHandler "github.com/waserda/kasir/internal/http/importcsv"
	investorHandler "github.com/waserda/kasir/internal/http/investor"
	reportHandler "github.com/waserda/kasir/internal/http/report"
	saleHandler "github.com/waserda/kasir/internal/http/sale"
	"github.com/waserda/kasir/internal/importer"
	"github.com/waserda/kasir/internal/investor"
	investorStore "github.com/waserda/kasir/internal/investor/store"
	"github.com/waserda/kasir/internal/logger"
	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/report"
	reportStore "github.com/waserda/kasir/internal/report/store"
	"github.com/waserda/kasir/internal/sale"
	saleStore "github.com/waserda/kasir/internal/sale/store"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash for AUTH_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println(hash)

		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.New(cfg.ConnectionString(), database.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			return err
		}

		log.Info("schema applied")
	}

	var sender notify.Sender = notify.NewHTTPSender(cfg.Notify.URL)
	if !cfg.Notify.Enabled {
		log.Warn("receipt notifications disabled")
		sender = notify.DisabledSender{}
	}

	var (
		saleService     = sale.NewService(saleStore.New(db))
		buyerService    = buyer.NewService(buyerStore.New(db), cfg.App.CountryCode)
		investorService = investor.NewService(investorStore.New(db))
		notifyService   = notify.NewService(saleService, sender, log, cfg.App.StoreName, notify.WithTimeout(cfg.Notify.Timeout))
		reportService   = report.NewService(reportStore.New(db), saleService, investorService, log)
		importService   = importer.NewService(buyerService, investorService)
		authService     = auth.NewService(auth.Config{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
			Secret:       cfg.Auth.Secret,
			TTL:          cfg.Auth.TokenTTL,
		})
	)

	opts := kasirHttp.Options{AllowedOrigins: cfg.Server.AllowedOrigins}
	if cfg.AuthEnabled() {
		opts.Guard = authService
	} else {
		log.Warn("AUTH_PASSWORD_HASH not set, API is unauthenticated")
	}

	router := kasirHttp.New(log, kasirHttp.Handlers{
		Sales:     saleHandler.NewHandler(saleService, notifyService, log),
		Buyers:    buyerHandler.NewHandler(buyerService, log),
		Investors: investorHandler.NewHandler(investorService, log),
		Reports:   reportHandler.NewHandler(reportService, log, cfg.App.StoreName),
		Import:    importHandler.NewHandler(importService, log),
		Auth:      authHandler.NewHandler(authService, log),
		Health:    healthHandler.NewHandler(db, log),
	}, opts)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.App.StoreName))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	return nil
}
