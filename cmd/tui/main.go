package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/waserda/kasir/cmd/tui/internal/view"
	"github.com/waserda/kasir/internal/buyer"
	buyerStore "github.com/waserda/kasir/internal/buyer/store"
	"github.com/waserda/kasir/internal/config"
	"github.com/waserda/kasir/internal/database"
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

type services struct {
	sales     *sale.Service
	buyers    *buyer.Service
	investors *investor.Service
	notifier  *notify.Service
	reports   *report.Service
	importer  *importer.Service
	storeName string
}

type model struct {
	svc services

	// current is nil while the menu is shown.
	current view.View
	size    tea.WindowSizeMsg
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) open(v view.View) (tea.Model, tea.Cmd) {
	m.current = v

	var sizeCmd tea.Cmd
	if m.size.Width > 0 {
		size := m.size
		sizeCmd = func() tea.Msg { return size }
	}

	return m, tea.Batch(v.Init(), sizeCmd)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case view.BackMsg:
		m.current = nil
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == nil {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				return m.open(view.NewCheckoutModel(m.svc.sales, m.svc.buyers, m.svc.notifier))
			case "2":
				return m.open(view.NewListModel(m.svc.sales, m.svc.notifier))
			case "3":
				return m.open(view.NewReceiptsModel(m.svc.sales, m.svc.notifier))
			case "4":
				return m.open(view.NewReportModel(m.svc.reports, m.svc.storeName))
			case "5":
				return m.open(view.NewBuyersModel(m.svc.buyers))
			case "6":
				return m.open(view.NewInvestorsModel(m.svc.investors, m.svc.reports))
			case "7":
				return m.open(view.NewImportModel(m.svc.importer))
			}

			return m, nil
		}
	}

	if m.current == nil {
		return m, nil
	}

	next, cmd := m.current.Update(msg)
	if v, ok := next.(view.View); ok {
		m.current = v
	}

	return m, cmd
}

func (m model) View() string {
	if m.current != nil {
		return m.current.View()
	}

	return lipgloss.NewStyle().Padding(2).Render(
		m.svc.storeName + "\n\n" +
			"1. New Sale\n" +
			"2. Sales\n" +
			"3. Failed Receipts\n" +
			"4. Reports\n" +
			"5. Buyers\n" +
			"6. Investors\n" +
			"7. Import CSV\n\n" +
			"q. Quit",
	)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Checkout dates and period presets follow the store's calendar.
	time.Local = cfg.Location()

	// Logs go to a file so they don't tear the terminal UI.
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development, File: cfg.Log.TUIFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.New(cfg.ConnectionString(), database.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			fmt.Fprintf(os.Stderr, "failed to apply schema: %v\n", err)
			os.Exit(1)
		}
	}

	var sender notify.Sender = notify.NewHTTPSender(cfg.Notify.URL)
	if !cfg.Notify.Enabled {
		sender = notify.DisabledSender{}
	}

	saleService := sale.NewService(saleStore.New(db))
	buyerService := buyer.NewService(buyerStore.New(db), cfg.App.CountryCode)
	investorService := investor.NewService(investorStore.New(db))

	svc := services{
		sales:     saleService,
		buyers:    buyerService,
		investors: investorService,
		notifier:  notify.NewService(saleService, sender, log, cfg.App.StoreName, notify.WithTimeout(cfg.Notify.Timeout)),
		reports:   report.NewService(reportStore.New(db), saleService, investorService, log),
		importer:  importer.NewService(buyerService, investorService),
		storeName: cfg.App.StoreName,
	}

	p := tea.NewProgram(model{svc: svc}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("tui failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "failed to run TUI: %v\n", err)
		os.Exit(1)
	}
}
