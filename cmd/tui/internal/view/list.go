package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/sale"
)

var listTimeframes = []Timeframe{TimeframeToday, TimeframeThisMonth, TimeframeLastMonth, TimeframeAll}

type ListModel struct {
	CommonModel
	sales    *sale.Service
	notifier *notify.Service

	table  table.Model
	rows   []*sale.Sale
	detail *sale.Sale

	dateFilterIdx int

	loading bool
	err     error
	status  string
}

func NewListModel(sales *sale.Service, notifier *notify.Service) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Buyer", Width: 20},
		{Title: "Total", Width: 14},
		{Title: "Profit", Width: 12},
		{Title: "Receipt", Width: 9},
	}

	t := newTable(columns, 15)

	return ListModel{
		sales:    sales,
		notifier: notifier,
		table:    t,
		loading:  true,
	}
}

func (m ListModel) Title() string { return "Sales" }

func (m ListModel) ShortHelp() string {
	return "Esc: back | Enter: details | w: resend receipt | d: date filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadSalesCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.rows = msg.sales
		m.refreshTable()

		return m, nil

	case saleDetailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.detail = msg.sale

		return m, nil

	case resendMsg:
		m.status = describeResend(msg)
		return m, m.loadSalesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}

			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSalesCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % len(listTimeframes)
			m.loading = true
			return m, m.loadSalesCmd()
		case "enter":
			if s := m.selected(); s != nil {
				return m, m.loadDetailCmd(s.ID)
			}
		case "w":
			if s := m.selected(); s != nil {
				m.status = "Sending receipt..."
				return m, resendCmd(m.notifier, s)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) selected() *sale.Sale {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}

	return m.rows[idx]
}

func (m ListModel) View() string {
	if m.loading {
		return padded.Render("Loading sales...")
	}

	if m.err != nil {
		return padded.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var total, profit int64
	for _, s := range m.rows {
		total += s.TotalAmount
		profit += s.TotalProfit
	}

	header := fmt.Sprintf(
		"[d] Date: %s | %d sales | Total %s | Profit %s",
		activeStyle(listTimeframes[m.dateFilterIdx].String()),
		len(m.rows),
		FormatAmount(total),
		FormatAmount(profit),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.detail != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(detailView(m.detail))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return padded.Render(content + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

func detailView(s *sale.Sale) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sale %s\n\n", FormatDate(s.Date))

	if s.BuyerName != "" {
		fmt.Fprintf(&b, "Buyer: %s %s\n\n", s.BuyerName, s.BuyerPhone)
	}

	for _, l := range s.Lines {
		fmt.Fprintf(&b, "%s\n  %d x %s = %s\n", l.Name, l.Qty, FormatAmount(l.SalePrice), FormatAmount(l.Total))
	}

	fmt.Fprintf(&b, "\nTotal  %s\nPaid   %s\nChange %s\nProfit %s\n",
		FormatAmount(s.TotalAmount), FormatAmount(s.Paid), FormatAmount(s.Change), FormatAmount(s.TotalProfit))

	fmt.Fprintf(&b, "\nReceipt: %s", FormatStatus(s.Status))
	if s.SentAt != nil {
		fmt.Fprintf(&b, " at %s", s.SentAt.Local().Format(time.DateTime))
	}

	return b.String()
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, s := range m.rows {
		buyer := s.BuyerName
		if buyer == "" {
			buyer = "walk-in"
		}

		rows = append(rows, table.Row{
			FormatDate(s.Date),
			buyer,
			FormatAmount(s.TotalAmount),
			FormatAmount(s.TotalProfit),
			FormatStatus(s.Status),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	sales []*sale.Sale
	err   error
}

func (m ListModel) loadSalesCmd() tea.Cmd {
	rng := TimeframeRange(listTimeframes[m.dateFilterIdx], time.Now())

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sales, err := m.sales.List(ctx, rng)

		return loadListMsg{sales: sales, err: err}
	}
}

type saleDetailMsg struct {
	sale *sale.Sale
	err  error
}

func (m ListModel) loadDetailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.sales.Get(ctx, id)

		return saleDetailMsg{sale: s, err: err}
	}
}

type resendMsg struct {
	result notify.Result
	err    error
}

// resendCmd shares the sending path of the failed receipts queue. The send itself is
// bounded by the notifier timeout.
func resendCmd(notifier *notify.Service, s *sale.Sale) tea.Cmd {
	id := s.ID

	return func() tea.Msg {
		res, err := notifier.Resend(context.Background(), id)
		return resendMsg{result: res, err: err}
	}
}

func describeResend(msg resendMsg) string {
	switch {
	case msg.err != nil:
		return fmt.Sprintf("Error: %v", msg.err)
	case msg.result.Outcome == notify.OutcomeSent:
		return "Receipt sent."
	case msg.result.Err != nil:
		return fmt.Sprintf("Receipt not delivered (%s): %v", msg.result.Status, msg.result.Err)
	}

	return fmt.Sprintf("Receipt %s.", msg.result.Status)
}
