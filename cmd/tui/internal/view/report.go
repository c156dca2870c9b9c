package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/waserda/kasir/internal/report"
)

type reportState int

const (
	reportStateTimeframe reportState = iota
	reportStateLoading
	reportStateSummary
	reportStatePath
	reportStateExporting
)

type ReportModel struct {
	CommonModel
	reports   *report.Service
	storeName string

	state           reportState
	err             error
	timeframePicker TimeframePicker

	summary *report.Summary
	label   string

	form    *huh.Form
	path    *string
	spinner spinner.Model
	status  string
}

func NewReportModel(reports *report.Service, storeName string) ReportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	path := "./laporan"

	return ReportModel{
		reports:         reports,
		storeName:       storeName,
		state:           reportStateTimeframe,
		timeframePicker: NewTimeframePicker(),
		path:            &path,
		spinner:         s,
	}
}

func (m ReportModel) Title() string { return "Reports" }

func (m ReportModel) ShortHelp() string {
	switch m.state {
	case reportStateSummary:
		return "p: export PDF | t: change timeframe | Esc: back"
	case reportStateExporting, reportStateLoading:
		return "Working..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.state = reportStateLoading
		m.label = msg.Timeframe.String()
		m.err = nil

		return m, tea.Batch(m.spinner.Tick, m.loadReportCmd(msg))

	case reportLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = reportStateTimeframe
			m.timeframePicker.Reset()

			return m, nil
		}

		m.summary = msg.summary
		m.state = reportStateSummary

		return m, nil

	case pdfWrittenMsg:
		m.state = reportStateSummary
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.status = successStyle.Render("Saved " + msg.file)
		}

		return m, nil
	}

	switch m.state {
	case reportStateTimeframe:
		return m.updateTimeframe(msg)
	case reportStateSummary:
		return m.updateSummary(msg)
	case reportStatePath:
		return m.updatePath(msg)
	case reportStateLoading, reportStateExporting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ReportModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ReportModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "t":
		m.state = reportStateTimeframe
		m.status = ""
		m.timeframePicker.Reset()
	case "p":
		m.form = m.buildPathForm()
		m.state = reportStatePath
		m.status = ""

		return m, m.form.Init()
	}

	return m, nil
}

func (m ReportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = reportStateSummary
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = reportStateExporting

	return m, tea.Batch(m.spinner.Tick, m.writePDFCmd(*m.path))
}

func (m ReportModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./laporan").
				Value(m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ReportModel) View() string {
	var content string

	switch m.state {
	case reportStateTimeframe:
		content = m.timeframePicker.View()
		if m.err != nil {
			content = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + content
		}
	case reportStateLoading:
		content = fmt.Sprintf("%s Loading report...", m.spinner.View())
	case reportStateExporting:
		content = fmt.Sprintf("%s Rendering PDF...", m.spinner.View())
	case reportStatePath:
		content = m.form.View()
	case reportStateSummary:
		content = summaryView(m.label, m.summary)
		if m.status != "" {
			content += "\n\n" + m.status
		}

		content += "\n\n" + faintStyle.Render(m.ShortHelp())
	}

	return padded.Render(content)
}

func summaryView(label string, sum *report.Summary) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s (%s)", label, sum.Range)))
	b.WriteString("\n\n")

	share := sum.Share
	fmt.Fprintf(&b, "Profit            %s\n", activeStyle(FormatAmount(share.TotalProfit)))
	fmt.Fprintf(&b, "Employees (%d%%)   %s\n", report.EmployeePct, FormatAmount(share.Employees))
	fmt.Fprintf(&b, "Investors (%d%%)   %s\n", report.InvestorPct, FormatAmount(share.Investors))
	fmt.Fprintf(&b, "Cash (%d%%)        %s\n", report.CashPct, FormatAmount(share.Cash))

	if leak := share.Leakage(); leak != 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("Unallocated after rounding: %s", FormatAmount(leak))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-12s %6s %16s %16s\n", "Day", "Sales", "Total", "Profit")

	for _, d := range sum.Days {
		fmt.Fprintf(&b, "%-12s %6d %16s %16s\n",
			FormatDate(d.Day), d.TransactionCount, FormatAmount(d.TotalSales), FormatAmount(d.TotalProfit))
	}

	fmt.Fprintf(&b, "%-12s %6d %16s %16s",
		"Total", sum.Totals.TransactionCount, FormatAmount(sum.Totals.TotalSales), FormatAmount(sum.Totals.TotalProfit))

	return b.String()
}

type reportLoadedMsg struct {
	summary *report.Summary
	err     error
}

const reportTimeout = 30 * time.Second

func (m ReportModel) loadReportCmd(sel TimeframeSelectedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		sum, err := m.reports.Report(ctx, sel.Range)

		return reportLoadedMsg{summary: sum, err: err}
	}
}

type pdfWrittenMsg struct {
	file string
	err  error
}

func reportFilename(sum *report.Summary) string {
	name := "laporan"

	if sum.Range.From != nil {
		name += "_" + FormatDate(*sum.Range.From)
	}

	if sum.Range.To != nil {
		name += "_" + FormatDate(*sum.Range.To)
	}

	return name + ".pdf"
}

func (m ReportModel) writePDFCmd(dir string) tea.Cmd {
	sum := m.summary
	storeName := m.storeName

	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pdfWrittenMsg{err: fmt.Errorf("creating directory: %w", err)}
		}

		file := filepath.Join(dir, reportFilename(sum))

		f, err := os.Create(file)
		if err != nil {
			return pdfWrittenMsg{err: fmt.Errorf("creating file: %w", err)}
		}

		if err := report.RenderPDF(f, storeName, sum); err != nil {
			_ = f.Close()
			return pdfWrittenMsg{err: err}
		}

		if err := f.Close(); err != nil {
			return pdfWrittenMsg{err: fmt.Errorf("closing file: %w", err)}
		}

		return pdfWrittenMsg{file: file}
	}
}
