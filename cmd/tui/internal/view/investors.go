package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/waserda/kasir/internal/investor"
	"github.com/waserda/kasir/internal/report"
)

type investorFields struct {
	name    string
	year    string
	amount  string
	note    string
	confirm bool
}

func (f *investorFields) params() (investor.CreateParams, error) {
	year, err := strconv.Atoi(strings.TrimSpace(f.year))
	if err != nil {
		return investor.CreateParams{}, fmt.Errorf("year must be a number")
	}

	amount, err := parseRupiah(f.amount)
	if err != nil {
		return investor.CreateParams{}, err
	}

	return investor.CreateParams{
		Name:   strings.TrimSpace(f.name),
		Year:   year,
		Amount: amount,
		Note:   strings.TrimSpace(f.note),
	}, nil
}

type InvestorsModel struct {
	CommonModel
	investors *investor.Service
	reports   *report.Service

	table   table.Model
	summary report.InvestorSummary
	year    *int

	form     *huh.Form
	fields   *investorFields
	deleting bool

	loading bool
	status  string
}

func NewInvestorsModel(investors *investor.Service, reports *report.Service) InvestorsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Year", Width: 6},
		{Title: "Amount", Width: 16},
		{Title: "Note", Width: 24},
	}

	return InvestorsModel{
		investors: investors,
		reports:   reports,
		table:     newTable(columns, 12),
		loading:   true,
	}
}

func (m InvestorsModel) Title() string { return "Investors" }

func (m InvestorsModel) ShortHelp() string {
	if m.form != nil {
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return "Esc: back | a: add | x: delete | y: year filter | r: refresh"
}

func (m InvestorsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvestorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case investorSummaryMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.summary = msg.summary
		m.refreshTable()

		return m, nil

	case directoryChangedMsg:
		m.form = nil
		m.deleting = false
		m.status = msg.describe()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 16)
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "y":
			m.year = nextYear(m.summary.Years, m.year)
			m.loading = true

			return m, m.loadCmd()
		case "a":
			m.fields = &investorFields{year: strconv.Itoa(time.Now().Year())}
			m.form = buildInvestorForm(m.fields)
			m.status = ""

			return m, m.form.Init()
		case "x":
			if m.selected() == nil {
				return m, nil
			}

			m.fields = &investorFields{}
			m.form = buildConfirmForm("Delete this investment?", &m.fields.confirm)
			m.deleting = true

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvestorsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.deleting = false

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.deleting {
		inv := m.selected()
		if inv == nil || !m.fields.confirm {
			m.form = nil
			m.deleting = false

			return m, nil
		}

		return m, m.deleteCmd(inv)
	}

	params, err := m.fields.params()
	if err != nil {
		m.form = nil
		m.status = fmt.Sprintf("Error: %v", err)

		return m, nil
	}

	return m, m.createCmd(params)
}

// nextYear cycles all years, then each year of the summary in order.
func nextYear(years []investor.YearTotal, current *int) *int {
	if len(years) == 0 {
		return nil
	}

	if current == nil {
		y := years[0].Year
		return &y
	}

	for i, yt := range years {
		if yt.Year == *current && i+1 < len(years) {
			y := years[i+1].Year
			return &y
		}
	}

	return nil
}

func (m *InvestorsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.summary.Items))
	for _, inv := range m.summary.Items {
		rows = append(rows, table.Row{
			inv.Name,
			strconv.Itoa(inv.Year),
			FormatAmount(inv.Amount),
			inv.Note,
		})
	}

	m.table.SetRows(rows)
}

func (m InvestorsModel) selected() *investor.Investor {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.summary.Items) {
		return nil
	}

	return m.summary.Items[idx]
}

func buildInvestorForm(f *investorFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Year").
				Value(&f.year).
				Validate(func(s string) error {
					y, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || !investor.ValidYear(y) {
						return fmt.Errorf("year must be between %d and %d", investor.MinYear, investor.MaxYear)
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount (Rp)").
				Value(&f.amount).
				Validate(func(s string) error {
					n, err := parseRupiah(s)
					if err != nil {
						return err
					}
					if n <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("Note (optional)").
				Value(&f.note),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m InvestorsModel) View() string {
	if m.loading {
		return padded.Render("Loading investors...")
	}

	filter := "all years"
	if m.year != nil {
		filter = strconv.Itoa(*m.year)
	}

	header := fmt.Sprintf("Investors (%s)", filter)
	if m.status != "" {
		header += "  " + faintStyle.Render(m.status)
	}

	var years strings.Builder
	years.WriteString("Per year\n")
	for _, yt := range m.summary.Years {
		fmt.Fprintf(&years, "%d  %3d  %s\n", yt.Year, yt.Count, FormatAmount(yt.Total))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		m.table.View(),
		lipgloss.NewStyle().PaddingTop(1).Render(years.String()),
	)

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return padded.Render(content + "\n" + faintStyle.Render(m.ShortHelp()))
}

// Messages

type investorSummaryMsg struct {
	summary report.InvestorSummary
	err     error
}

func (m InvestorsModel) loadCmd() tea.Cmd {
	year := m.year

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.reports.InvestorSummary(ctx, year)

		return investorSummaryMsg{summary: summary, err: err}
	}
}

func (m InvestorsModel) createCmd(params investor.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		inv, err := m.investors.Create(ctx, params)
		if err != nil {
			return directoryChangedMsg{err: err}
		}

		return directoryChangedMsg{verb: "Added", name: inv.Name}
	}
}

func (m InvestorsModel) deleteCmd(inv *investor.Investor) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.investors.Delete(ctx, inv.ID); err != nil {
			return directoryChangedMsg{err: err}
		}

		return directoryChangedMsg{verb: "Deleted", name: inv.Name}
	}
}
