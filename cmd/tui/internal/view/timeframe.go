package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/waserda/kasir/internal/period"
)

// TimeframeSelectedMsg carries the range chosen in a TimeframePicker.
type TimeframeSelectedMsg struct {
	Timeframe Timeframe
	Range     period.Range
}

var reportTimeframes = []Timeframe{
	TimeframeToday,
	TimeframeYesterday,
	TimeframeThisWeek,
	TimeframeLastWeek,
	TimeframeThisMonth,
	TimeframeLastMonth,
	TimeframeThisYear,
	TimeframeAll,
	TimeframeCustom,
}

type rangeFields struct {
	from string
	to   string
}

// customRange parses an inclusive from/to pair typed by the user.
func customRange(from, to string) (period.Range, error) {
	start, err := period.ParseDay(from)
	if err != nil {
		return period.Range{}, err
	}

	end, err := period.ParseDay(to)
	if err != nil {
		return period.Range{}, err
	}

	if end.Before(start) {
		return period.Range{}, fmt.Errorf("end date is before start date")
	}

	return period.Between(start, end), nil
}

// TimeframePicker lets the user pick a preset range or type a custom one.
type TimeframePicker struct {
	options []Timeframe
	cursor  int

	form   *huh.Form
	fields *rangeFields

	err error
	now func() time.Time
}

func NewTimeframePicker(options ...Timeframe) TimeframePicker {
	if len(options) == 0 {
		options = reportTimeframes
	}

	return TimeframePicker{options: options, now: time.Now}
}

func (m TimeframePicker) Init() tea.Cmd {
	return nil
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if m.form != nil {
		return m.updateCustom(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		tf := m.options[m.cursor]
		if tf == TimeframeCustom {
			today := FormatDate(m.now())
			m.fields = &rangeFields{from: today, to: today}
			m.form = buildRangeForm(m.fields)
			m.err = nil

			return m, m.form.Init()
		}

		sel := TimeframeSelectedMsg{Timeframe: tf, Range: TimeframeRange(tf, m.now())}

		return m, func() tea.Msg { return sel }
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.err = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m.submitCustom()
}

func (m TimeframePicker) submitCustom() (TimeframePicker, tea.Cmd) {
	rng, err := customRange(m.fields.from, m.fields.to)
	if err != nil {
		m.err = err
		m.form = buildRangeForm(m.fields)

		return m, m.form.Init()
	}

	m.form = nil
	m.err = nil
	sel := TimeframeSelectedMsg{Timeframe: TimeframeCustom, Range: rng}

	return m, func() tea.Msg { return sel }
}

func buildRangeForm(f *rangeFields) *huh.Form {
	validDay := func(s string) error {
		_, err := period.ParseDay(strings.TrimSpace(s))
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("From").Placeholder("YYYY-MM-DD").CharLimit(10).Value(&f.from).Validate(validDay),
			huh.NewInput().Title("To").Placeholder("YYYY-MM-DD").CharLimit(10).Value(&f.to).Validate(validDay),
		),
	).WithWidth(30).WithShowHelp(false)
}

func (m TimeframePicker) View() string {
	var b strings.Builder

	if m.form != nil {
		b.WriteString("Custom range (Esc to go back)\n\n")
		b.WriteString(m.form.View())
	} else {
		b.WriteString("Select period:\n\n")

		for i, tf := range m.options {
			if i == m.cursor {
				fmt.Fprintf(&b, "> %s\n", activeStyle(tf.String()))
				continue
			}

			fmt.Fprintf(&b, "  %s\n", tf)
		}

		b.WriteString(faintStyle.Render("\n(Enter to select, Esc to back)"))
	}

	if m.err != nil {
		b.WriteString("\n\n" + errorStyle.Render(m.err.Error()))
	}

	return b.String()
}

// IsSelecting reports whether the preset list, not the custom form, has focus.
func (m TimeframePicker) IsSelecting() bool {
	return m.form == nil
}

func (m *TimeframePicker) Reset() {
	m.cursor = 0
	m.form = nil
	m.fields = nil
	m.err = nil
}
