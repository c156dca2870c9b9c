package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/sale"
)

// ReceiptsModel walks the queue of receipts that could not be delivered, oldest first.
type ReceiptsModel struct {
	CommonModel
	sales    *sale.Service
	notifier *notify.Service

	queue   []*sale.Sale
	current *sale.Sale

	loading    bool
	sending    bool
	status     string
	totalCount int
	delivered  int
}

func NewReceiptsModel(sales *sale.Service, notifier *notify.Service) ReceiptsModel {
	return ReceiptsModel{
		sales:    sales,
		notifier: notifier,
		loading:  true,
	}
}

func (m ReceiptsModel) Title() string { return "Failed Receipts" }

func (m ReceiptsModel) ShortHelp() string {
	return "Enter: resend | s: skip | Esc: back"
}

func (m ReceiptsModel) Init() tea.Cmd {
	return m.loadFailedCmd()
}

func (m ReceiptsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "enter":
			if m.current != nil && !m.sending {
				m.sending = true
				m.status = "Sending..."

				return m, resendCmd(m.notifier, m.current)
			}
		case "s":
			if m.current != nil && !m.sending {
				m.status = ""
				m.next()
			}
		}

	case loadFailedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.queue = msg.sales
		m.totalCount = len(m.queue)
		m.next()

	case resendMsg:
		m.sending = false
		m.status = describeResend(msg)

		// A failed attempt keeps the sale on screen so it can be retried.
		if msg.err == nil && msg.result.Outcome == notify.OutcomeSent {
			m.delivered++
			m.next()
		}
	}

	return m, nil
}

func (m ReceiptsModel) View() string {
	if m.loading {
		return padded.Render("Loading failed receipts...")
	}

	if m.current == nil {
		if m.totalCount == 0 {
			return padded.Render(m.status + "\nNo failed receipts.\n\n(Esc to back)")
		}

		return padded.Render(fmt.Sprintf("All done! %d of %d receipts delivered.\n\n(Esc to back)", m.delivered, m.totalCount))
	}

	info := fmt.Sprintf(
		"Date:  %s\nBuyer: %s\nPhone: %s\nTotal: %s\n",
		FormatDate(m.current.Date),
		m.current.BuyerName,
		m.current.BuyerPhone,
		FormatAmount(m.current.TotalAmount),
	)

	status := ""
	if m.status != "" {
		style := faintStyle
		if m.sending {
			style = successStyle
		}

		status = "\n" + style.Render(m.status) + "\n"
	}

	return padded.Render(
		fmt.Sprintf("Failed Receipt (%d remaining)\n\n%s%s\n(%s)",
			len(m.queue)+1, info, status, m.ShortHelp()),
	)
}

func (m *ReceiptsModel) next() {
	if len(m.queue) == 0 {
		m.current = nil
		return
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
}

type loadFailedMsg struct {
	sales []*sale.Sale
	err   error
}

func (m ReceiptsModel) loadFailedCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sales, err := m.sales.Failed(ctx)

		return loadFailedMsg{sales: sales, err: err}
	}
}
