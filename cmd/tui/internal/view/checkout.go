package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/waserda/kasir/internal/buyer"
	"github.com/waserda/kasir/internal/notify"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/sale"
)

type checkoutState int

const (
	checkoutStateCart checkoutState = iota
	checkoutStateItem
	checkoutStatePay
	checkoutStateSaving
	checkoutStateResult
)

const walkIn = ""

// checkoutFields holds the form bindings on the heap so they survive model copies.
type checkoutFields struct {
	name  string
	cost  string
	price string
	qty   string
	buyer string
	paid  string
	date  string
}

// CheckoutModel builds a cart, records the sale and dispatches its receipt.
type CheckoutModel struct {
	CommonModel
	sales    *sale.Service
	buyers   *buyer.Service
	notifier *notify.Service

	state     checkoutState
	form      *huh.Form
	fields    *checkoutFields
	cart      []sale.LineParams
	buyerList []*buyer.Buyer

	result *checkoutResultMsg
	status string
}

func NewCheckoutModel(sales *sale.Service, buyers *buyer.Service, notifier *notify.Service) CheckoutModel {
	return CheckoutModel{
		sales:    sales,
		buyers:   buyers,
		notifier: notifier,
	}
}

func (m CheckoutModel) Title() string { return "New Sale" }

func (m CheckoutModel) ShortHelp() string {
	switch m.state {
	case checkoutStateItem, checkoutStatePay:
		return "Enter/Tab: navigate form | Esc: cancel"
	case checkoutStateResult:
		return "Enter: next sale | Esc: back"
	}

	return "a: add item | x: remove last | p: pay | Esc: back"
}

func (m CheckoutModel) Init() tea.Cmd {
	return m.loadBuyersCmd()
}

func (m CheckoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBuyersMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load buyers: %v", msg.err)
			return m, nil
		}

		m.buyerList = msg.buyers

		return m, nil

	case checkoutResultMsg:
		if msg.err != nil {
			m.state = checkoutStatePay
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.form = m.buildPayForm(m.fields)

			return m, m.form.Init()
		}

		m.result = &msg
		m.state = checkoutStateResult
		m.status = ""

		return m, nil
	}

	switch m.state {
	case checkoutStateCart:
		return m.updateCart(msg)
	case checkoutStateItem, checkoutStatePay:
		return m.updateForm(msg)
	case checkoutStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m CheckoutModel) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "a":
		m.fields = &checkoutFields{qty: "1"}
		m.form = buildItemForm(m.fields)
		m.state = checkoutStateItem
		m.status = ""

		return m, m.form.Init()
	case "x":
		if len(m.cart) > 0 {
			m.cart = m.cart[:len(m.cart)-1]
		}
	case "p":
		if len(m.cart) == 0 {
			m.status = "Cart is empty."
			return m, nil
		}

		m.fields = &checkoutFields{buyer: walkIn, date: FormatDate(time.Now())}
		m.form = m.buildPayForm(m.fields)
		m.state = checkoutStatePay
		m.status = ""

		return m, m.form.Init()
	}

	return m, nil
}

func (m CheckoutModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = checkoutStateCart
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == checkoutStateItem {
		m.cart = append(m.cart, m.fields.item())
		m.state = checkoutStateCart
		m.form = nil

		return m, nil
	}

	params, err := m.fields.params(m.cart)
	if err != nil {
		m.status = err.Error()
		m.form = m.buildPayForm(m.fields)

		return m, m.form.Init()
	}

	m.state = checkoutStateSaving

	return m, m.recordCmd(params)
}

func (m CheckoutModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, Back
	case tea.KeyEnter:
		m.cart = nil
		m.result = nil
		m.state = checkoutStateCart

		return m, m.loadBuyersCmd()
	}

	return m, nil
}

// parseRupiah accepts whole rupiah with optional '.' grouping, e.g. "12.500".
func parseRupiah(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if s == "" {
		return 0, fmt.Errorf("required")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("enter a whole amount")
	}

	return n, nil
}

func validateRupiah(s string) error {
	_, err := parseRupiah(s)
	return err
}

func validateQty(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("quantity must be a positive number")
	}

	return nil
}

func buildItemForm(f *checkoutFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Item").
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("item name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().Key("cost").Title("Cost price").Placeholder("10.000").Value(&f.cost).Validate(validateRupiah),
			huh.NewInput().Key("price").Title("Sale price").Placeholder("12.500").Value(&f.price).Validate(validateRupiah),
			huh.NewInput().Key("qty").Title("Quantity").Value(&f.qty).Validate(validateQty),
		),
	).WithWidth(45).WithShowHelp(false)
}

// item converts validated item fields into a cart line.
func (f *checkoutFields) item() sale.LineParams {
	cost, _ := parseRupiah(f.cost)
	price, _ := parseRupiah(f.price)
	qty, _ := strconv.ParseInt(strings.TrimSpace(f.qty), 10, 64)

	return sale.LineParams{
		Name:  strings.TrimSpace(f.name),
		Cost:  cost,
		Price: price,
		Qty:   qty,
	}
}

func (m CheckoutModel) buildPayForm(f *checkoutFields) *huh.Form {
	options := []huh.Option[string]{huh.NewOption("Walk-in (no receipt)", walkIn)}
	for _, b := range m.buyerList {
		label := b.Name
		if b.Phone != "" {
			label += " " + b.Phone
		}

		options = append(options, huh.NewOption(label, b.ID.String()))
	}

	_, totals := sale.Compute(m.cart)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Value(&f.date).
				Validate(func(s string) error {
					_, err := period.ParseDay(strings.TrimSpace(s))
					return err
				}),
			huh.NewSelect[string]().
				Key("buyer").
				Title("Buyer").
				Options(options...).
				Value(&f.buyer),
			huh.NewInput().
				Key("paid").
				Title("Paid").
				Value(&f.paid).
				Description("Total "+FormatAmount(totals.Amount)).
				Validate(func(s string) error {
					paid, err := parseRupiah(s)
					if err != nil {
						return err
					}

					if paid < totals.Amount {
						return fmt.Errorf("paid is less than total %s", FormatAmount(totals.Amount))
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (f *checkoutFields) params(cart []sale.LineParams) (sale.RecordParams, error) {
	paid, err := parseRupiah(f.paid)
	if err != nil {
		return sale.RecordParams{}, err
	}

	date := period.Day(time.Now())
	if strings.TrimSpace(f.date) != "" {
		date, err = period.ParseDay(strings.TrimSpace(f.date))
		if err != nil {
			return sale.RecordParams{}, fmt.Errorf("invalid date: %w", err)
		}
	}

	params := sale.RecordParams{
		Date:  date,
		Lines: cart,
		Paid:  paid,
	}

	if id := f.buyer; id != walkIn {
		buyerID, err := uuid.Parse(id)
		if err != nil {
			return sale.RecordParams{}, fmt.Errorf("invalid buyer: %w", err)
		}

		params.BuyerID = &buyerID
	}

	return params, nil
}

func (m CheckoutModel) View() string {
	var content string

	switch m.state {
	case checkoutStateItem, checkoutStatePay:
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			m.cartView(),
			lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Render(m.form.View()),
		)
	case checkoutStateSaving:
		content = "Recording sale..."
	case checkoutStateResult:
		content = m.resultView()
	default:
		content = m.cartView()
	}

	if m.status != "" {
		content = errorStyle.Render(m.status) + "\n\n" + content
	}

	return padded.Render(content + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

func (m CheckoutModel) cartView() string {
	if len(m.cart) == 0 {
		return "Cart is empty. Press 'a' to add an item."
	}

	lines, totals := sale.Compute(m.cart)

	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-24s %3d x %12s = %14s\n", l.Name, l.Qty, FormatAmount(l.SalePrice), FormatAmount(l.Total))
	}

	fmt.Fprintf(&b, "\n%-24s %s\n", "Total", activeStyle(FormatAmount(totals.Amount)))
	fmt.Fprintf(&b, "%-24s %s", "Profit", FormatAmount(totals.Profit))

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

func (m CheckoutModel) resultView() string {
	r := m.result

	var b strings.Builder

	b.WriteString(successStyle.Bold(true).Render("Sale recorded"))
	fmt.Fprintf(&b, "\n\nTotal  %s\nPaid   %s\nChange %s\n\n",
		FormatAmount(r.sale.TotalAmount), FormatAmount(r.sale.Paid), activeStyle(FormatAmount(r.sale.Change)))

	switch {
	case r.dispatchErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Receipt not dispatched: %v", r.dispatchErr)))
	case r.receipt.Outcome == notify.OutcomeSkipped:
		b.WriteString(faintStyle.Render("No receipt (walk-in or buyer without WhatsApp)."))
	case r.receipt.Outcome == notify.OutcomeSent:
		b.WriteString(successStyle.Render("Receipt sent on WhatsApp."))
	default:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Receipt failed: %v. Retry from Failed Receipts.", r.receipt.Err)))
	}

	return b.String()
}

type loadBuyersMsg struct {
	buyers []*buyer.Buyer
	err    error
}

func (m CheckoutModel) loadBuyersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		buyers, err := m.buyers.List(ctx, "")

		return loadBuyersMsg{buyers: buyers, err: err}
	}
}

type checkoutResultMsg struct {
	sale        *sale.Sale
	receipt     notify.Result
	dispatchErr error
	err         error
}

func (m CheckoutModel) recordCmd(params sale.RecordParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		s, err := m.sales.Record(ctx, params)
		cancel()

		if err != nil {
			return checkoutResultMsg{err: err}
		}

		res, err := m.notifier.Dispatch(context.Background(), s.ID)

		return checkoutResultMsg{sale: s, receipt: res, dispatchErr: err}
	}
}
