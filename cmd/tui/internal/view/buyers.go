package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/waserda/kasir/internal/buyer"
)

type buyersState int

const (
	buyersStateList buyersState = iota
	buyersStateAdd
	buyersStateConfirmDelete
)

// buyerItem wraps a buyer to implement list.Item.
type buyerItem struct {
	b *buyer.Buyer
}

func (i buyerItem) Title() string {
	return i.b.Name
}

func (i buyerItem) Description() string {
	phone := i.b.Phone
	if phone == "" {
		phone = "no WhatsApp"
	}

	if i.b.Note != "" {
		return phone + " · " + i.b.Note
	}

	return phone
}

func (i buyerItem) FilterValue() string {
	return i.b.Name + " " + i.b.Phone
}

type buyerFields struct {
	name    string
	phone   string
	optIn   bool
	note    string
	confirm bool
}

type BuyersModel struct {
	CommonModel
	buyers *buyer.Service

	state  buyersState
	list   list.Model
	form   *huh.Form
	fields *buyerFields

	loading bool
	status  string
}

func NewBuyersModel(buyers *buyer.Service) BuyersModel {
	l := list.New([]list.Item{}, buyerDelegate{}, 60, 20)
	l.Title = "Buyers"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return BuyersModel{
		buyers:  buyers,
		list:    l,
		loading: true,
	}
}

func (m BuyersModel) Title() string { return "Buyers" }

func (m BuyersModel) ShortHelp() string {
	switch m.state {
	case buyersStateAdd, buyersStateConfirmDelete:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return "Esc: back | a: add | x: delete | /: filter | r: refresh"
}

func (m BuyersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BuyersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDirectoryMsg[*buyer.Buyer]:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, 0, len(msg.items))
		for _, b := range msg.items {
			items = append(items, buyerItem{b: b})
		}

		return m, m.list.SetItems(items)

	case directoryChangedMsg:
		m.state = buyersStateList
		m.form = nil
		m.status = msg.describe()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case buyersStateAdd, buyersStateConfirmDelete:
		return m.updateForm(msg)
	}

	return m.updateList(msg)
}

func (m BuyersModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break // let the list clear the filter
			}

			return m, Back
		case "r":
			return m, m.loadCmd()
		case "a":
			m.fields = &buyerFields{optIn: true}
			m.form = buildBuyerForm(m.fields)
			m.state = buyersStateAdd
			m.status = ""

			return m, m.form.Init()
		case "x":
			if _, ok := m.list.SelectedItem().(buyerItem); !ok {
				return m, nil
			}

			m.fields = &buyerFields{}
			m.form = buildConfirmForm("Delete this buyer? Their sales are kept.", &m.fields.confirm)
			m.state = buyersStateConfirmDelete

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m BuyersModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = buyersStateList
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

	if m.state == buyersStateAdd {
		return m, m.createCmd(buyer.CreateParams{
			Name:    m.fields.name,
			Phone:   m.fields.phone,
			WAOptIn: m.fields.optIn,
			Note:    m.fields.note,
		})
	}

	selected, ok := m.list.SelectedItem().(buyerItem)
	if !ok || !m.fields.confirm {
		m.state = buyersStateList
		m.form = nil

		return m, nil
	}

	return m, m.deleteCmd(selected.b)
}

func buildBuyerForm(f *buyerFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Key("phone").
				Title("WhatsApp number (optional)").
				Placeholder("0812...").
				Value(&f.phone),
			huh.NewConfirm().
				Key("opt_in").
				Title("Send receipts on WhatsApp?").
				Affirmative("Yes").
				Negative("No").
				Value(&f.optIn),
			huh.NewInput().
				Key("note").
				Title("Note (optional)").
				Value(&f.note),
		),
	).WithWidth(50).WithShowHelp(false)
}

func buildConfirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(value),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m BuyersModel) View() string {
	if m.loading {
		return padded.Render("Loading buyers...")
	}

	content := m.list.View()

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return padded.Render(content + "\n" + faintStyle.Render(m.ShortHelp()))
}

// Messages

type loadDirectoryMsg[T any] struct {
	items []T
	err   error
}

type directoryChangedMsg struct {
	verb string
	name string
	err  error
}

func (msg directoryChangedMsg) describe() string {
	if msg.err != nil {
		return fmt.Sprintf("Error: %v", msg.err)
	}

	return fmt.Sprintf("%s %s.", msg.verb, msg.name)
}

func (m BuyersModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		buyers, err := m.buyers.List(ctx, "")

		return loadDirectoryMsg[*buyer.Buyer]{items: buyers, err: err}
	}
}

func (m BuyersModel) createCmd(params buyer.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		b, err := m.buyers.Create(ctx, params)
		if err != nil {
			return directoryChangedMsg{err: err}
		}

		return directoryChangedMsg{verb: "Added", name: b.Name}
	}
}

func (m BuyersModel) deleteCmd(b *buyer.Buyer) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.buyers.Delete(ctx, b.ID); err != nil {
			return directoryChangedMsg{err: err}
		}

		return directoryChangedMsg{verb: "Deleted", name: b.Name}
	}
}

// buyerDelegate renders a buyer on two lines.
type buyerDelegate struct{}

func (d buyerDelegate) Height() int                             { return 2 }
func (d buyerDelegate) Spacing() int                            { return 0 }
func (d buyerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d buyerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(buyerItem)
	if !ok {
		return
	}

	cursor := "  "
	title := bi.Title()

	if index == m.Index() {
		cursor = "> "
		title = activeStyle(title)
	}

	fmt.Fprintf(w, "%s%s\n    %s", cursor, title, faintStyle.Render(bi.Description()))
}
