package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/waserda/kasir/internal/importer"
)

const importTimeout = 2 * time.Minute

type importStage int

const (
	importStageKind importStage = iota
	importStageFile
	importStageRunning
	importStageDone
)

// ImportModel loads a buyers or investors spreadsheet from disk.
type ImportModel struct {
	CommonModel
	importer *importer.Service

	stage  importStage
	kind   *importer.Kind
	form   *huh.Form
	picker filepicker.Model

	file     string
	imported int
	err      error
}

func NewImportModel(svc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.Height = 15

	kind := importer.KindBuyers

	return ImportModel{
		importer: svc,
		kind:     &kind,
		form:     buildKindForm(&kind),
		picker:   fp,
	}
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

func buildKindForm(kind *importer.Kind) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[importer.Kind]().
				Title("Import into").
				Options(
					huh.NewOption("Buyers", importer.KindBuyers),
					huh.NewOption("Investors", importer.KindInvestors),
				).
				Value(kind),
		),
	).WithShowHelp(false)
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importDoneMsg:
		m.stage = importStageDone
		m.imported = msg.count
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.back()
		}
	}

	switch m.stage {
	case importStageKind:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			m.stage = importStageFile
			return m, m.picker.Init()
		}

		return m, cmd

	case importStageFile:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.stage = importStageRunning
			m.file = path

			return m, m.importCmd(*m.kind, path)
		}

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) back() (tea.Model, tea.Cmd) {
	switch m.stage {
	case importStageFile, importStageDone:
		m.stage = importStageKind
		m.err = nil
		m.form = buildKindForm(m.kind)

		return m, m.form.Init()
	case importStageRunning:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	var content string

	switch m.stage {
	case importStageKind:
		content = m.form.View()
	case importStageFile:
		cols := strings.Join(importer.ProfileFor(*m.kind).Columns(), ", ")
		content = fmt.Sprintf("Select the %s file\n%s\n\n%s",
			*m.kind, faintStyle.Render("Columns: "+cols+" (';' or ',' separated)"), m.picker.View())
	case importStageRunning:
		content = fmt.Sprintf("Importing %s...", m.file)
	case importStageDone:
		if m.err != nil {
			content = errorStyle.Render(fmt.Sprintf("Nothing imported: %v", m.err))
		} else {
			content = successStyle.Render(fmt.Sprintf("Imported %d %s.", m.imported, *m.kind))
		}

		content += "\n\n(Esc to import another file)"
	}

	return padded.Render(content)
}

type importDoneMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(kind importer.Kind, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		n, err := m.importer.Import(ctx, kind, f)

		return importDoneMsg{count: n, err: err}
	}
}
