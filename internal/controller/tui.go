package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

var (
	tuiBorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	tuiDetailStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("245"))

	tuiHelpStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {}

// Wait blocks until the UI is closed. The interactive program already ran to
// completion inside DisplayVerdicts, so this is a no-op.
func (p *TUI) Wait(ctx context.Context) {}

// DisplayVerdicts shows the verdicts in an interactive table. Navigation
// updates a detail pane with the failure explanation and remediation.
func (p *TUI) DisplayVerdicts(ctx context.Context, verdicts []m.Verdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newVerdictModel(verdicts)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySummary prints the totals after the interactive table closes.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	total := summary.Passed + summary.Failed + summary.Skipped

	_, err := fmt.Fprintf(p.output, "Total: %d | Passed: %d | Failed: %d | Skipped: %d\n",
		total, summary.Passed, summary.Failed, summary.Skipped)

	return err
}

// DisplayCatalog lists the check catalog without interaction.
func (p *TUI) DisplayCatalog(ctx context.Context, entries []m.CategoryInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(p.output, "%2d  %-20s %-10s %s\n",
			entry.ID, entry.Category, entry.Scope, entry.Title); err != nil {
			return err
		}
	}

	return nil
}

// DisplayReport shows a saved report through the interactive table.
func (p *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if _, err := fmt.Fprintf(p.output, "Grading report for %s\n", report.Root); err != nil {
		return err
	}

	if err := p.DisplayVerdicts(ctx, report.Checks); err != nil {
		return err
	}

	return p.DisplaySummary(ctx, report.Summary)
}

// verdictModel is the Bubble Tea model backing the interactive verdict table.
type verdictModel struct {
	table    table.Model
	verdicts []m.Verdict
	width    int
	height   int
	detail   bool
	quitting bool
}

func newVerdictModel(verdicts []m.Verdict) verdictModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Check", Width: 22},
		{Title: "Status", Width: 8},
		{Title: "Evidence", Width: 40},
	}

	rows := make([]table.Row, 0, len(verdicts))

	for _, verdict := range verdicts {
		info, _ := m.CatalogEntry(verdict.Category)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", info.ID),
			string(verdict.Category),
			verdict.Status.String(),
			strings.Join(verdict.Evidence, ", "),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return verdictModel{table: t, verdicts: verdicts}
}

func (vm verdictModel) Init() tea.Cmd {
	return nil
}

func (vm verdictModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width = msg.Width
		vm.height = msg.Height

		return vm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			vm.quitting = true
			return vm, tea.Quit

		case "enter":
			vm.detail = !vm.detail
			return vm, nil
		}
	}

	var cmd tea.Cmd
	vm.table, cmd = vm.table.Update(msg)

	return vm, cmd
}

func (vm verdictModel) View() string {
	if vm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(tuiBorderStyle.Render(vm.table.View()))
	b.WriteString("\n")

	if vm.detail {
		b.WriteString(vm.detailView())
	}

	b.WriteString(tuiHelpStyle.Render("enter: details • q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (vm verdictModel) detailView() string {
	cursor := vm.table.Cursor()
	if cursor < 0 || cursor >= len(vm.verdicts) {
		return ""
	}

	verdict := vm.verdicts[cursor]

	var b strings.Builder

	switch verdict.Status {
	case m.Pass:
		b.WriteString("evidence: " + strings.Join(verdict.Evidence, ", "))

	case m.Fail:
		b.WriteString("Expected: " + verdict.Expected + "\n")
		b.WriteString("Actual:   " + verdict.Observed + "\n")

		if verdict.Suggestion != "" {
			b.WriteString(verdict.Suggestion)
		}

	case m.Skip:
		b.WriteString("skipped: " + verdict.Reason)
	}

	return tuiDetailStyle.Render(b.String()) + "\n"
}
