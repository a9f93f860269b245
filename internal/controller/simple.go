package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Faint(true)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayVerdicts prints one line per check plus failure details.
func (s *SimpleUI) DisplayVerdicts(ctx context.Context, verdicts []m.Verdict) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, verdict := range verdicts {
		s.printVerdict(verdict)
	}

	return nil
}

func (s *SimpleUI) printVerdict(verdict m.Verdict) {
	info, _ := m.CatalogEntry(verdict.Category)

	s.printf("%s [%2d] %-20s %s\n",
		statusMark(verdict.Status), info.ID, verdict.Category, info.Title)

	switch verdict.Status {
	case m.Pass:
		if len(verdict.Evidence) > 0 {
			s.printf("       evidence: %s\n", strings.Join(verdict.Evidence, ", "))
		}

	case m.Fail:
		s.printf("       Expected: %s\n", verdict.Expected)
		s.printf("       Actual:   %s\n", verdict.Observed)

		if verdict.Suggestion != "" {
			s.printf("       Suggestion:\n")

			for _, line := range strings.Split(verdict.Suggestion, "\n") {
				s.printf("         %s\n", line)
			}
		}

	case m.Skip:
		s.printf("       skipped: %s\n", verdict.Reason)
	}
}

// DisplaySummary renders the per-status totals as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Checks"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"passed", fmt.Sprintf("%d", summary.Passed)})
	table.Append([]string{"failed", fmt.Sprintf("%d", summary.Failed)})
	table.Append([]string{"skipped", fmt.Sprintf("%d", summary.Skipped)})

	total := summary.Passed + summary.Failed + summary.Skipped
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})
	table.Render()

	s.printf("\n%s\n", tableBuffer.String())

	return nil
}

// DisplayCatalog renders the fixed check catalog.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, entries []m.CategoryInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Check", "Scope", "Title"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, entry := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", entry.ID),
			string(entry.Category),
			string(entry.Scope),
			entry.Title,
		})
	}

	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayReport prints a previously saved report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Grading report for %s (generated %s)\n\n",
		report.Root, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	if err := s.DisplayVerdicts(ctx, report.Checks); err != nil {
		return err
	}

	return s.DisplaySummary(ctx, report.Summary)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func statusMark(status m.Status) string {
	switch status {
	case m.Pass:
		return passStyle.Render("✓")
	case m.Fail:
		return failStyle.Render("✗")
	default:
		return skipStyle.Render("-")
	}
}
