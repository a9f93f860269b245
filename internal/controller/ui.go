// Package controller provides output adapters for displaying grading results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// UI defines the interface for displaying check verdicts and reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for the UI to finish (user closes it)
	DisplayVerdicts(ctx context.Context, verdicts []m.Verdict) error
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayCatalog(ctx context.Context, entries []m.CategoryInfo) error
	DisplayReport(ctx context.Context, report m.Report) error
}

// NewUI selects the UI implementation: interactive TUI when requested and
// attached to a terminal, plain output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
