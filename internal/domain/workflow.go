package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tge-sherbrooke/bonif-grader/internal/adapter"
	"github.com/tge-sherbrooke/bonif-grader/internal/controller"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// GradeArgs carries the parameters of a grading run.
type GradeArgs struct {
	Root       m.Path
	Reports    m.Path
	MainFile   string
	SensorsDir string
	TestsDir   string
	Threads    int
}

// ViewArgs carries the parameters for re-displaying a saved report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow ties the locator, grader, report store, and UI together for the
// CLI commands.
type Workflow interface {
	Grade(ctx context.Context, args GradeArgs) error
	View(ctx context.Context, args ViewArgs) error
	Catalog(ctx context.Context, entries []m.CategoryInfo) error
}

type workflow struct {
	store  adapter.ReportStore
	ui     controller.UI
	grader Grader
}

// NewWorkflow creates a Workflow with the provided collaborators.
func NewWorkflow(store adapter.ReportStore, ui controller.UI, grader Grader) Workflow {
	return &workflow{store: store, ui: ui, grader: grader}
}

// Grade runs every check against the repository, displays the verdicts,
// persists the report, and returns an error when at least one check failed
// so the process exits nonzero.
func (w *workflow) Grade(ctx context.Context, args GradeArgs) error {
	layout := ResolveLayout(args.Root, args.MainFile, args.SensorsDir, args.TestsDir)

	slog.Info("grading run started", "root", layout.Root, "main", layout.MainFile)

	verdicts, err := w.grader.Grade(ctx, layout, args.Threads)
	if err != nil {
		return fmt.Errorf("grading failed: %w", err)
	}

	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	if err := w.ui.DisplayVerdicts(ctx, verdicts); err != nil {
		return err
	}

	summary := m.Summarize(verdicts)
	if err := w.ui.DisplaySummary(ctx, summary); err != nil {
		return err
	}

	w.ui.Wait(ctx)

	if args.Reports != "" {
		report := m.NewReport(layout.Root, verdicts)
		if err := w.store.SaveReport(args.Reports, report); err != nil {
			slog.Error("failed to save report", "dir", args.Reports, "error", err)
			return err
		}
	}

	slog.Info("grading run finished",
		"passed", summary.Passed, "failed", summary.Failed, "skipped", summary.Skipped)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", summary.Failed, len(verdicts))
	}

	return nil
}

// Catalog displays the fixed check catalog.
func (w *workflow) Catalog(ctx context.Context, entries []m.CategoryInfo) error {
	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplayCatalog(ctx, entries)
}

// View loads the saved report and displays it.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.store.LoadReport(args.Reports)
	if err != nil {
		return err
	}

	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		return err
	}

	w.ui.Wait(ctx)

	return nil
}
