package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tge-sherbrooke/bonif-grader/internal/adapter"
	"github.com/tge-sherbrooke/bonif-grader/internal/domain/detectors"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// Grader runs every evidence check against one repository snapshot.
type Grader interface {
	// Grade runs all checks. threads bounds check concurrency; values
	// below 1 run the checks sequentially.
	Grade(ctx context.Context, layout m.Layout, threads int) ([]m.Verdict, error)
}

type grader struct {
	fs adapter.SourceFSAdapter
	py adapter.PythonFileAdapter
}

// NewGrader creates a Grader.
func NewGrader(fs adapter.SourceFSAdapter, py adapter.PythonFileAdapter) Grader {
	return &grader{fs: fs, py: py}
}

// Grade snapshots the repository once, runs all checks, and returns the
// verdicts in catalog order. Checks are independent: one check's outcome
// never suppresses another's, and they run concurrently over the immutable
// snapshot.
func (g *grader) Grade(ctx context.Context, layout m.Layout, threads int) ([]m.Verdict, error) {
	target := detectors.NewTarget(layout, g.fs, g.py)
	defer target.Close()

	all := detectors.All()
	verdicts := make([]m.Verdict, len(all))

	group, groupCtx := errgroup.WithContext(ctx)

	limit := threads
	if limit < 1 {
		limit = 1
	}

	group.SetLimit(limit)

	for i, detector := range all {
		i, detector := i, detector
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			verdicts[i] = detector.Check(groupCtx, target)

			slog.Debug("check completed",
				"category", detector.Info.Category,
				"status", verdicts[i].Status.String(),
			)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return verdicts, nil
}
