// Package detectors implements the per-category evidence checks. Each check
// is a pure function from an immutable repository snapshot to a verdict;
// checks share no mutable state and may run in any order or in parallel.
package detectors

import (
	"context"
	"sync"

	"github.com/tge-sherbrooke/bonif-grader/internal/adapter"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// Target is the snapshot of one student repository for one grading run. The
// entry-point file is loaded lazily and cached so checks that share it do not
// re-parse, while tree-wide checks open their own files independently.
type Target struct {
	Layout m.Layout
	FS     adapter.SourceFSAdapter
	Python adapter.PythonFileAdapter

	mainOnce sync.Once
	main     *adapter.PythonSource
}

// NewTarget builds a Target for the resolved layout.
func NewTarget(layout m.Layout, fs adapter.SourceFSAdapter, py adapter.PythonFileAdapter) *Target {
	return &Target{Layout: layout, FS: fs, Python: py}
}

// Main returns the parsed entry-point file, or nil when it is missing or
// does not parse. Loaded once per run.
func (t *Target) Main(ctx context.Context) *adapter.PythonSource {
	t.mainOnce.Do(func() {
		if src, ok := t.Python.Load(ctx, t.FS, t.Layout.MainFile); ok {
			t.main = src
		}
	})

	return t.main
}

// Close releases parse trees held by the snapshot.
func (t *Target) Close() {
	if t.main != nil {
		t.main.Close()
		t.main = nil
	}
}

// Func is a single evidence check.
type Func func(ctx context.Context, t *Target) m.Verdict

// Detector pairs a catalog entry with its check function.
type Detector struct {
	Info  m.CategoryInfo
	Check Func
}

var checkFuncs = map[m.Category]Func{
	m.CategoryErrorHandling:  CheckErrorHandling,
	m.CategoryInterrupt:      CheckInterruptHandling,
	m.CategoryValidation:     CheckDataValidation,
	m.CategoryTimestamp:      CheckTimestamp,
	m.CategoryConfiguration:  CheckConfiguration,
	m.CategoryExtraSensors:   CheckExtraSensors,
	m.CategoryPersistence:    CheckPersistence,
	m.CategoryStudentTests:   CheckStudentTests,
	m.CategoryDocumentation:  CheckDocumentation,
	m.CategoryModularization: CheckModularization,
	m.CategoryTimerPattern:   CheckTimerPattern,
}

// All returns the detectors in catalog order.
func All() []Detector {
	detectors := make([]Detector, 0, len(m.Catalog))

	for _, info := range m.Catalog {
		detectors = append(detectors, Detector{Info: info, Check: checkFuncs[info.Category]})
	}

	return detectors
}

func pass(category m.Category, evidence ...string) m.Verdict {
	return m.Verdict{Category: category, Status: m.Pass, Evidence: evidence}
}

func fail(category m.Category, expected, observed, suggestion string) m.Verdict {
	return m.Verdict{
		Category:   category,
		Status:     m.Fail,
		Expected:   expected,
		Observed:   observed,
		Suggestion: suggestion,
	}
}

// skipMain is the verdict for main-file checks when the entry point is
// missing or does not parse. A broken submission is reported as
// inconclusive, never as a category failure.
func skipMain(category m.Category, layout m.Layout) m.Verdict {
	return m.Verdict{
		Category: category,
		Status:   m.Skip,
		Reason:   string(layout.MainFile) + " not found or has syntax errors",
	}
}
