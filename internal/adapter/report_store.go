package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// reportFileName is the file written inside the reports directory.
const reportFileName = "grade.yaml"

// ReportStore persists grading reports so a run's outcome can be reviewed
// later with `bonif view`.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) error
	LoadReport(dir m.Path) (m.Report, error)
}

// YAMLReportStore stores one report per directory as YAML.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes the report into dir, creating the directory if needed.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.Report) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", target, err)
	}

	return nil
}

// LoadReport reads the report stored in dir.
func (s *YAMLReportStore) LoadReport(dir m.Path) (m.Report, error) {
	target := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report %s: %w", target, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", target, err)
	}

	return report, nil
}
