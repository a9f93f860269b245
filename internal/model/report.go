package model

import "time"

// Report is the persisted result of one grading run.
type Report struct {
	Root        string    `yaml:"root"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Checks      []Verdict `yaml:"checks"`
	Summary     Summary   `yaml:"summary"`
}

// NewReport builds a report from the verdicts of a run.
func NewReport(root Path, verdicts []Verdict) Report {
	return Report{
		Root:        string(root),
		GeneratedAt: time.Now().UTC(),
		Checks:      verdicts,
		Summary:     Summarize(verdicts),
	}
}
