package model

// Status represents the outcome of a single check.
type Status int

const (
	// Pass indicates structural evidence of the improvement was found.
	Pass Status = iota
	// Fail indicates no evidence was found.
	Fail
	// Skip indicates the check was inconclusive (target file missing or
	// not parseable). A broken submission is not evidence of absence.
	Skip
)

// String returns the lowercase label for the status.
func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	}

	return "unknown"
}

// MarshalYAML serializes the status as its label.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a status label back into a Status.
func (s *Status) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var label string
	if err := unmarshal(&label); err != nil {
		return err
	}

	switch label {
	case "pass":
		*s = Pass
	case "fail":
		*s = Fail
	default:
		*s = Skip
	}

	return nil
}

// Verdict is the result of one check for one grading run. Verdicts are
// independent values; checks never share mutable state.
type Verdict struct {
	Category Category `yaml:"category"`
	Status   Status   `yaml:"status"`

	// Evidence lists what was matched on a pass (e.g. sensor names).
	Evidence []string `yaml:"evidence,omitempty"`

	// Expected and Observed describe a failure in one line each.
	Expected string `yaml:"expected,omitempty"`
	Observed string `yaml:"observed,omitempty"`

	// Suggestion is a concrete remediation example shown on failure.
	Suggestion string `yaml:"suggestion,omitempty"`

	// Reason explains a skip.
	Reason string `yaml:"reason,omitempty"`
}

// Passed reports whether the check found evidence.
func (v Verdict) Passed() bool { return v.Status == Pass }

// Failed reports whether the check found no evidence.
func (v Verdict) Failed() bool { return v.Status == Fail }

// Summary aggregates verdict counts for one grading run.
type Summary struct {
	Passed  int `yaml:"passed"`
	Failed  int `yaml:"failed"`
	Skipped int `yaml:"skipped"`
}

// Summarize counts verdicts by status.
func Summarize(verdicts []Verdict) Summary {
	var s Summary

	for _, v := range verdicts {
		switch v.Status {
		case Pass:
			s.Passed++
		case Fail:
			s.Failed++
		case Skip:
			s.Skipped++
		}
	}

	return s
}
