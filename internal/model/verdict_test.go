package model

import (
	"testing"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{Pass, "pass"},
		{Fail, "fail"},
		{Skip, "skip"},
		{Status(42), "unknown"},
	}

	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	verdicts := []Verdict{
		{Category: CategoryErrorHandling, Status: Pass},
		{Category: CategoryInterrupt, Status: Fail},
		{Category: CategoryValidation, Status: Fail},
		{Category: CategoryTimestamp, Status: Skip},
	}

	summary := Summarize(verdicts)

	if summary.Passed != 1 {
		t.Errorf("Passed = %d, want 1", summary.Passed)
	}
	if summary.Failed != 2 {
		t.Errorf("Failed = %d, want 2", summary.Failed)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	if summary.Passed != 0 || summary.Failed != 0 || summary.Skipped != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", summary)
	}
}

func TestVerdictPredicates(t *testing.T) {
	if !(Verdict{Status: Pass}).Passed() {
		t.Error("Passed() = false for a pass verdict")
	}
	if !(Verdict{Status: Fail}).Failed() {
		t.Error("Failed() = false for a fail verdict")
	}
	if (Verdict{Status: Skip}).Passed() || (Verdict{Status: Skip}).Failed() {
		t.Error("skip verdict reported as pass or fail")
	}
}
