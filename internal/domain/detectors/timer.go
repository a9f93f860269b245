package detectors

import (
	"context"
	"regexp"
	"strings"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// intervalComparisonPattern matches the timer-in-loop shape: two identifiers
// subtracted, compared against a third with an ordering operator.
var intervalComparisonPattern = regexp.MustCompile(`\w+\s*-\s*\w+\s*>=?\s*\w+`)

const timerSuggestion = `Replace time.sleep() with the timer-in-loop pattern:
  previous = time.monotonic()
  while True:
      current = time.monotonic()
      if current - previous >= INTERVAL:
          read_sensor(sensor)
          previous = current
      time.sleep(0.05)  # Polling rapide`

// CheckTimerPattern detects non-blocking timing: a monotonic clock read
// combined with an interval comparison. The starter code blocks in
// time.sleep(5).
func CheckTimerPattern(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryTimerPattern, t.Layout)
	}

	raw := main.Raw()

	hasMonotonic := strings.Contains(raw, "time.monotonic") || strings.Contains(raw, "monotonic()")
	hasInterval := intervalComparisonPattern.MatchString(raw)

	if !hasMonotonic || !hasInterval {
		observed := "no time.monotonic() found"
		if hasMonotonic {
			observed = "time.monotonic() found but no interval comparison"
		}

		return fail(m.CategoryTimerPattern,
			"time.monotonic() with an interval comparison (non-blocking timing)",
			observed,
			timerSuggestion,
		)
	}

	return pass(m.CategoryTimerPattern, "time.monotonic with interval comparison")
}
