package detectors

import (
	"context"
	"regexp"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// Validation evidence is matched on comment/docstring-stripped text so that
// vocabulary inside comments never counts. The French variants match the
// course's starter code conventions. Stripped text rejoins tokens with
// single spaces, so a unary minus may be separated from its digits; the
// numeric patterns allow that gap.
var validationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(temperature|temp|humidity|humidite|hum)\s*[<>]=?\s*(-\s*)?\d`),
	regexp.MustCompile(`(?i)(-\s*)?\d+\.?\d*\s*[<>]=?\s*(temperature|temp|humidity|humidite|hum)`),
	regexp.MustCompile(`(?i)(is_valid|valide|validate|validation|plage|range|aberrant)`),
	regexp.MustCompile(`(?i)(MIN_|MAX_|SEUIL_|THRESHOLD)`),
}

const validationSuggestion = `Validate values before displaying them:
  if temperature < -50 or temperature > 100:
      print('Valeur aberrante!')
  MIN_TEMPERATURE = -40
  MAX_TEMPERATURE = 120`

// CheckDataValidation detects range checks on sensor values: a comparison
// between a sensor-named identifier and a numeric literal, validation
// vocabulary, or threshold-style constants.
func CheckDataValidation(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryValidation, t.Layout)
	}

	stripped := main.Stripped()

	for _, pattern := range validationPatterns {
		if match := pattern.FindString(stripped); match != "" {
			return pass(m.CategoryValidation, match)
		}
	}

	return fail(m.CategoryValidation,
		"data validation (range checks on sensor values)",
		"no validation patterns found in "+string(t.Layout.MainFile),
		validationSuggestion,
	)
}
