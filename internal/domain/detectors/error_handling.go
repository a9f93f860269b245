package detectors

import (
	"context"
	"fmt"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

const errorHandlingSuggestion = `Add error handling around sensor reads:
  try:
      temperature = sensor.temperature
  except Exception as e:
      print(f'Erreur de lecture: {e}')`

// CheckErrorHandling detects try/except blocks in the entry-point file. The
// starter code has none, so any try statement is evidence the student added
// error handling.
func CheckErrorHandling(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryErrorHandling, t.Layout)
	}

	count := countNodesOfType(main.Tree.RootNode(), "try_statement")
	if count == 0 {
		return fail(m.CategoryErrorHandling,
			"at least one try/except block in "+string(t.Layout.MainFile),
			"0 try/except blocks found",
			errorHandlingSuggestion,
		)
	}

	return pass(m.CategoryErrorHandling, fmt.Sprintf("%d try/except block(s)", count))
}
