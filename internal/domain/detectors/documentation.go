package detectors

import (
	"context"
	"fmt"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// baselineDocstrings is what the starter code ships with: the module
// docstring plus the main() docstring.
const baselineDocstrings = 2

const documentationSuggestion = `Add docstrings to your functions:
  def read_temperature(sensor):
      """Lit la temperature du capteur en Celsius."""
      ...`

// CheckDocumentation counts docstring positions holding a string literal in
// the entry-point file. More than the starter code's two suggests the
// student improved documentation.
func CheckDocumentation(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryDocumentation, t.Layout)
	}

	count := docstringCount(main.Tree.RootNode())
	if count <= baselineDocstrings {
		return fail(m.CategoryDocumentation,
			fmt.Sprintf("more than %d docstrings (starter code level)", baselineDocstrings),
			fmt.Sprintf("%d docstring(s) found", count),
			documentationSuggestion,
		)
	}

	return pass(m.CategoryDocumentation, fmt.Sprintf("%d docstrings", count))
}
