package detectors

import (
	"context"
	"regexp"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// timestampCallPattern matches formatted-time usage in raw text; import
// inspection covers the structural case.
var timestampCallPattern = regexp.MustCompile(
	`(strftime|isoformat|datetime\.now|datetime\.utcnow|time\.ctime|time\.localtime)`,
)

const timestampSuggestion = `Add a timestamp to every measurement:
  from datetime import datetime
  timestamp = datetime.now().isoformat()
  print(f'{timestamp} - Temperature: {temp:.1f} C')`

// CheckTimestamp detects datetime imports or time-formatting calls in the
// entry-point file. The starter code prints measurements without any
// timestamp.
func CheckTimestamp(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryTimestamp, t.Layout)
	}

	for _, imp := range imports(main.Tree.RootNode(), main.Content) {
		if imp.module == "datetime" || (imp.from && imp.module == "time") {
			return pass(m.CategoryTimestamp, "import of "+imp.module)
		}
	}

	if match := timestampCallPattern.FindString(main.Raw()); match != "" {
		return pass(m.CategoryTimestamp, match)
	}

	return fail(m.CategoryTimestamp,
		"timestamp usage (datetime or time.strftime)",
		"no timestamp import or usage found",
		timestampSuggestion,
	)
}
