package detectors

import (
	"context"
	"fmt"
	"regexp"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// configModules are imports that indicate externalized configuration.
var configModules = map[string]struct{}{
	"argparse":     {},
	"click":        {},
	"configparser": {},
	"dotenv":       {},
}

var envReadPattern = regexp.MustCompile(`os\.(environ|getenv)`)

// uppercaseConstPattern matches a top-level ALL-UPPERCASE assignment.
var uppercaseConstPattern = regexp.MustCompile(`(?m)^[A-Z][A-Z_0-9]{2,}\s*=`)

// minConstants is the threshold separating deliberate externalization from
// the starter code's near-zero constant count.
const minConstants = 3

const configurationSuggestion = `Make the configuration adjustable:
  # Option 1: Constants
  INTERVAL = 5
  MAX_RETRIES = 3
  SENSOR_TYPE = 'AHT20'

  # Option 2: argparse
  import argparse
  parser = argparse.ArgumentParser()
  parser.add_argument('--interval', type=int, default=5)

  # Option 3: Environment variable
  import os
  interval = int(os.environ.get('INTERVAL', 5))`

// CheckConfiguration detects externalized configuration: a config-oriented
// import, an environment-variable read, or at least three top-level
// uppercase constants.
func CheckConfiguration(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryConfiguration, t.Layout)
	}

	for _, imp := range imports(main.Tree.RootNode(), main.Content) {
		if _, ok := configModules[imp.module]; ok {
			return pass(m.CategoryConfiguration, "import of "+imp.module)
		}

		if imp.from && imp.module == "os" {
			return pass(m.CategoryConfiguration, "from os import")
		}
	}

	raw := main.Raw()

	if match := envReadPattern.FindString(raw); match != "" {
		return pass(m.CategoryConfiguration, match)
	}

	if constants := uppercaseConstPattern.FindAllString(raw, -1); len(constants) >= minConstants {
		return pass(m.CategoryConfiguration, fmt.Sprintf("%d uppercase constants", len(constants)))
	}

	return fail(m.CategoryConfiguration,
		"externalized configuration (argparse, env vars, or constants)",
		"no configuration mechanism found",
		configurationSuggestion,
	)
}
