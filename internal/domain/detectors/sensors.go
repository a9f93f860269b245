package detectors

import (
	"context"
	"regexp"
	"strings"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// additionalSensors are name fragments of sensor libraries beyond the AHT20
// shipped with the starter code.
var additionalSensors = []string{
	"hts221", "as7341", "vcnl4200", "seesaw",
	"bmp280", "bme280", "bme680", "dht",
}

var sensorImportPatterns = buildSensorPatterns()

func buildSensorPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(additionalSensors))
	for _, fragment := range additionalSensors {
		patterns[fragment] = regexp.MustCompile(`(?i)(import|from).*` + fragment)
	}

	return patterns
}

const extraSensorsSuggestion = `Integrate an additional sensor:
  # HTS221 (temperature/humidite alternative)
  from adafruit_hts221 import HTS221

  # AS7341 (spectrometre, analyse couvert nuageux)
  from adafruit_as7341 import AS7341

  # VCNL4200 (luminosite, proximite)
  from adafruit_vcnl4200 import VCNL4200`

// CheckExtraSensors detects imports of additional sensor libraries in any
// Python file at the repository root or under the sensors directory. This is
// a tree check: no match anywhere is meaningful negative evidence, so a
// missing file never produces a skip.
func CheckExtraSensors(ctx context.Context, t *Target) m.Verdict {
	files := sensorSearchFiles(t)

	var found []string
	seen := make(map[string]struct{})

	for _, path := range files {
		content, err := t.FS.ReadFile(path)
		if err != nil {
			continue
		}

		text := string(content)

		for fragment, pattern := range sensorImportPatterns {
			if _, ok := seen[fragment]; ok {
				continue
			}

			if pattern.MatchString(text) {
				seen[fragment] = struct{}{}

				found = append(found, fragment)
			}
		}
	}

	if len(found) == 0 {
		return fail(m.CategoryExtraSensors,
			"at least one additional sensor library imported",
			"only the AHT20 starter sensor detected",
			extraSensorsSuggestion,
		)
	}

	sortStrings(found)

	return pass(m.CategoryExtraSensors, found...)
}

// sensorSearchFiles lists the top-level .py files plus everything under the
// sensors directory, deduplicated.
func sensorSearchFiles(t *Target) []m.Path {
	var files []m.Path
	seen := make(map[m.Path]struct{})

	add := func(paths []m.Path) {
		for _, p := range paths {
			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}

			files = append(files, p)
		}
	}

	if rootFiles, err := t.FS.GlobPython(t.Layout.Root); err == nil {
		add(rootFiles)
	}

	if sensorFiles, err := t.FS.PythonFiles(t.Layout.SensorsDir); err == nil {
		add(sensorFiles)
	}

	return files
}

func sortStrings(values []string) {
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if strings.Compare(values[i], values[j]) > 0 {
				values[i], values[j] = values[j], values[i]
			}
		}
	}
}
