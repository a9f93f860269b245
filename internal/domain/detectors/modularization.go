package detectors

import (
	"context"
	"path/filepath"
	"strings"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

const modularizationSuggestion = `Split your code into modules:
  sensors/bme280_sensor.py    # Nouveau capteur
  utils/validation.py         # Fonctions de validation
  config/settings.py          # Configuration centralisee`

// CheckModularization looks for structure beyond the monolithic starter
// code: a new file in the sensors directory, a new top-level directory, or a
// new top-level Python file.
func CheckModularization(ctx context.Context, t *Target) m.Verdict {
	var evidence []string

	evidence = append(evidence, newSensorFiles(t)...)
	evidence = append(evidence, newTopLevelDirs(t)...)
	evidence = append(evidence, newRootFiles(t)...)

	if len(evidence) == 0 {
		return fail(m.CategoryModularization,
			"code modularization (new modules or directories)",
			"only starter code files found (main.py + sensors/aht20_sensor.py)",
			modularizationSuggestion,
		)
	}

	sortStrings(evidence)

	return pass(m.CategoryModularization, evidence...)
}

func newSensorFiles(t *Target) []string {
	files, err := t.FS.GlobPython(t.Layout.SensorsDir)
	if err != nil {
		return nil
	}

	var result []string

	for _, path := range files {
		name := filepath.Base(string(path))
		if _, ok := m.BaselineSensorFiles[name]; !ok {
			result = append(result, "sensors/"+name)
		}
	}

	return result
}

func newTopLevelDirs(t *Target) []string {
	entries, err := t.FS.ListDir(t.Layout.Root)
	if err != nil {
		return nil
	}

	var result []string

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if _, ok := m.BaselineDirs[name]; !ok {
			result = append(result, name+"/")
		}
	}

	return result
}

func newRootFiles(t *Target) []string {
	files, err := t.FS.GlobPython(t.Layout.Root)
	if err != nil {
		return nil
	}

	var result []string

	for _, path := range files {
		name := filepath.Base(string(path))
		if _, ok := m.BaselineRootFiles[name]; !ok {
			result = append(result, name)
		}
	}

	return result
}
