package detectors

import (
	"context"
	"fmt"
	"strings"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

const testsDirSuggestion = `Create tests for your code:
  mkdir tests
  # Creez tests/test_sensors.py avec vos tests pytest`

const testsFileSuggestion = `Write tests for your functions:
  # tests/test_sensors.py
  def test_temperature_range():
      assert -50 <= temperature <= 100`

// CheckStudentTests verifies the tests directory exists and contains at
// least one test file beyond the grading harness's own.
func CheckStudentTests(ctx context.Context, t *Target) m.Verdict {
	info, err := t.FS.FileInfo(t.Layout.TestsDir)
	if err != nil || !info.IsDir() {
		return fail(m.CategoryStudentTests,
			"tests/ directory with test files",
			"tests/ directory not found",
			testsDirSuggestion,
		)
	}

	entries, err := t.FS.ListDir(t.Layout.TestsDir)
	if err != nil {
		entries = nil
	}

	var testFiles []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == m.InstructorTestFile {
			continue
		}

		if strings.HasPrefix(name, "test_") && strings.HasSuffix(name, ".py") {
			testFiles = append(testFiles, name)
		}
	}

	if len(testFiles) == 0 {
		return fail(m.CategoryStudentTests,
			"at least one test_*.py file in tests/ (besides "+m.InstructorTestFile+")",
			fmt.Sprintf("0 student test files found in %s", t.Layout.TestsDir),
			testsFileSuggestion,
		)
	}

	return pass(m.CategoryStudentTests, testFiles...)
}
