package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath(name string) string {
	return filepath.Join("..", "examples", name)
}

func TestGradeCmd_CompleteRepository(t *testing.T) {
	reports := t.TempDir()

	output, err := execute(t, "grade", fixturePath("complete"), "-o", reports)
	require.NoError(t, err)

	assert.Contains(t, output, "error-handling")
	assert.Contains(t, output, "timer-pattern")
	assert.Contains(t, output, "passed")

	if _, statErr := os.Stat(filepath.Join(reports, "grade.yaml")); statErr != nil {
		t.Errorf("expected grade.yaml in reports dir: %v", statErr)
	}
}

func TestGradeCmd_BaselineFails(t *testing.T) {
	reports := t.TempDir()

	output, err := execute(t, "grade", fixturePath("baseline"), "-o", reports)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "11 of 11 checks failed")

	assert.Contains(t, output, "Expected:")
	assert.Contains(t, output, "Suggestion:")
}

func TestGradeCmd_BrokenMainIsSkippedNotFailed(t *testing.T) {
	reports := t.TempDir()

	output, err := execute(t, "grade", fixturePath("broken"), "-o", reports)

	// Tree checks still fail, so the run exits nonzero.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 of 11 checks failed")

	assert.Contains(t, output, "skipped: ")
	assert.Contains(t, output, "main.py not found or has syntax errors")
}

func TestGradeCmd_ParallelFlag(t *testing.T) {
	reports := t.TempDir()

	_, err := execute(t, "grade", fixturePath("complete"), "-o", reports, "--parallel", "1")
	require.NoError(t, err)

	_, err = execute(t, "grade", fixturePath("complete"), "-o", reports, "-p", "8")
	require.NoError(t, err)
}

func TestGradeCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	_, err := execute(t, "grade", fixturePath("complete"),
		"-o", t.TempDir(), "-p", "8", "--main", "station.py", "--tui")

	// station.py does not exist in the fixture, so main-file checks skip;
	// the tree checks all pass and skips do not fail the run.
	require.NoError(t, err)

	assert.Equal(t, defaultParallel, viper.GetInt(parallelConfigKey))
	assert.Equal(t, "main.py", viper.GetString(mainConfigKey))
	assert.Equal(t, defaultTUI, viper.GetBool(tuiFlagName))
}

func TestGradeCmd_RejectsExtraArgs(t *testing.T) {
	_, err := execute(t, "grade", "a", "b")
	require.Error(t, err)
}

func TestGradeCmd_LayoutOverride(t *testing.T) {
	repo := t.TempDir()
	main := "station.py"

	content := `"""Station."""
import time


def main():
    """Entry."""
    time.sleep(1)
`
	require.NoError(t, os.WriteFile(filepath.Join(repo, main), []byte(content), 0o600))

	reports := t.TempDir()

	output, err := execute(t, "grade", repo, "-o", reports, "--main", main)
	require.Error(t, err)

	// The overridden entry point parsed, so main-file checks ran instead
	// of skipping.
	if strings.Contains(output, "not found or has syntax errors") {
		t.Errorf("main-file checks skipped despite --main override:\n%s", output)
	}
}
