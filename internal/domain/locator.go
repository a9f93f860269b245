// Package domain contains the grading workflow and check execution logic.
package domain

import (
	"path/filepath"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// Default relative locations of the inspection targets inside a student
// repository.
const (
	DefaultMainFile   = "main.py"
	DefaultSensorsDir = "sensors"
	DefaultTestsDir   = "tests"
)

// ResolveLayout derives the inspection targets from the repository root.
// Resolution never fails and performs no I/O; the returned paths may not
// exist and existence is checked by the individual checks.
func ResolveLayout(root m.Path, mainFile, sensorsDir, testsDir string) m.Layout {
	if mainFile == "" {
		mainFile = DefaultMainFile
	}

	if sensorsDir == "" {
		sensorsDir = DefaultSensorsDir
	}

	if testsDir == "" {
		testsDir = DefaultTestsDir
	}

	rootStr := string(root)
	if rootStr == "" {
		rootStr = "."
	}

	return m.Layout{
		Root:       m.Path(rootStr),
		MainFile:   m.Path(filepath.Join(rootStr, mainFile)),
		SensorsDir: m.Path(filepath.Join(rootStr, sensorsDir)),
		TestsDir:   m.Path(filepath.Join(rootStr, testsDir)),
	}
}
