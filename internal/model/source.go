package model

// Path represents a file system path.
type Path string

// Layout holds the resolved inspection targets inside a student repository.
// Paths are derived once per grading run and may point to files or
// directories that do not exist; callers check existence themselves.
type Layout struct {
	Root       Path
	MainFile   Path
	SensorsDir Path
	TestsDir   Path
}

// InstructorTestFile is the harness's own file name inside the tests
// directory. It never counts as a student-written test.
const InstructorTestFile = "test_instructor.py"

// BaselineSensorFiles are the sensor modules shipped with the starter code.
// Anything else under the sensors directory counts as modularization effort.
var BaselineSensorFiles = map[string]struct{}{
	"__init__.py":     {},
	"aht20_sensor.py": {},
}

// BaselineRootFiles are the Python files present at the repository root of
// the starter code.
var BaselineRootFiles = map[string]struct{}{
	"main.py": {},
}

// BaselineDirs are the top-level directories present in the starter code.
// New directories outside this set count as modularization effort.
var BaselineDirs = map[string]struct{}{
	".github":     {},
	"sensors":     {},
	"tests":       {},
	"data":        {},
	"__pycache__": {},
	".venv":       {},
	".git":        {},
}
