package detectors

import (
	"context"
	"regexp"

	"github.com/tge-sherbrooke/bonif-grader/internal/adapter"
	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

var (
	// fileWritePattern matches an open() call with a write or append mode
	// literal somewhere in its arguments.
	fileWritePattern = regexp.MustCompile(`open\s*\(.*['"][wa][+b]*['"]`)

	// persistenceVocabulary is the looser signal paired with a csv/json
	// import. Known heuristic limitation: an unrelated json import plus the
	// word "save" in executable text also matches.
	persistenceVocabulary = regexp.MustCompile(`(?i)(write|dump|save|append|fichier|file)`)
)

const persistenceSuggestion = `Save measurements to a file:
  import csv
  with open('data/mesures.csv', 'a') as f:
      writer = csv.writer(f)
      writer.writerow([timestamp, temperature, humidity])`

// CheckPersistence detects structured data persistence: some file in the
// repository imports csv or json and writes to a file, or at least pairs the
// import with file-writing vocabulary.
func CheckPersistence(ctx context.Context, t *Target) m.Verdict {
	files, err := t.FS.PythonFiles(t.Layout.Root)
	if err != nil {
		files = nil
	}

	for _, path := range files {
		src, ok := t.Python.Load(ctx, t.FS, path)
		if !ok {
			continue
		}

		evidence, found := persistenceEvidence(src)

		src.Close()

		if found {
			return pass(m.CategoryPersistence, string(path)+": "+evidence)
		}
	}

	return fail(m.CategoryPersistence,
		"data persistence (csv or json with file writing)",
		"no data persistence pattern found",
		persistenceSuggestion,
	)
}

func persistenceEvidence(src *adapter.PythonSource) (string, bool) {
	formatImport := ""

	for _, imp := range imports(src.Tree.RootNode(), src.Content) {
		if imp.module == "csv" || imp.module == "json" {
			formatImport = imp.module
			break
		}
	}

	if formatImport == "" {
		return "", false
	}

	raw := src.Raw()

	if fileWritePattern.MatchString(raw) {
		return "import " + formatImport + " with file write", true
	}

	if match := persistenceVocabulary.FindString(raw); match != "" {
		return "import " + formatImport + " with '" + match + "'", true
	}

	return "", false
}
