// Package adapter contains infrastructure adapters for the bonif CLI.
package adapter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// cacheDirName is the interpreter bytecode cache directory, always excluded
// from traversal.
const cacheDirName = "__pycache__"

// SourceFSAdapter abstracts filesystem operations the domain layer relies on
// when scanning student repositories. It hides direct `os` access so check
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// PythonFiles returns every .py file under root, recursively, excluding
	// any path with a hidden segment (leading dot) or a bytecode cache
	// segment. Results are sorted for deterministic reporting.
	PythonFiles(root m.Path) ([]m.Path, error)

	// GlobPython returns the .py files directly inside dir (no recursion),
	// with the same exclusion rules.
	GlobPython(dir m.Path) ([]m.Path, error)

	// ListDir returns the entries directly inside dir.
	ListDir(dir m.Path) ([]os.DirEntry, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the grader.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// PythonFiles walks root and collects .py files, skipping hidden and
// bytecode-cache directories.
func (a *LocalSourceFSAdapter) PythonFiles(root m.Path) ([]m.Path, error) {
	rootStr := string(root)

	var files []m.Path

	err := filepath.WalkDir(rootStr, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != rootStr && excludedSegment(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".py" || excludedSegment(d.Name()) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// GlobPython lists the .py files directly inside dir.
func (a *LocalSourceFSAdapter) GlobPython(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".py" || excludedSegment(entry.Name()) {
			continue
		}

		files = append(files, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// ListDir returns the entries directly inside dir.
func (a *LocalSourceFSAdapter) ListDir(dir m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(dir))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// excludedSegment reports whether a single path segment is excluded from
// traversal: hidden names and the bytecode cache directory.
func excludedSegment(name string) bool {
	return strings.HasPrefix(name, ".") || name == cacheDirName
}
