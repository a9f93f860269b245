package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func containsPath(paths []m.Path, want string) bool {
	for _, p := range paths {
		if string(p) == want {
			return true
		}
	}

	return false
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	content := "import time\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_PythonFiles(t *testing.T) {
	t.Run("recursive with exclusions", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.py"), "")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "")

		sensorsDir := filepath.Join(root, "sensors")
		mustMkdir(t, sensorsDir)
		writeTestFile(t, filepath.Join(sensorsDir, "aht20_sensor.py"), "")

		cacheDir := filepath.Join(root, "__pycache__")
		mustMkdir(t, cacheDir)
		writeTestFile(t, filepath.Join(cacheDir, "cached.py"), "")

		venvDir := filepath.Join(root, ".venv")
		mustMkdir(t, venvDir)
		writeTestFile(t, filepath.Join(venvDir, "lib.py"), "")

		files, err := adapter.PythonFiles(m.Path(root))
		if err != nil {
			t.Fatalf("PythonFiles() error = %v", err)
		}

		if len(files) != 2 {
			t.Fatalf("PythonFiles() returned %d files, want 2: %v", len(files), files)
		}

		if !containsPath(files, filepath.Join(root, "main.py")) {
			t.Errorf("PythonFiles() missing root main.py")
		}

		if !containsPath(files, filepath.Join(sensorsDir, "aht20_sensor.py")) {
			t.Errorf("PythonFiles() missing nested sensor file")
		}
	})

	t.Run("results are sorted", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "zeta.py"), "")
		writeTestFile(t, filepath.Join(root, "alpha.py"), "")

		files, err := adapter.PythonFiles(m.Path(root))
		if err != nil {
			t.Fatalf("PythonFiles() error = %v", err)
		}

		if len(files) != 2 || files[0] > files[1] {
			t.Fatalf("PythonFiles() not sorted: %v", files)
		}
	})

	t.Run("missing root errors", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		if _, err := adapter.PythonFiles(m.Path(filepath.Join(t.TempDir(), "missing"))); err == nil {
			t.Fatal("PythonFiles() expected error for missing root")
		}
	})
}

func TestLocalSourceFSAdapter_GlobPython(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "main.py"), "")
	writeTestFile(t, filepath.Join(root, "README.md"), "")

	nested := filepath.Join(root, "sensors")
	mustMkdir(t, nested)
	writeTestFile(t, filepath.Join(nested, "aht20_sensor.py"), "")

	files, err := adapter.GlobPython(m.Path(root))
	if err != nil {
		t.Fatalf("GlobPython() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("GlobPython() returned %d files, want 1: %v", len(files), files)
	}

	if !containsPath(files, filepath.Join(root, "main.py")) {
		t.Errorf("GlobPython() missing main.py")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	dir := filepath.Join(root, "tests")
	mustMkdir(t, dir)

	info, err := adapter.FileInfo(m.Path(dir))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.IsDir() {
		t.Error("FileInfo().IsDir() = false for a directory")
	}

	if _, err := adapter.FileInfo(m.Path(filepath.Join(root, "missing"))); err == nil {
		t.Error("FileInfo() expected error for missing path")
	}
}

func TestLocalSourceFSAdapter_Paths(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath("repo", "sensors", "aht20_sensor.py")
	want := filepath.Join("repo", "sensors", "aht20_sensor.py")
	if string(joined) != want {
		t.Errorf("JoinPath() = %q, want %q", joined, want)
	}

	rel, err := adapter.RelPath(m.Path("repo"), joined)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sensors", "aht20_sensor.py") {
		t.Errorf("RelPath() = %q", rel)
	}
}
