package detectors

import (
	"context"
	"testing"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

func TestCheckModularization(t *testing.T) {
	starterFiles := map[string]string{
		"main.py":                  starterMain,
		"sensors/__init__.py":      "",
		"sensors/aht20_sensor.py":  "import adafruit_ahtx0\n",
		"tests/test_instructor.py": "",
	}

	t.Run("starter layout fails", func(t *testing.T) {
		target := newTarget(t, starterFiles)

		verdict := CheckModularization(context.Background(), target)
		if verdict.Status != m.Fail {
			t.Fatalf("status = %s, want fail", verdict.Status)
		}
	})

	t.Run("new sensor module passes", func(t *testing.T) {
		files := map[string]string{"sensors/bme280_sensor.py": ""}
		for k, v := range starterFiles {
			files[k] = v
		}

		target := newTarget(t, files)

		verdict := CheckModularization(context.Background(), target)
		if verdict.Status != m.Pass {
			t.Fatalf("status = %s, want pass", verdict.Status)
		}

		if len(verdict.Evidence) != 1 || verdict.Evidence[0] != "sensors/bme280_sensor.py" {
			t.Errorf("evidence = %v", verdict.Evidence)
		}
	})

	t.Run("new top-level directory passes", func(t *testing.T) {
		files := map[string]string{"utils/validation.py": ""}
		for k, v := range starterFiles {
			files[k] = v
		}

		target := newTarget(t, files)

		verdict := CheckModularization(context.Background(), target)
		if verdict.Status != m.Pass {
			t.Fatalf("status = %s, want pass", verdict.Status)
		}

		if len(verdict.Evidence) != 1 || verdict.Evidence[0] != "utils/" {
			t.Errorf("evidence = %v", verdict.Evidence)
		}
	})

	t.Run("new root python file passes", func(t *testing.T) {
		files := map[string]string{"display.py": ""}
		for k, v := range starterFiles {
			files[k] = v
		}

		target := newTarget(t, files)

		verdict := CheckModularization(context.Background(), target)
		if verdict.Status != m.Pass {
			t.Fatalf("status = %s, want pass", verdict.Status)
		}
	})

	t.Run("hidden and known directories are ignored", func(t *testing.T) {
		files := map[string]string{
			".github/workflows/ci.yml": "",
			"data/mesures.csv":         "",
		}
		for k, v := range starterFiles {
			files[k] = v
		}

		target := newTarget(t, files)

		verdict := CheckModularization(context.Background(), target)
		if verdict.Status != m.Fail {
			t.Fatalf("status = %s, want fail", verdict.Status)
		}
	})
}
