package detectors

import (
	"context"
	"strings"
	"testing"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

func TestCheckErrorHandling(t *testing.T) {
	t.Run("starter code fails", func(t *testing.T) {
		target := newTarget(t, map[string]string{"main.py": starterMain})

		verdict := CheckErrorHandling(context.Background(), target)
		if verdict.Status != m.Fail {
			t.Fatalf("status = %s, want fail", verdict.Status)
		}

		if verdict.Observed != "0 try/except blocks found" {
			t.Errorf("observed = %q", verdict.Observed)
		}

		if verdict.Suggestion == "" {
			t.Error("fail verdict has no suggestion")
		}
	})

	t.Run("try block passes", func(t *testing.T) {
		target := newTarget(t, map[string]string{"main.py": `import time

try:
    value = read()
except Exception as e:
    print(e)
`})

		verdict := CheckErrorHandling(context.Background(), target)
		if verdict.Status != m.Pass {
			t.Fatalf("status = %s, want pass", verdict.Status)
		}

		if len(verdict.Evidence) == 0 || !strings.Contains(verdict.Evidence[0], "1 try/except") {
			t.Errorf("evidence = %v", verdict.Evidence)
		}
	})

	t.Run("counts multiple blocks", func(t *testing.T) {
		target := newTarget(t, map[string]string{"main.py": `try:
    a()
except ValueError:
    pass

try:
    b()
except OSError:
    pass
`})

		verdict := CheckErrorHandling(context.Background(), target)
		if verdict.Status != m.Pass {
			t.Fatalf("status = %s, want pass", verdict.Status)
		}

		if !strings.Contains(verdict.Evidence[0], "2 try/except") {
			t.Errorf("evidence = %v", verdict.Evidence)
		}
	})
}
