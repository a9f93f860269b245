package detectors

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// interruptException is the process-interrupt exception raised on Ctrl+C.
const interruptException = "KeyboardInterrupt"

const interruptSuggestion = `Handle Ctrl+C for a clean shutdown:
  try:
      while True:
          # ... lecture capteur ...
  except KeyboardInterrupt:
      print('Arret propre de la station.')`

// CheckInterruptHandling detects an except clause whose matched exception
// type is KeyboardInterrupt, either as a single name or inside a tuple of
// names. The starter code crashes on Ctrl+C.
func CheckInterruptHandling(ctx context.Context, t *Target) m.Verdict {
	main := t.Main(ctx)
	if main == nil {
		return skipMain(m.CategoryInterrupt, t.Layout)
	}

	found := false

	walkNodes(main.Tree.RootNode(), func(n *sitter.Node) bool {
		if found {
			return false
		}

		if n.Type() == "except_clause" && handlesInterrupt(n, main.Content) {
			found = true
			return false
		}

		return true
	})

	if !found {
		return fail(m.CategoryInterrupt,
			"KeyboardInterrupt handling in "+string(t.Layout.MainFile),
			"no KeyboardInterrupt handler found",
			interruptSuggestion,
		)
	}

	return pass(m.CategoryInterrupt, "except "+interruptException)
}

// handlesInterrupt inspects the type expression of an except clause. The
// expression may be wrapped in an as-pattern (`except X as e`).
func handlesInterrupt(clause *sitter.Node, content []byte) bool {
	typeExpr := exceptTypeExpr(clause)
	if typeExpr == nil {
		return false
	}

	switch typeExpr.Type() {
	case "identifier":
		return nodeText(typeExpr, content) == interruptException

	case "tuple":
		for i := 0; i < int(typeExpr.NamedChildCount()); i++ {
			elt := typeExpr.NamedChild(i)
			if elt.Type() == "identifier" && nodeText(elt, content) == interruptException {
				return true
			}
		}
	}

	return false
}

// exceptTypeExpr returns the exception type expression of an except clause,
// or nil for a bare `except:`.
func exceptTypeExpr(clause *sitter.Node) *sitter.Node {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)

		switch child.Type() {
		case "block", "comment":
			continue
		case "as_pattern":
			// `except X as e`: the matched type is the pattern value.
			return child.NamedChild(0)
		default:
			return child
		}
	}

	return nil
}
