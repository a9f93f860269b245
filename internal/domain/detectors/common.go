package detectors

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// walkNodes visits every node under root (anonymous tokens included) until
// fn returns false for a node, which prunes its subtree.
func walkNodes(root *sitter.Node, fn func(*sitter.Node) bool) {
	if root == nil || !fn(root) {
		return
	}

	for i := 0; i < int(root.ChildCount()); i++ {
		walkNodes(root.Child(i), fn)
	}
}

// nodeText returns the source text covered by a node.
func nodeText(node *sitter.Node, content []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(content) || start >= end {
		return ""
	}

	return string(content[start:end])
}

// pyImport is one imported module, as written in the source.
type pyImport struct {
	module string
	from   bool // from X import ... rather than import X
}

// imports collects every import statement in the tree. For aliased imports
// the original module name is reported, not the alias.
func imports(root *sitter.Node, content []byte) []pyImport {
	var result []pyImport

	walkNodes(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				if child.Type() == "aliased_import" {
					if name := child.ChildByFieldName("name"); name != nil {
						result = append(result, pyImport{module: nodeText(name, content)})
					}

					continue
				}

				result = append(result, pyImport{module: nodeText(child, content)})
			}

			return false

		case "import_from_statement":
			if name := n.ChildByFieldName("module_name"); name != nil {
				result = append(result, pyImport{module: nodeText(name, content), from: true})
			}

			return false
		}

		return true
	})

	return result
}

// countNodesOfType counts nodes of the given grammar kind.
func countNodesOfType(root *sitter.Node, kind string) int {
	count := 0

	walkNodes(root, func(n *sitter.Node) bool {
		if n.Type() == kind {
			count++
		}

		return true
	})

	return count
}

// firstStatement returns the first named child of a module or block node
// that is an actual statement, skipping comments.
func firstStatement(body *sitter.Node) *sitter.Node {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		return child
	}

	return nil
}

// opensWithDocstring reports whether a module or block body starts with a
// string literal statement.
func opensWithDocstring(body *sitter.Node) bool {
	stmt := firstStatement(body)
	if stmt == nil || stmt.Type() != "expression_statement" {
		return false
	}

	return stmt.NamedChildCount() == 1 && stmt.NamedChild(0).Type() == "string"
}

// docstringCount counts docstring positions that hold a string literal:
// the module body plus every function and class body.
func docstringCount(root *sitter.Node) int {
	count := 0

	if opensWithDocstring(root) {
		count++
	}

	walkNodes(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_definition", "class_definition":
			if body := n.ChildByFieldName("body"); body != nil && opensWithDocstring(body) {
				count++
			}
		}

		return true
	})

	return count
}
