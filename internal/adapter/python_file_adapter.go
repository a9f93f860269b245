package adapter

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

// PythonFileAdapter encapsulates Python-specific parsing so the check logic
// can query syntax trees while delegating parser details to an infrastructure
// component. Student code is parsed with tree-sitter; it is never imported or
// executed.
type PythonFileAdapter interface {
	// Parse builds a syntax tree for the provided source bytes.
	Parse(ctx context.Context, content []byte) (*sitter.Tree, error)

	// Load reads and parses a file. ok is false when the file is missing,
	// unreadable, or contains syntax errors; callers must treat that as
	// "inconclusive", not as evidence of absence.
	Load(ctx context.Context, fs SourceFSAdapter, path m.Path) (source *PythonSource, ok bool)

	// Strip returns the source with comments and docstring literals removed,
	// remaining tokens rejoined with single spaces. Used for regex matching
	// without false positives from non-executable text. Degrades to the raw
	// source when no tree is available.
	Strip(tree *sitter.Tree, content []byte) string
}

// PythonSource is an immutable snapshot of one parsed file for the duration
// of a grading run.
type PythonSource struct {
	Path    m.Path
	Content []byte
	Tree    *sitter.Tree

	stripOnce sync.Once
	stripped  string
}

// Raw returns the unmodified file text.
func (s *PythonSource) Raw() string {
	return string(s.Content)
}

// Stripped returns the comment/docstring-stripped text, derived lazily and
// cached for the rest of the run.
func (s *PythonSource) Stripped() string {
	s.stripOnce.Do(func() {
		s.stripped = stripTokens(s.Tree, s.Content)
	})

	return s.stripped
}

// Close releases the underlying parse tree.
func (s *PythonSource) Close() {
	if s.Tree != nil {
		s.Tree.Close()
	}
}

// LocalPythonFileAdapter provides a concrete PythonFileAdapter backed by
// tree-sitter's Python grammar.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse builds a syntax tree for the provided source bytes. A fresh parser is
// created per call; tree-sitter parsers are not safe for concurrent use and
// checks run in parallel.
func (a *LocalPythonFileAdapter) Parse(ctx context.Context, content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	return parser.ParseCtx(ctx, nil, content)
}

// Load reads and parses path. ok is false for missing files, read errors,
// parser errors, and trees containing syntax errors.
func (a *LocalPythonFileAdapter) Load(ctx context.Context, fs SourceFSAdapter, path m.Path) (*PythonSource, bool) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, false
	}

	tree, err := a.Parse(ctx, content)
	if err != nil || tree == nil {
		return nil, false
	}

	if tree.RootNode().HasError() {
		tree.Close()
		return nil, false
	}

	return &PythonSource{Path: path, Content: content, Tree: tree}, true
}

// Strip removes comments and docstring literals from the source.
func (a *LocalPythonFileAdapter) Strip(tree *sitter.Tree, content []byte) string {
	return stripTokens(tree, content)
}

func stripTokens(tree *sitter.Tree, content []byte) string {
	if tree == nil {
		return string(content)
	}

	var tokens []string

	collectTokens(tree.RootNode(), content, &tokens)

	return strings.Join(tokens, " ")
}

// collectTokens walks every node, dropping comment tokens and bare string
// statements (the docstring position: a string literal that is itself a
// whole statement), and appends the remaining token text in source order.
func collectTokens(node *sitter.Node, content []byte, out *[]string) {
	switch node.Type() {
	case "comment":
		return

	case "string":
		if isBareStringStatement(node) {
			return
		}

		*out = append(*out, nodeContent(node, content))

		return
	}

	count := int(node.ChildCount())
	if count == 0 {
		if text := nodeContent(node, content); text != "" {
			*out = append(*out, text)
		}

		return
	}

	for i := 0; i < count; i++ {
		collectTokens(node.Child(i), content, out)
	}
}

// isBareStringStatement reports whether the string literal is the entire
// statement it appears in. This is how docstrings occur: the statement opens
// a module, function, or class body (or stands alone), rather than being part
// of an expression.
func isBareStringStatement(node *sitter.Node) bool {
	parent := node.Parent()
	if parent == nil || parent.Type() != "expression_statement" {
		return false
	}

	return parent.NamedChildCount() == 1
}

// nodeContent returns the source text covered by a node.
func nodeContent(node *sitter.Node, content []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(content) || start >= end {
		return ""
	}

	return string(content[start:end])
}
