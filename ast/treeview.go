package ast

import "strings"

// treeViewIndent is the per-depth indent of the debug tree view.
const treeViewIndent = "  "

// TreeNode is the subset of the node contract the debug outline needs.
// Every Ast implementation satisfies it.
type TreeNode[T any] interface {
	Children() []T
	DisplayName() string
}

// WriteTreeView appends an indented outline of the tree rooted at root
// to sb: one line per node, two spaces of indent per depth, similar to
// the Unix 'tree' command.  It is independent of the token pipeline
// and exists purely for structural debugging.
func WriteTreeView[T TreeNode[T]](sb *strings.Builder, root T) {
	var indentation string
	writeTreeViewRec(sb, root, &indentation)
}

func writeTreeViewRec[T TreeNode[T]](sb *strings.Builder, node T, indentation *string) {
	sb.WriteString(*indentation)
	sb.WriteString(node.DisplayName())
	sb.WriteByte('\n')
	*indentation += treeViewIndent
	for _, child := range node.Children() {
		writeTreeViewRec(sb, child, indentation)
	}
	*indentation = (*indentation)[:len(*indentation)-len(treeViewIndent)]
}

// TreeView renders the debug outline into a new string, without a
// trailing newline.
func TreeView[T TreeNode[T]](root T) string {
	var sb strings.Builder
	WriteTreeView(&sb, root)
	s := sb.String()
	if len(s) == 0 || s[len(s)-1] != '\n' {
		panic("ast: tree view missing trailing newline")
	}
	return s[:len(s)-1]
}
