package fixups

import (
	"fmt"

	"github.com/yusufwagh/retouch/internal/diag"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// InsertMissingImport adds the import for the first resolver candidate of an
// unresolved reference. The mutation touches the file's import list, away
// from the node being inspected, so it requires exclusive mutation.
func InsertMissingImport(t *tree.Tree, n *tree.Node, diags *diag.Set) *types.Action {
	if n.Kind != tree.KindIdent && n.Kind != tree.KindCall {
		return nil
	}
	for _, d := range diags.At(n.Span) {
		if d.Code != diag.CodeUnresolvedRef || len(d.Candidates) == 0 {
			continue
		}
		path := d.Candidates[0].ImportPath
		if path == "" || HasImport(t.Root(), path) {
			return nil
		}
		return &types.Action{
			Node:    n,
			Message: fmt.Sprintf("import %q for unresolved %s", path, d.Symbol),
			Run: func() error {
				return AddImport(t, path)
			},
		}
	}
	return nil
}

// HasImport reports whether the file already imports path.
func HasImport(root *tree.Node, path string) bool {
	for _, c := range root.Children {
		if c.Kind == tree.KindImport && c.Name == path {
			return true
		}
	}
	return false
}

// AddImport inserts an import node after the file's existing imports. It is
// a no-op when the path is already imported.
func AddImport(t *tree.Tree, path string) error {
	root := t.Root()
	if root == nil || root.Kind != tree.KindFile {
		return fmt.Errorf("fixups: tree has no file node to import into")
	}
	if HasImport(root, path) {
		return nil
	}
	at := 0
	for i, c := range root.Children {
		if c.Kind == tree.KindImport {
			at = i + 1
		}
	}
	t.InsertChild(root, at, &tree.Node{Kind: tree.KindImport, Name: path})
	return nil
}
