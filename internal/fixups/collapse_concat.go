package fixups

import (
	"fmt"
	"strings"

	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// CollapseConcat folds a concat call whose operands are all literals into a
// single literal. Translators tend to emit these for source-level string
// concatenation chains.
func CollapseConcat(t *tree.Tree, n *tree.Node) *types.Action {
	if n.Kind != tree.KindCall || n.Name != "concat" || len(n.Children) == 0 {
		return nil
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind != tree.KindLiteral {
			return nil
		}
		parts = append(parts, c.Text)
	}
	return &types.Action{
		Node:    n,
		Message: fmt.Sprintf("collapse concat of %d literals", len(parts)),
		Run: func() error {
			t.Replace(n, &tree.Node{
				Kind: tree.KindLiteral,
				Span: n.Span,
				Text: strings.Join(parts, ""),
			})
			return nil
		},
	}
}
