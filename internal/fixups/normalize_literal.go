package fixups

import (
	"strings"

	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// NormalizeLiteral canonicalizes literal text: surrounding whitespace is
// trimmed and inner runs collapse to single spaces.
func NormalizeLiteral(t *tree.Tree, n *tree.Node) *types.Action {
	if n.Kind != tree.KindLiteral || n.Text == "" {
		return nil
	}
	normalized := strings.Join(strings.Fields(n.Text), " ")
	if normalized == n.Text {
		return nil
	}
	return &types.Action{
		Node:    n,
		Message: "normalize literal whitespace",
		Run: func() error {
			t.SetText(n, normalized)
			return nil
		},
	}
}
