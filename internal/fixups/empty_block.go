package fixups

import (
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// RemoveEmptyBlock detaches block nodes the translator left without a body.
// Blocks that are the sole value of a declaration stay, removing them would
// leave the declaration dangling.
func RemoveEmptyBlock(t *tree.Tree, n *tree.Node) *types.Action {
	if n.Kind != tree.KindBlock || len(n.Children) != 0 {
		return nil
	}
	parent := n.Parent()
	if parent == nil || (parent.Kind != tree.KindBlock && parent.Kind != tree.KindFile) {
		return nil
	}
	return &types.Action{
		Node:    n,
		Message: "remove empty block",
		Run: func() error {
			t.Detach(n)
			return nil
		},
	}
}
