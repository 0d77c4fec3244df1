// Package fixups implements the built-in post-translation cleanups. Each
// fixup inspects one node against the current diagnostic snapshot and
// returns an optional action; the registry in the parent package wraps them
// into rules with names and priorities.
package fixups

import (
	"fmt"

	"github.com/yusufwagh/retouch/internal/diag"
	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// StripRedundantQualifier drops the qualifier from a reference when the
// analyzer determined the bare name resolves locally.
func StripRedundantQualifier(t *tree.Tree, n *tree.Node, diags *diag.Set) *types.Action {
	if n.Kind != tree.KindIdent && n.Kind != tree.KindCall {
		return nil
	}
	for _, d := range diags.At(n.Span) {
		if d.Code != diag.CodeRedundantQualifier {
			continue
		}
		qualifier, base := symtab.SplitQualified(n.Name)
		if qualifier == "" {
			return nil
		}
		return &types.Action{
			Node:    n,
			Message: fmt.Sprintf("strip redundant qualifier %q from %s", qualifier, n.Name),
			Run: func() error {
				t.SetName(n, base)
				return nil
			},
		}
	}
	return nil
}
