package internal

import (
	"sort"

	"github.com/yusufwagh/retouch/internal/diag"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// Collect walks the tree depth-first under the scope filter and asks every
// rule in the batch for an action at each eligible node. Collection never
// mutates anything; it runs against one snapshot of tree and diagnostics.
//
// The returned actions are sorted by ascending priority. The sort is stable,
// so actions of equal priority keep traversal-then-registry order. Priority
// is the only global ordering key across nodes.
func Collect(batch []Rule, t *tree.Tree, scope *tree.Scope, diags *diag.Set, settings *types.Settings) []types.Action {
	var actions []types.Action

	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		c := Classify(n, scope)
		if c == Excluded {
			return
		}
		if c == Eligible {
			for _, rule := range batch {
				if n.Suppressed(rule.Name()) {
					continue
				}
				act := rule.TryAction(t, n, diags, settings)
				if act == nil {
					continue
				}
				act.Rule = rule.Name()
				act.Priority = rule.Priority()
				act.Exclusive = rule.RequiresExclusive()
				actions = append(actions, *act)
			}
		}
		for _, child := range n.Children {
			visit(child)
		}
	}

	if root := t.Root(); root != nil {
		visit(root)
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})
	return actions
}
