package internal

import (
	"github.com/yusufwagh/retouch/internal/diag"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// stubRule lets tests script arbitrary rule behaviour.
type stubRule struct {
	name      string
	priority  int
	exclusive bool
	try       func(t *tree.Tree, n *tree.Node, d *diag.Set) *types.Action
}

func (r *stubRule) Name() string            { return r.name }
func (r *stubRule) Priority() int           { return r.priority }
func (r *stubRule) RequiresExclusive() bool { return r.exclusive }

func (r *stubRule) TryAction(t *tree.Tree, n *tree.Node, d *diag.Set, _ *types.Settings) *types.Action {
	if r.try == nil {
		return nil
	}
	return r.try(t, n, d)
}

// renameRule rewrites idents named from into to, once each.
func renameRule(name string, priority int, from, to string) *stubRule {
	return &stubRule{
		name:     name,
		priority: priority,
		try: func(t *tree.Tree, n *tree.Node, _ *diag.Set) *types.Action {
			if n.Kind != tree.KindIdent || n.Name != from {
				return nil
			}
			return &types.Action{
				Node:    n,
				Message: "rename " + from + " to " + to,
				Run: func() error {
					t.SetName(n, to)
					return nil
				},
			}
		},
	}
}

func singleBatch(rules ...Rule) []Entry {
	children := make([]Entry, len(rules))
	for i, r := range rules {
		children[i] = RuleEntry{Rule: r}
	}
	return []Entry{Group{Name: "test", Children: children}}
}

func identFile(names ...string) *tree.Tree {
	idents := make([]*tree.Node, len(names))
	for i, name := range names {
		idents[i] = &tree.Node{Kind: tree.KindIdent, Name: name}
	}
	return tree.New(&tree.Node{Kind: tree.KindFile, Children: idents})
}
