package diag

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
)

// Analyze computes the diagnostic snapshot for the tree's current state.
// With no scope the whole tree is analyzed. With a scope, analysis is
// restricted to the top-level elements whose ranges intersect it; when no
// element intersects (including a collapsed scope) the set is empty and no
// analysis runs. Symbol visibility is always file-wide regardless of scope.
func Analyze(ctx context.Context, t *tree.Tree, scope *tree.Scope, universe symtab.Universe) (*Set, error) {
	symbols := symtab.FromTree(t.Root())
	set := NewSet(symbols)

	elements := scopedElements(t, scope)
	if len(elements) == 0 {
		return set, nil
	}

	results := make([][]Diagnostic, len(elements))
	g, ctx := errgroup.WithContext(ctx)
	for i, el := range elements {
		i, el := i, el
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = analyzeElement(el, symbols, universe)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, ds := range results {
		for _, d := range ds {
			set.Add(d)
		}
	}
	set.Sort()
	return set, nil
}

func scopedElements(t *tree.Tree, scope *tree.Scope) []*tree.Node {
	root := t.Root()
	if root == nil {
		return nil
	}
	if scope == nil {
		return []*tree.Node{root}
	}
	if !scope.Valid() {
		return nil
	}
	var out []*tree.Node
	for _, el := range root.Children {
		if el.Span.Overlaps(scope.Span()) {
			out = append(out, el)
		}
	}
	return out
}

func analyzeElement(el *tree.Node, symbols *symtab.Table, universe symtab.Universe) []Diagnostic {
	var out []Diagnostic
	tree.Walk(el, func(n *tree.Node) bool {
		if n.Kind != tree.KindIdent && n.Kind != tree.KindCall {
			return true
		}
		if n.Name == "" {
			return true
		}
		qualifier, base := symtab.SplitQualified(n.Name)
		if qualifier == "" {
			return true
		}
		if symbols.IsDefined(base) {
			out = append(out, Diagnostic{
				Code:     CodeRedundantQualifier,
				Severity: SeverityInfo,
				Span:     n.Span,
				Symbol:   n.Name,
				Message:  fmt.Sprintf("qualifier %q is redundant, %s is declared here", qualifier, base),
			})
			return true
		}
		if !symbols.HasQualifier(qualifier) {
			out = append(out, Diagnostic{
				Code:       CodeUnresolvedRef,
				Severity:   SeverityError,
				Span:       n.Span,
				Symbol:     n.Name,
				Message:    fmt.Sprintf("unresolved reference %s", n.Name),
				Candidates: universe.Resolve(n.Name),
			})
		}
		return true
	})
	return out
}
