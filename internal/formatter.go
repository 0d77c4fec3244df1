package internal

import (
	"strings"

	"github.com/yusufwagh/retouch/internal/tree"
)

// Formatter is the reformatting collaborator the finalizer invokes after
// all batches converge. Both methods mutate the tree and must run under
// exclusive mutation.
type Formatter interface {
	Reformat(t *tree.Tree) error
	ReformatRange(t *tree.Tree, span tree.Span) error
}

// treeFormatter is the default formatter: it tidies identifier and literal
// text, then lays the tree out again so every span matches the rendered
// output.
type treeFormatter struct{}

// NewFormatter returns the default formatter.
func NewFormatter() Formatter {
	return treeFormatter{}
}

func (f treeFormatter) Reformat(t *tree.Tree) error {
	f.tidy(t, t.Root(), nil)
	t.Layout()
	return nil
}

func (f treeFormatter) ReformatRange(t *tree.Tree, span tree.Span) error {
	f.tidy(t, t.Root(), &span)
	t.Layout()
	return nil
}

func (f treeFormatter) tidy(t *tree.Tree, n *tree.Node, span *tree.Span) {
	if n == nil {
		return
	}
	tree.Walk(n, func(c *tree.Node) bool {
		if span != nil && !span.Overlaps(c.Span) && c.Span.Len() > 0 {
			return false
		}
		if trimmed := strings.TrimSpace(c.Name); trimmed != c.Name {
			t.SetName(c, trimmed)
		}
		if c.Kind == tree.KindLiteral {
			if trimmed := strings.TrimSpace(c.Text); trimmed != c.Text {
				t.SetText(c, trimmed)
			}
		}
		return true
	})
}
