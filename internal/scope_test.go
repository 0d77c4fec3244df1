package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yusufwagh/retouch/internal/tree"
)

func TestClassifyNoScope(t *testing.T) {
	t.Parallel()

	n := &tree.Node{Kind: tree.KindIdent, Span: tree.Span{Start: 0, End: 5}}
	assert.Equal(t, Eligible, Classify(n, nil))
}

func TestClassifyCollapsedScope(t *testing.T) {
	t.Parallel()

	tr := identFile("a")
	scope := tree.NewScope(tr, tr.Root().Span)
	scope.Ref().Invalidate()

	assert.Equal(t, Excluded, Classify(tr.Root(), scope))
	assert.Equal(t, Excluded, Classify(tr.Root().Children[0], scope))
}

func TestClassifyAgainstRange(t *testing.T) {
	t.Parallel()

	tr := identFile("a")
	scope := tree.NewScope(tr, tree.Span{Start: 10, End: 20})

	tests := []struct {
		name string
		span tree.Span
		want Classification
	}{
		{"fully inside", tree.Span{Start: 12, End: 18}, Eligible},
		{"identical", tree.Span{Start: 10, End: 20}, Eligible},
		{"straddles start", tree.Span{Start: 5, End: 15}, TraverseOnly},
		{"straddles end", tree.Span{Start: 15, End: 25}, TraverseOnly},
		{"covers scope", tree.Span{Start: 0, End: 30}, TraverseOnly},
		{"before", tree.Span{Start: 0, End: 10}, Excluded},
		{"after", tree.Span{Start: 20, End: 30}, Excluded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &tree.Node{Kind: tree.KindIdent, Span: tt.span}
			assert.Equal(t, tt.want, Classify(n, scope))
		})
	}
}

func TestClassificationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "excluded", Excluded.String())
	assert.Equal(t, "traverse-only", TraverseOnly.String())
	assert.Equal(t, "eligible", Eligible.String())
}
