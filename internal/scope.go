package internal

import "github.com/yusufwagh/retouch/internal/tree"

// Classification is the scope filter's verdict for one node.
type Classification uint8

const (
	// Excluded prunes the node and its whole subtree.
	Excluded Classification = iota
	// TraverseOnly descends into children without consulting rules at the
	// node itself.
	TraverseOnly
	// Eligible consults every rule in the current batch at the node.
	Eligible
)

func (c Classification) String() string {
	switch c {
	case TraverseOnly:
		return "traverse-only"
	case Eligible:
		return "eligible"
	default:
		return "excluded"
	}
}

// Classify places a node relative to the scope. No scope means the whole
// tree is eligible. A scope whose underlying range reference has collapsed
// excludes everything: there is nothing left to process under it.
func Classify(n *tree.Node, scope *tree.Scope) Classification {
	if scope == nil {
		return Eligible
	}
	if !scope.Valid() {
		return Excluded
	}
	span := scope.Span()
	switch {
	case span.Contains(n.Span):
		return Eligible
	case span.Overlaps(n.Span):
		return TraverseOnly
	default:
		return Excluded
	}
}
