package tree

// Kind identifies the variant of a syntax-tree node.
type Kind uint8

const (
	KindFile Kind = iota
	KindImport
	KindDecl
	KindBlock
	KindCall
	KindIdent
	KindLiteral
)

var kindNames = map[Kind]string{
	KindFile:    "file",
	KindImport:  "import",
	KindDecl:    "decl",
	KindBlock:   "block",
	KindCall:    "call",
	KindIdent:   "ident",
	KindLiteral: "literal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Span is a half-open byte range [Start, End) over the rendered source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether s fully contains other.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Overlaps reports whether the two half-open ranges share at least one offset.
// Zero-length spans overlap a range when their position falls inside it.
func (s Span) Overlaps(other Span) bool {
	if s.Len() == 0 {
		return other.Start <= s.Start && s.Start < other.End
	}
	if other.Len() == 0 {
		return s.Start <= other.Start && other.Start < s.End
	}
	return s.Start < other.End && other.Start < s.End
}

// Node is a single syntax-tree node. Name carries identifiers (possibly
// qualified, e.g. "strings.Join"), Text carries literal payloads. Suppress
// lists rule names the translator asked to leave alone at this node.
type Node struct {
	Kind     Kind
	Span     Span
	Name     string
	Text     string
	Suppress []string
	Children []*Node

	parent   *Node
	detached bool
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Valid reports whether the node is still attached to its tree. A node
// becomes invalid when it, or any ancestor, is detached or replaced.
func (n *Node) Valid() bool {
	return n != nil && !n.detached
}

// Suppressed reports whether the given rule is suppressed at this node.
func (n *Node) Suppressed(rule string) bool {
	for _, s := range n.Suppress {
		if s == rule {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants in depth-first preorder. Returning false
// from fn prunes the subtree below the current node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
