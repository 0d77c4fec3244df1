package tree

import "sync/atomic"

// Tree owns a mutable syntax tree for the duration of one post-processing
// invocation. Every committed mutation bumps an opaque modification stamp;
// the stamp never goes backwards and is only ever compared for equality.
type Tree struct {
	root  *Node
	stamp atomic.Uint64
	refs  []*RangeRef
}

// New adopts root as the tree's top node, wiring parent links. Nodes without
// spans are laid out from the rendered text so scope classification works on
// translator snapshots that carry no offsets.
func New(root *Node) *Tree {
	t := &Tree{root: root}
	adopt(root, nil)
	if root != nil && root.Span.Len() == 0 {
		t.Layout()
	}
	return t
}

func adopt(n *Node, parent *Node) {
	if n == nil {
		return
	}
	n.parent = parent
	for _, c := range n.Children {
		adopt(c, n)
	}
}

// Root returns the top node.
func (t *Tree) Root() *Node {
	return t.root
}

// Stamp returns the current modification marker.
func (t *Tree) Stamp() uint64 {
	return t.stamp.Load()
}

func (t *Tree) bump() {
	t.stamp.Add(1)
}

// SetName rewrites a node's identifier.
func (t *Tree) SetName(n *Node, name string) {
	if n.Name == name {
		return
	}
	n.Name = name
	t.bump()
}

// SetText rewrites a node's literal payload.
func (t *Tree) SetText(n *Node, text string) {
	if n.Text == text {
		return
	}
	n.Text = text
	t.bump()
}

// Replace swaps old for repl in old's parent. The old subtree is detached
// and its nodes become invalid; range references inside it collapse.
func (t *Tree) Replace(old, repl *Node) {
	parent := old.parent
	if parent == nil {
		detach(old)
		t.invalidateRefsWithin(old.Span)
		adopt(repl, nil)
		t.root = repl
		t.bump()
		return
	}
	for i, c := range parent.Children {
		if c == old {
			parent.Children[i] = repl
			adopt(repl, parent)
			detach(old)
			t.invalidateRefsWithin(old.Span)
			t.bump()
			return
		}
	}
}

// Detach removes n from its parent. The subtree becomes invalid and range
// references fully inside it collapse.
func (t *Tree) Detach(n *Node) {
	parent := n.parent
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c == n {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			detach(n)
			t.invalidateRefsWithin(n.Span)
			t.bump()
			return
		}
	}
}

// InsertChild inserts child under parent at index at (clamped).
func (t *Tree) InsertChild(parent *Node, at int, child *Node) {
	if at < 0 {
		at = 0
	}
	if at > len(parent.Children) {
		at = len(parent.Children)
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[at+1:], parent.Children[at:])
	parent.Children[at] = child
	adopt(child, parent)
	t.bump()
}

func detach(n *Node) {
	Walk(n, func(c *Node) bool {
		c.detached = true
		return true
	})
	n.parent = nil
}

// RangeRef is an invalidatable handle to a text range. It collapses when the
// range it covered is removed from the tree.
type RangeRef struct {
	span  Span
	valid bool
}

// NewRangeRef registers a range reference with the tree so mutations can
// collapse it.
func (t *Tree) NewRangeRef(span Span) *RangeRef {
	ref := &RangeRef{span: span, valid: true}
	t.refs = append(t.refs, ref)
	return ref
}

func (r *RangeRef) Valid() bool { return r != nil && r.valid }
func (r *RangeRef) Span() Span  { return r.span }

// Invalidate collapses the reference.
func (r *RangeRef) Invalidate() { r.valid = false }

func (t *Tree) invalidateRefsWithin(span Span) {
	for _, ref := range t.refs {
		if ref.valid && span.Contains(ref.span) {
			ref.valid = false
		}
	}
}

// Scope restricts action collection to a sub-range of the tree. A nil Scope
// means the whole tree.
type Scope struct {
	ref *RangeRef
}

// NewScope creates a scope over span, backed by a registered range reference.
func NewScope(t *Tree, span Span) *Scope {
	return &Scope{ref: t.NewRangeRef(span)}
}

// Ref exposes the underlying range reference.
func (s *Scope) Ref() *RangeRef {
	if s == nil {
		return nil
	}
	return s.ref
}

// Valid reports whether the scope's underlying range still exists.
func (s *Scope) Valid() bool {
	return s != nil && s.ref.Valid()
}

// Span returns the scope range. Only meaningful while Valid.
func (s *Scope) Span() Span {
	return s.ref.Span()
}
