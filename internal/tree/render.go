package tree

import "strings"

// Render produces the source text for a subtree. The layout is deliberately
// plain: one top-level element per line, blocks with `{ a; b }` bodies, calls
// with comma-separated arguments.
func Render(n *Node) string {
	var b strings.Builder
	emit(&b, n, false)
	return b.String()
}

// Text renders the whole tree.
func (t *Tree) Text() string {
	return Render(t.root)
}

// Layout re-renders the tree and assigns every node the span it occupies in
// the rendered text. Called on adoption of span-less snapshots and by the
// formatter after it rewrites node content.
func (t *Tree) Layout() {
	var b strings.Builder
	emit(&b, t.root, true)
}

func emit(b *strings.Builder, n *Node, assign bool) {
	start := b.Len()
	switch n.Kind {
	case KindFile:
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
			}
			emit(b, c, assign)
		}
	case KindImport:
		b.WriteString("import ")
		b.WriteString(n.Name)
	case KindDecl:
		b.WriteString("let ")
		b.WriteString(n.Name)
		b.WriteString(" = ")
		emitList(b, n.Children, ", ", assign)
	case KindBlock:
		if len(n.Children) == 0 {
			b.WriteString("{}")
		} else {
			b.WriteString("{ ")
			emitList(b, n.Children, "; ", assign)
			b.WriteString(" }")
		}
	case KindCall:
		b.WriteString(n.Name)
		b.WriteByte('(')
		emitList(b, n.Children, ", ", assign)
		b.WriteByte(')')
	case KindIdent:
		b.WriteString(n.Name)
	case KindLiteral:
		b.WriteString(n.Text)
	}
	if assign {
		n.Span = Span{Start: start, End: b.Len()}
	}
}

func emitList(b *strings.Builder, nodes []*Node, sep string, assign bool) {
	for i, c := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		emit(b, c, assign)
	}
}
