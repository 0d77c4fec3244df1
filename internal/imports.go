package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/yusufwagh/retouch/internal/fixups"
	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
)

// Resolver supplies candidate declarations for a qualified name, in the
// resolver's preference order.
type Resolver interface {
	ResolveQualifiedName(name string) []symtab.Decl
}

// Inserter mutates the tree to import a declaration. Must run under
// exclusive mutation.
type Inserter interface {
	InsertImport(t *tree.Tree, decl symtab.Decl) error
}

// UniverseResolver resolves qualified names against a static universe of
// importable declarations.
type UniverseResolver struct {
	Universe symtab.Universe
}

func (r UniverseResolver) ResolveQualifiedName(name string) []symtab.Decl {
	return r.Universe.Resolve(name)
}

// NodeInserter is the default inserter: it appends an import node after the
// file's existing imports, skipping paths already present.
type NodeInserter struct{}

func (NodeInserter) InsertImport(t *tree.Tree, decl symtab.Decl) error {
	return fixups.AddImport(t, decl.ImportPath)
}

// InsertImport resolves a qualified name and imports the first candidate
// under exclusive mutation on the designated context. Empty resolution is a
// no-op, not an error; candidates past the first are never consulted.
func (p *Pipeline) InsertImport(ctx context.Context, t *tree.Tree, qualified string) error {
	candidates := p.resolver.ResolveQualifiedName(qualified)
	if len(candidates) == 0 {
		p.logger.Debug("no candidates for qualified name",
			zap.String("name", qualified))
		return nil
	}
	first := candidates[0]
	return p.host.OnMutationContext(ctx, func() error {
		return p.host.Exclusive(func() error {
			return p.inserter.InsertImport(t, first)
		})
	})
}
