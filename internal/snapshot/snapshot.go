// Package snapshot loads translator output: YAML descriptions of the syntax
// tree handed to post-processing. Parsing source text is out of scope; the
// translator serializes the tree it built and this package reconstitutes it.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
)

type nodeSpec struct {
	Kind     string     `yaml:"kind"`
	Name     string     `yaml:"name,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Suppress []string   `yaml:"suppress,omitempty"`
	Children []nodeSpec `yaml:"children,omitempty"`
}

var kinds = map[string]tree.Kind{
	"file":    tree.KindFile,
	"import":  tree.KindImport,
	"decl":    tree.KindDecl,
	"block":   tree.KindBlock,
	"call":    tree.KindCall,
	"ident":   tree.KindIdent,
	"literal": tree.KindLiteral,
}

// Load reads a snapshot file and builds its tree.
func Load(path string) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse builds a tree from snapshot bytes. Nodes are laid out so spans match
// the rendered text.
func Parse(data []byte) (*tree.Tree, error) {
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	root, err := build(spec)
	if err != nil {
		return nil, err
	}
	return tree.New(root), nil
}

func build(spec nodeSpec) (*tree.Node, error) {
	kind, ok := kinds[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", spec.Kind)
	}
	n := &tree.Node{
		Kind:     kind,
		Name:     spec.Name,
		Text:     spec.Text,
		Suppress: spec.Suppress,
	}
	for _, c := range spec.Children {
		child, err := build(c)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// LoadUniverse reads an index of importable declarations: a YAML map from
// qualified name (or bare qualifier) to candidate declarations.
func LoadUniverse(path string) (symtab.Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var u symtab.Universe
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return u, nil
}
