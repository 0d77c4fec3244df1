// Package symtab indexes the names visible in one tree snapshot and the
// universe of importable declarations used to resolve the rest.
package symtab

import (
	"strings"
	"sync"

	"github.com/yusufwagh/retouch/internal/tree"
)

// Decl describes a resolvable declaration.
type Decl struct {
	Name       string `yaml:"name"`
	ImportPath string `yaml:"import"`
	Kind       string `yaml:"kind,omitempty"` // "func", "type", "var"
}

// Table holds the names defined by a tree snapshot: qualifiers brought in by
// import nodes and names introduced by top-level declarations.
type Table struct {
	mu      sync.RWMutex
	decls   map[string]Decl
	imports map[string]bool // qualifier -> imported
}

func New() *Table {
	return &Table{
		decls:   make(map[string]Decl),
		imports: make(map[string]bool),
	}
}

// FromTree builds a table from the snapshot's import and declaration nodes.
func FromTree(root *tree.Node) *Table {
	st := New()
	tree.Walk(root, func(n *tree.Node) bool {
		switch n.Kind {
		case tree.KindImport:
			st.AddImport(n.Name)
		case tree.KindDecl:
			st.Add(n.Name, Decl{Name: n.Name, Kind: "var"})
		}
		return true
	})
	return st
}

func (st *Table) Add(name string, d Decl) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.decls[name] = d
}

// AddImport records an imported path; the visible qualifier is the last
// path segment.
func (st *Table) AddImport(path string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.imports[Qualifier(path)] = true
}

// IsDefined reports whether name is declared in the snapshot.
func (st *Table) IsDefined(name string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.decls[name]
	return ok
}

// HasQualifier reports whether an import makes the qualifier visible.
func (st *Table) HasQualifier(q string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.imports[q]
}

// Qualifier returns the visible qualifier for an import path ("lib/strings"
// imports as "strings").
func Qualifier(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// SplitQualified splits "strings.Join" into ("strings", "Join"). The
// qualifier is empty for a bare name.
func SplitQualified(name string) (qualifier, base string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// Universe maps qualified names (and bare qualifiers) to the declarations an
// external resolver would offer for them, in resolver preference order.
type Universe map[string][]Decl

// Resolve returns candidates for a qualified name: an exact entry first,
// otherwise entries registered under the name's qualifier.
func (u Universe) Resolve(name string) []Decl {
	if u == nil {
		return nil
	}
	if decls, ok := u[name]; ok {
		return decls
	}
	qualifier, _ := SplitQualified(name)
	if qualifier == "" {
		return nil
	}
	return u[qualifier]
}
