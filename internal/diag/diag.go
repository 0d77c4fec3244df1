// Package diag computes the semantic diagnostic snapshot rules consume.
// A Set is valid only for the tree state it was computed against; the
// convergence loop recomputes it after every round that mutated the tree.
package diag

import (
	"fmt"
	"sort"

	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
)

// Code classifies a diagnostic.
type Code string

const (
	CodeUnresolvedRef      Code = "unresolved-ref"
	CodeRedundantQualifier Code = "redundant-qualifier"
)

// Severity orders diagnostics from informational to fatal.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Diagnostic is one semantic fact about the current snapshot. Candidates
// carries resolver results, in resolver preference order, for unresolved
// references.
type Diagnostic struct {
	Code       Code
	Severity   Severity
	Span       tree.Span
	Symbol     string
	Message    string
	Candidates []symtab.Decl
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Severity, d.Message, d.Code)
}

// Set is the diagnostic snapshot for one round, together with the symbol
// table it was computed from.
type Set struct {
	items   []Diagnostic
	Symbols *symtab.Table
}

func NewSet(symbols *symtab.Table) *Set {
	return &Set{Symbols: symbols}
}

func (s *Set) Add(d Diagnostic) {
	s.items = append(s.items, d)
}

func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the diagnostics. Do not modify the returned slice.
func (s *Set) Items() []Diagnostic {
	return s.items
}

// At returns the diagnostics whose span exactly covers the given node span.
func (s *Set) At(span tree.Span) []Diagnostic {
	var out []Diagnostic
	for _, d := range s.items {
		if d.Span == span {
			out = append(out, d)
		}
	}
	return out
}

// Sort orders diagnostics by span start, span end, severity (descending)
// and code, so concurrent per-element analysis yields a deterministic set.
func (s *Set) Sort() {
	sort.SliceStable(s.items, func(i, j int) bool {
		di, dj := s.items[i], s.items[j]
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
