package internal

import (
	"github.com/yusufwagh/retouch/internal/diag"
	"github.com/yusufwagh/retouch/internal/fixups"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

/*
* Implement each fixup rule as a separate struct
 */

// Rule is a stateless unit that may produce one mutation for a node, given
// the current diagnostic snapshot and settings.
type Rule interface {
	// TryAction returns a ready-to-run mutation for the node, or nil when
	// the rule does not apply. The collector fills in name, priority and
	// exclusivity from the other methods.
	TryAction(t *tree.Tree, node *tree.Node, diags *diag.Set, settings *types.Settings) *types.Action

	// Name returns the rule's name, used for suppression and settings.
	Name() string

	// Priority is the global ordering key for collected actions; lower runs
	// earlier.
	Priority() int

	// RequiresExclusive reports whether the rule's actions must run under
	// exclusive mutation acquisition.
	RequiresExclusive() bool
}

// Entry is one node of the rule registry tree: a single rule or a named
// group of entries.
type Entry interface {
	registryEntry()
}

// RuleEntry is a registry leaf holding a single rule.
type RuleEntry struct {
	Rule Rule
}

func (RuleEntry) registryEntry() {}

// Group is a named, ordered collection of registry entries. A group whose
// children are all single rules is batched together.
type Group struct {
	Name     string
	Children []Entry
}

func (Group) registryEntry() {}

type RedundantQualifierRule struct {
	priority int
}

func NewRedundantQualifierRule(s *types.Settings) Rule {
	return &RedundantQualifierRule{priority: s.RulePriority("redundant-qualifier", 10)}
}

func (r *RedundantQualifierRule) TryAction(t *tree.Tree, node *tree.Node, diags *diag.Set, _ *types.Settings) *types.Action {
	return fixups.StripRedundantQualifier(t, node, diags)
}

func (r *RedundantQualifierRule) Name() string {
	return "redundant-qualifier"
}

func (r *RedundantQualifierRule) Priority() int {
	return r.priority
}

func (r *RedundantQualifierRule) RequiresExclusive() bool {
	return false
}

type EmptyBlockRule struct {
	priority int
}

func NewEmptyBlockRule(s *types.Settings) Rule {
	return &EmptyBlockRule{priority: s.RulePriority("empty-block", 20)}
}

func (r *EmptyBlockRule) TryAction(t *tree.Tree, node *tree.Node, _ *diag.Set, _ *types.Settings) *types.Action {
	return fixups.RemoveEmptyBlock(t, node)
}

func (r *EmptyBlockRule) Name() string {
	return "empty-block"
}

func (r *EmptyBlockRule) Priority() int {
	return r.priority
}

func (r *EmptyBlockRule) RequiresExclusive() bool {
	return false
}

type CollapseConcatRule struct {
	priority int
}

func NewCollapseConcatRule(s *types.Settings) Rule {
	return &CollapseConcatRule{priority: s.RulePriority("collapse-concat", 30)}
}

func (r *CollapseConcatRule) TryAction(t *tree.Tree, node *tree.Node, _ *diag.Set, _ *types.Settings) *types.Action {
	return fixups.CollapseConcat(t, node)
}

func (r *CollapseConcatRule) Name() string {
	return "collapse-concat"
}

func (r *CollapseConcatRule) Priority() int {
	return r.priority
}

func (r *CollapseConcatRule) RequiresExclusive() bool {
	return false
}

type UnresolvedImportRule struct {
	priority int
}

func NewUnresolvedImportRule(s *types.Settings) Rule {
	return &UnresolvedImportRule{priority: s.RulePriority("unresolved-import", 40)}
}

func (r *UnresolvedImportRule) TryAction(t *tree.Tree, node *tree.Node, diags *diag.Set, _ *types.Settings) *types.Action {
	return fixups.InsertMissingImport(t, node, diags)
}

func (r *UnresolvedImportRule) Name() string {
	return "unresolved-import"
}

func (r *UnresolvedImportRule) Priority() int {
	return r.priority
}

// RequiresExclusive is true: the action mutates the file's import list, not
// the node it was collected for.
func (r *UnresolvedImportRule) RequiresExclusive() bool {
	return true
}

type NormalizeLiteralRule struct {
	priority int
}

func NewNormalizeLiteralRule(s *types.Settings) Rule {
	return &NormalizeLiteralRule{priority: s.RulePriority("normalize-literal", 50)}
}

func (r *NormalizeLiteralRule) TryAction(t *tree.Tree, node *tree.Node, _ *diag.Set, _ *types.Settings) *types.Action {
	return fixups.NormalizeLiteral(t, node)
}

func (r *NormalizeLiteralRule) Name() string {
	return "normalize-literal"
}

func (r *NormalizeLiteralRule) Priority() int {
	return r.priority
}

func (r *NormalizeLiteralRule) RequiresExclusive() bool {
	return false
}

// -----------------------------------------------------------------------------

type ruleConstructor func(*types.Settings) Rule

// cleanupRules lists the first batch's rules in registry order.
var cleanupRules = []struct {
	name string
	cstr ruleConstructor
}{
	{"redundant-qualifier", NewRedundantQualifierRule},
	{"empty-block", NewEmptyBlockRule},
	{"collapse-concat", NewCollapseConcatRule},
}

// DefaultRegistry builds the built-in registry: a leaf-only cleanup group
// processed to convergence first, then a mixed group holding the import
// fixups and the literal normalizer, which the planner expands into separate
// batches. Rules disabled in the settings are left out.
func DefaultRegistry(s *types.Settings) []Entry {
	enabled := func(name string) bool { return !s.RuleDisabled(name) }

	var cleanup []Entry
	for _, r := range cleanupRules {
		if enabled(r.name) {
			cleanup = append(cleanup, RuleEntry{Rule: r.cstr(s)})
		}
	}

	var final []Entry
	if enabled("unresolved-import") {
		final = append(final, Group{
			Name:     "imports",
			Children: []Entry{RuleEntry{Rule: NewUnresolvedImportRule(s)}},
		})
	}
	if enabled("normalize-literal") {
		final = append(final, RuleEntry{Rule: NewNormalizeLiteralRule(s)})
	}

	var registry []Entry
	if len(cleanup) > 0 {
		registry = append(registry, Group{Name: "cleanup", Children: cleanup})
	}
	if len(final) > 0 {
		registry = append(registry, Group{Name: "final", Children: final})
	}
	return registry
}
