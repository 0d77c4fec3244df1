package types

import "github.com/yusufwagh/retouch/internal/tree"

// Action is a ready-to-run mutation produced by one rule for one node.
// Actions are created fresh each collection round and never persisted.
type Action struct {
	Node      *tree.Node
	Rule      string
	Priority  int
	Exclusive bool
	Message   string
	Run       func() error
}

// RuleConfig adjusts one rule from the settings file.
type RuleConfig struct {
	Disabled bool `yaml:"disabled,omitempty"`
	Priority *int `yaml:"priority,omitempty"`
}

// Settings configures a post-processing run. It is passed opaquely to every
// rule; Extra carries rule-specific knobs the engine does not interpret.
type Settings struct {
	Name   string                `yaml:"name"`
	Format bool                  `yaml:"format"`
	Rules  map[string]RuleConfig `yaml:"rules,omitempty"`
	Extra  map[string]string     `yaml:"extra,omitempty"`
}

// DefaultSettings enables formatting and leaves every rule at its default.
func DefaultSettings() *Settings {
	return &Settings{Name: "retouch", Format: true}
}

// RuleDisabled reports whether the settings switch the rule off.
func (s *Settings) RuleDisabled(rule string) bool {
	if s == nil {
		return false
	}
	return s.Rules[rule].Disabled
}

// RulePriority returns the configured priority for the rule, or def when the
// settings leave it alone.
func (s *Settings) RulePriority(rule string, def int) int {
	if s == nil {
		return def
	}
	if cfg, ok := s.Rules[rule]; ok && cfg.Priority != nil {
		return *cfg.Priority
	}
	return def
}
