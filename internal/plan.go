package internal

import (
	"errors"
	"fmt"
)

// ErrMalformedRegistry is returned when the registry holds an entry that is
// neither a single rule nor a group. Planning aborts; a corrupt registry is
// never silently skipped.
var ErrMalformedRegistry = errors.New("malformed rule registry entry")

// Plan flattens the registry tree into the ordered batches the engine
// drives to convergence, one batch at a time. A group whose children are all
// single rules becomes one batch. A mixed group expands recursively: nested
// groups contribute their own batches and stray single rules become
// singleton batches, preserving depth-first left-to-right registry order.
func Plan(registry []Entry) ([][]Rule, error) {
	return planEntries(registry)
}

func planEntries(entries []Entry) ([][]Rule, error) {
	if batch, ok := leafBatch(entries); ok {
		return [][]Rule{batch}, nil
	}
	var batches [][]Rule
	for _, e := range entries {
		switch e := e.(type) {
		case RuleEntry:
			if e.Rule == nil {
				return nil, fmt.Errorf("%w: rule entry with nil rule", ErrMalformedRegistry)
			}
			batches = append(batches, []Rule{e.Rule})
		case Group:
			sub, err := planEntries(e.Children)
			if err != nil {
				return nil, fmt.Errorf("in group %q: %w", e.Name, err)
			}
			batches = append(batches, sub...)
		default:
			return nil, fmt.Errorf("%w: %T", ErrMalformedRegistry, e)
		}
	}
	return batches, nil
}

// leafBatch returns the entries as a single batch when every entry is a
// well-formed single rule.
func leafBatch(entries []Entry) ([]Rule, bool) {
	if len(entries) == 0 {
		return nil, false
	}
	batch := make([]Rule, 0, len(entries))
	for _, e := range entries {
		leaf, ok := e.(RuleEntry)
		if !ok || leaf.Rule == nil {
			return nil, false
		}
		batch = append(batch, leaf.Rule)
	}
	return batch, true
}
