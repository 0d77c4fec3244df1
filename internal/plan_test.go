package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufwagh/retouch/internal/types"
)

type badEntry struct{}

func (badEntry) registryEntry() {}

func namedRules(names ...string) []Rule {
	rules := make([]Rule, len(names))
	for i, n := range names {
		rules[i] = &stubRule{name: n}
	}
	return rules
}

func batchNames(batch []Rule) []string {
	out := make([]string, len(batch))
	for i, r := range batch {
		out[i] = r.Name()
	}
	return out
}

func TestPlanLeafOnlyRegistryIsOneBatch(t *testing.T) {
	t.Parallel()

	rules := namedRules("a", "b", "c")
	batches, err := Plan([]Entry{
		RuleEntry{Rule: rules[0]},
		RuleEntry{Rule: rules[1]},
		RuleEntry{Rule: rules[2]},
	})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"a", "b", "c"}, batchNames(batches[0]))
}

func TestPlanMixedGroupExpandsRecursively(t *testing.T) {
	t.Parallel()

	rules := namedRules("a", "b", "c", "d", "e")
	registry := []Entry{
		Group{Name: "first", Children: []Entry{
			RuleEntry{Rule: rules[0]},
			RuleEntry{Rule: rules[1]},
		}},
		Group{Name: "mixed", Children: []Entry{
			Group{Name: "nested", Children: []Entry{RuleEntry{Rule: rules[2]}}},
			RuleEntry{Rule: rules[3]},
		}},
		RuleEntry{Rule: rules[4]},
	}

	batches, err := Plan(registry)
	require.NoError(t, err)
	require.Len(t, batches, 4)
	assert.Equal(t, []string{"a", "b"}, batchNames(batches[0]))
	assert.Equal(t, []string{"c"}, batchNames(batches[1]))
	assert.Equal(t, []string{"d"}, batchNames(batches[2]))
	assert.Equal(t, []string{"e"}, batchNames(batches[3]))
}

func TestPlanEmptyRegistry(t *testing.T) {
	t.Parallel()

	batches, err := Plan(nil)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestPlanMalformedEntryIsFatal(t *testing.T) {
	t.Parallel()

	t.Run("unknown entry type", func(t *testing.T) {
		_, err := Plan([]Entry{RuleEntry{Rule: &stubRule{name: "a"}}, badEntry{}})
		assert.ErrorIs(t, err, ErrMalformedRegistry)
	})

	t.Run("nil rule", func(t *testing.T) {
		_, err := Plan([]Entry{RuleEntry{}})
		assert.ErrorIs(t, err, ErrMalformedRegistry)
	})

	t.Run("nested corruption surfaces", func(t *testing.T) {
		_, err := Plan([]Entry{Group{Name: "outer", Children: []Entry{
			Group{Name: "inner", Children: []Entry{badEntry{}}},
		}}})
		assert.ErrorIs(t, err, ErrMalformedRegistry)
		assert.ErrorContains(t, err, "inner")
	})
}

func TestDefaultRegistryPlansToDocumentedBatches(t *testing.T) {
	t.Parallel()

	batches, err := Plan(DefaultRegistry(types.DefaultSettings()))
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, []string{"redundant-qualifier", "empty-block", "collapse-concat"}, batchNames(batches[0]))
	assert.Equal(t, []string{"unresolved-import"}, batchNames(batches[1]))
	assert.Equal(t, []string{"normalize-literal"}, batchNames(batches[2]))
}

func TestDefaultRegistryHonorsSettings(t *testing.T) {
	t.Parallel()

	priority := 7
	settings := &types.Settings{
		Rules: map[string]types.RuleConfig{
			"collapse-concat":   {Disabled: true},
			"normalize-literal": {Priority: &priority},
		},
	}

	batches, err := Plan(DefaultRegistry(settings))
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, []string{"redundant-qualifier", "empty-block"}, batchNames(batches[0]))

	last := batches[2][0]
	assert.Equal(t, "normalize-literal", last.Name())
	assert.Equal(t, 7, last.Priority())
}
