package retouch

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yusufwagh/retouch/internal"
	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// New creates a processing pipeline. Pass nil settings for the defaults.
// The caller must Close the pipeline when done.
func New(settings *types.Settings, opts ...internal.Option) *internal.Pipeline {
	return internal.NewPipeline(settings, opts...)
}

// NewFromConfig creates a pipeline configured from a YAML settings file.
func NewFromConfig(path string, opts ...internal.Option) (*internal.Pipeline, error) {
	settings, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}
	return internal.NewPipeline(settings, opts...), nil
}

// RunPostProcessing applies the built-in rule registry to the tree until no
// rule produces further change, then reformats. A nil scope processes the
// whole tree; a scope restricts collection to its range.
func RunPostProcessing(ctx context.Context, t *tree.Tree, scope *tree.Scope, settings *types.Settings) (*internal.Report, error) {
	p := internal.NewPipeline(settings)
	defer p.Close()
	return p.Run(ctx, t, scope)
}

// InsertImport resolves a qualified name against the universe and imports
// the first candidate. A name that resolves to nothing is a no-op.
func InsertImport(ctx context.Context, t *tree.Tree, qualified string, universe symtab.Universe) error {
	p := internal.NewPipeline(nil, internal.WithUniverse(universe))
	defer p.Close()
	return p.InsertImport(ctx, t, qualified)
}

// LoadSettings parses a YAML settings file.
func LoadSettings(path string) (*types.Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening settings: %w", err)
	}
	defer f.Close()

	settings := types.DefaultSettings()
	if err := yaml.NewDecoder(f).Decode(settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return settings, nil
}
