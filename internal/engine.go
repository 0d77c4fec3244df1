package internal

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yusufwagh/retouch/internal/diag"
	"github.com/yusufwagh/retouch/internal/host"
	"github.com/yusufwagh/retouch/internal/symtab"
	"github.com/yusufwagh/retouch/internal/tree"
	"github.com/yusufwagh/retouch/internal/types"
)

// Pipeline drives a rule registry over one tree at a time: each batch from
// the planner is processed to a fixpoint before the next begins, then the
// finalizer reformats the result.
type Pipeline struct {
	settings  *types.Settings
	logger    *zap.Logger
	registry  []Entry
	universe  symtab.Universe
	formatter Formatter
	resolver  Resolver
	inserter  Inserter

	host     *host.Host
	ownsHost bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger; the default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithRegistry replaces the built-in rule registry.
func WithRegistry(registry []Entry) Option {
	return func(p *Pipeline) { p.registry = registry }
}

// WithUniverse supplies the importable declarations used to resolve
// references the snapshot cannot.
func WithUniverse(u symtab.Universe) Option {
	return func(p *Pipeline) { p.universe = u }
}

// WithFormatter replaces the default formatter collaborator.
func WithFormatter(f Formatter) Option {
	return func(p *Pipeline) { p.formatter = f }
}

// WithResolver replaces the qualified-name resolver collaborator.
func WithResolver(r Resolver) Option {
	return func(p *Pipeline) { p.resolver = r }
}

// WithInserter replaces the import inserter collaborator.
func WithInserter(i Inserter) Option {
	return func(p *Pipeline) { p.inserter = i }
}

// WithHost runs the pipeline on an externally owned mutation substrate.
// The caller keeps responsibility for closing it.
func WithHost(h *host.Host) Option {
	return func(p *Pipeline) { p.host = h }
}

// NewPipeline creates a pipeline with the built-in registry and default
// collaborators. Close must be called when the pipeline is no longer needed.
func NewPipeline(settings *types.Settings, opts ...Option) *Pipeline {
	if settings == nil {
		settings = types.DefaultSettings()
	}
	p := &Pipeline{
		settings: settings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = DefaultRegistry(settings)
	}
	if p.formatter == nil {
		p.formatter = NewFormatter()
	}
	if p.resolver == nil {
		p.resolver = UniverseResolver{Universe: p.universe}
	}
	if p.inserter == nil {
		p.inserter = NodeInserter{}
	}
	if p.host == nil {
		p.host = host.New()
		p.ownsHost = true
	}
	return p
}

// Close shuts down the pipeline's own mutation substrate, if any.
func (p *Pipeline) Close() {
	if p.ownsHost {
		p.host.Close()
	}
}

// AppliedAction records one executed action for reporting.
type AppliedAction struct {
	Rule     string
	Message  string
	Priority int
}

// Report summarises one post-processing run.
type Report struct {
	Batches int
	Rounds  int
	Applied []AppliedAction
}

// Run post-processes the tree: plan batches, converge each, then reformat.
// A nil scope means the whole tree. The tree must not be mutated by anyone
// else for the duration of the call.
func (p *Pipeline) Run(ctx context.Context, t *tree.Tree, scope *tree.Scope) (*Report, error) {
	batches, err := Plan(p.registry)
	if err != nil {
		return nil, fmt.Errorf("planning batches: %w", err)
	}

	report := &Report{Batches: len(batches)}
	for i, batch := range batches {
		p.logger.Debug("processing batch",
			zap.Int("batch", i),
			zap.Int("rules", len(batch)))
		if err := p.converge(ctx, t, scope, batch, report); err != nil {
			return report, err
		}
	}

	if p.settings.Format {
		if err := p.finalize(ctx, t, scope); err != nil {
			return report, err
		}
	}
	return report, nil
}

// converge drives one batch to its fixpoint. Each round recomputes the
// diagnostic snapshot, collects actions under the scope filter and applies
// them in priority order on the mutation context. The batch is done when a
// round collects nothing, or when a round that hit no invalidated action
// left the modification marker untouched (the collected actions were inert;
// looping further would never terminate).
func (p *Pipeline) converge(ctx context.Context, t *tree.Tree, scope *tree.Scope, batch []Rule, report *Report) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		before := t.Stamp()

		// Read phase. Diagnostics are stale the moment the previous round
		// mutated anything, so both snapshot and actions are recomputed
		// from scratch.
		var actions []types.Action
		err := p.host.Read(ctx, func() error {
			diags, err := diag.Analyze(ctx, t, scope, p.universe)
			if err != nil {
				return fmt.Errorf("analyzing snapshot: %w", err)
			}
			actions = Collect(batch, t, scope, diags, p.settings)
			return nil
		})
		if err != nil {
			return err
		}

		report.Rounds++
		if len(actions) == 0 {
			return nil
		}

		// Write phase, on the designated mutation context.
		uncertain := false
		err = p.host.OnMutationContext(ctx, func() error {
			for i := range actions {
				act := actions[i]
				if !act.Node.Valid() {
					// An earlier action this round detached the target. The
					// true tree state is unknowable now; never trust the
					// marker comparison for this round.
					uncertain = true
					p.logger.Debug("action target invalidated",
						zap.String("rule", act.Rule))
					continue
				}
				var runErr error
				if act.Exclusive {
					runErr = p.host.Exclusive(act.Run)
				} else {
					runErr = act.Run()
				}
				if runErr != nil {
					// Rule failures are not the engine's to absorb.
					return fmt.Errorf("rule %s: %w", act.Rule, runErr)
				}
				report.Applied = append(report.Applied, AppliedAction{
					Rule:     act.Rule,
					Message:  act.Message,
					Priority: act.Priority,
				})
			}
			return nil
		})
		if err != nil {
			return err
		}

		if !uncertain && t.Stamp() == before {
			return nil
		}
	}
}

// finalize reformats the scope range, or the whole tree when no scope was
// given. A collapsed scope leaves nothing to format and is not an error.
func (p *Pipeline) finalize(ctx context.Context, t *tree.Tree, scope *tree.Scope) error {
	if scope != nil && !scope.Valid() {
		return nil
	}
	return p.host.OnMutationContext(ctx, func() error {
		return p.host.Exclusive(func() error {
			if scope == nil {
				return p.formatter.Reformat(t)
			}
			return p.formatter.ReformatRange(t, scope.Span())
		})
	})
}
