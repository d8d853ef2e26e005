// Package app wires an input source to the solver and, in watch mode, keeps
// re-solving as the input changes.
package app

import (
	"context"

	"github.com/bft-labs/lagoon/internal/ports"
	"github.com/bft-labs/lagoon/pkg/lagoon"
	"github.com/bft-labs/lagoon/pkg/log"
)

// Runner loads a dig plan from its source and solves it.
type Runner struct {
	source ports.InputSource
	logger log.Logger
	opts   []lagoon.Option
}

// NewRunner creates a runner. A nil logger means no logging.
func NewRunner(source ports.InputSource, logger log.Logger, opts ...lagoon.Option) *Runner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Runner{
		source: source,
		logger: logger,
		opts:   append(append([]lagoon.Option(nil), opts...), lagoon.WithLogger(logger)),
	}
}

// Source returns the runner's input source.
func (r *Runner) Source() ports.InputSource {
	return r.source
}

// Solve reads the input once and computes the result.
func (r *Runner) Solve(ctx context.Context) (lagoon.Result, error) {
	text, err := r.source.Load(ctx)
	if err != nil {
		return lagoon.Result{}, err
	}
	r.logger.Debug("input loaded", log.String("path", r.source.Path()), log.Int("bytes", len(text)))

	return lagoon.Solve(text, r.opts...)
}
