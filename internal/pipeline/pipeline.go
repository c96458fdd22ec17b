package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Stage is one pipeline stage. Stages read their input from the shared
// filesystem area after observing the upstream marker and write their own
// marker strictly after their last output record.
//
// Design decision: We use an interface rather than function types because
// stages carry configuration state and a Name() for logging, and the
// interface keeps the Runner open to future stages.
type Stage interface {
	// Run executes the stage to completion. It blocks while waiting for
	// the upstream marker and returns only when the stage's own marker
	// is written or a structural fault occurred.
	Run(ctx context.Context) error

	// Name returns the stage's name for logging purposes.
	Name() string
}

// Runner executes stages in order, stopping at the first failure.
// A failed stage has not written its completion marker, so stopping is the
// only correct behavior: the next stage would block forever anyway.
type Runner struct {
	// stages contains the ordered list of stages to execute.
	stages []Stage

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner over the given stages.
func NewRunner(stages []Stage, opts ...Option) *Runner {
	r := &Runner{stages: stages}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run executes all stages in sequence, respecting context cancellation
// between stages. Stages handle cancellation of their own waits internally.
func (r *Runner) Run(ctx context.Context) error {
	for _, stage := range r.stages {
		select {
		case <-ctx.Done():
			r.logger.Warn("pipeline cancelled",
				"stage", stage.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		r.logger.Info("running stage", "stage", stage.Name())
		start := time.Now()

		if err := stage.Run(ctx); err != nil {
			r.logger.Error("stage failed",
				"stage", stage.Name(),
				"error", err,
			)
			return fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		r.logger.Info("stage completed",
			"stage", stage.Name(),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}
	return nil
}

// StageNames returns the names of all stages in execution order.
func (r *Runner) StageNames() []string {
	names := make([]string, len(r.stages))
	for i, stage := range r.stages {
		names[i] = stage.Name()
	}
	return names
}
