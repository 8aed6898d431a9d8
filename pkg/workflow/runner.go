package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draftforge/draftforge/pkg/config"
)

// Runner drives the pipeline: phases execute strictly one at a time in
// declared order, each fed the state accumulated so far. There is no
// dependency graph; insertion order is the only ordering.
type Runner struct {
	executor *Executor
	phases   []config.PhaseConfig
}

// NewRunner creates a pipeline runner over a static phase list.
func NewRunner(executor *Executor, phases []config.PhaseConfig) *Runner {
	return &Runner{
		executor: executor,
		phases:   phases,
	}
}

// Run executes every phase in order and returns the final state. A phase
// failure aborts the run and loses all progress; the report is only
// written by the caller after all phases complete.
func (r *Runner) Run(ctx context.Context) (*State, error) {
	state := NewState()

	for i, phase := range r.phases {
		slog.Info("Starting phase",
			"phase", phase.Name,
			"description", phase.Description,
			"step", i+1,
			"total", len(r.phases))

		output, err := r.executor.ExecutePhase(ctx, phase, state)
		if err != nil {
			return nil, fmt.Errorf("pipeline aborted at phase %d/%d: %w", i+1, len(r.phases), err)
		}

		state.Append(phase.Name, output)
	}

	slog.Info("Workflow complete", "phases", state.Len())
	return state, nil
}
