// Package report serializes a completed run into the flat text artifact:
// a fixed header followed by every phase's full output in execution order.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/draftforge/draftforge/pkg/workflow"
)

const headerRule = "================================================================================"

// Report is the sole persisted artifact of a run.
type Report struct {
	Title       string
	Topic       string
	Model       string
	RunID       string
	GeneratedAt time.Time

	state *workflow.State
}

// New creates a report over a completed workflow state. The run ID and
// timestamp are assigned here, when the run is known to have finished.
func New(title, topic, model string, state *workflow.State) *Report {
	return &Report{
		Title:       title,
		Topic:       topic,
		Model:       model,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		state:       state,
	}
}

// Render produces the full report text: header (title, topic, model, run
// identity) then, per phase, a delimiter line and the phase's full text.
func (r *Report) Render() string {
	var sb strings.Builder

	sb.WriteString(r.Title)
	sb.WriteString("\n")
	sb.WriteString(headerRule)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Topic: %s\n", r.Topic))
	sb.WriteString(fmt.Sprintf("Model: %s\n", r.Model))
	sb.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Generated at: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	for _, entry := range r.state.Entries() {
		sb.WriteString(fmt.Sprintf("--- PHASE: %s ---\n", entry.Name))
		sb.WriteString(entry.Output)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// Write persists the rendered report as UTF-8 text.
func (r *Report) Write(path string) error {
	if err := os.WriteFile(path, []byte(r.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	slog.Info("Report written", "path", path, "run_id", r.RunID, "phases", r.state.Len())
	return nil
}
