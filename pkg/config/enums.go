package config

// WorkflowKind defines how a workflow's steps are expressed and executed
type WorkflowKind string

const (
	// WorkflowKindPipeline runs a flat list of phases with hand-rolled
	// context accumulation between them
	WorkflowKindPipeline WorkflowKind = "pipeline"
	// WorkflowKindCrew runs role-flavored agents through the crew engine's
	// sequential task handoff
	WorkflowKindCrew WorkflowKind = "crew"
)

// IsValid checks if the workflow kind is valid
func (k WorkflowKind) IsValid() bool {
	return k == WorkflowKindPipeline || k == WorkflowKindCrew
}

// ProcessType defines how a crew executes its tasks
type ProcessType string

const (
	// ProcessSequential executes tasks one at a time in declared order,
	// each receiving the outputs of all tasks before it
	ProcessSequential ProcessType = "sequential"
)

// IsValid checks if the process type is valid
func (p ProcessType) IsValid() bool {
	return p == ProcessSequential
}
