// Package config provides configuration management for DraftForge,
// including workflow, phase, instruction, and LLM provider configuration.
package config

import (
	"fmt"
	"sync"
)

// PhaseConfig defines a single phase of a pipeline workflow.
// Phases are static: defined once at load time, ordered, never mutated.
type PhaseConfig struct {
	// Phase name (required, unique within the workflow). Also the key used
	// to select the phase's user instruction from the instruction map.
	Name string `yaml:"name"`

	// Human-readable label printed in progress output and the report
	Description string `yaml:"description,omitempty"`

	// Role the LLM is asked to assume, e.g. "Literature Review Specialist"
	Role string `yaml:"role"`

	// Free-text behavioral instructions folded into the system prompt
	Instructions string `yaml:"instructions,omitempty"`

	// Sampling temperature override. nil = use the LLM default.
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// CrewAgentConfig defines a role-flavored agent for a crew workflow
type CrewAgentConfig struct {
	// Agent name (required, unique within the workflow)
	Name string `yaml:"name"`

	// Role title, e.g. "Program Chair"
	Role string `yaml:"role"`

	// What the agent is trying to achieve. May reference the workflow
	// topic with the '{topic}' placeholder.
	Goal string `yaml:"goal"`

	// Persona context prepended to the agent's system prompt
	Backstory string `yaml:"backstory,omitempty"`
}

// CrewTaskConfig defines one task in a crew workflow.
// Tasks execute in declared order under the sequential process.
type CrewTaskConfig struct {
	// Name of the agent that performs this task (required, must reference
	// an agent in the workflow's agent list)
	Agent string `yaml:"agent"`

	// Task description. May reference the workflow topic with the
	// '{topic}' placeholder.
	Description string `yaml:"description"`

	// What a good result looks like; appended to the task prompt
	ExpectedOutput string `yaml:"expected_output,omitempty"`
}

// WorkflowConfig defines a complete workflow: either a phase pipeline or
// an agent crew. Exactly one of Phases / (Agents, Tasks) is populated,
// according to Kind.
type WorkflowConfig struct {
	// Workflow kind (pipeline or crew). Defaults to pipeline when omitted.
	Kind WorkflowKind `yaml:"kind,omitempty"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Topic used when the command line does not supply one
	DefaultTopic string `yaml:"default_topic,omitempty"`

	// Report title line
	ReportTitle string `yaml:"report_title,omitempty"`

	// Phases for pipeline workflows (required when kind == pipeline)
	Phases []PhaseConfig `yaml:"phases,omitempty"`

	// Agents and tasks for crew workflows (required when kind == crew)
	Agents []CrewAgentConfig `yaml:"agents,omitempty"`
	Tasks  []CrewTaskConfig  `yaml:"tasks,omitempty"`

	// Crew process type. Only "sequential" is supported.
	Process ProcessType `yaml:"process,omitempty"`
}

// WorkflowRegistry stores workflow configurations in memory with thread-safe access
type WorkflowRegistry struct {
	workflows map[string]*WorkflowConfig
	mu        sync.RWMutex
}

// NewWorkflowRegistry creates a new workflow registry
func NewWorkflowRegistry(workflows map[string]*WorkflowConfig) *WorkflowRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*WorkflowConfig, len(workflows))
	for k, v := range workflows {
		copied[k] = v
	}
	return &WorkflowRegistry{
		workflows: copied,
	}
}

// Get retrieves a workflow configuration by name (thread-safe)
func (r *WorkflowRegistry) Get(name string) (*WorkflowConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wf, exists := r.workflows[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrWorkflowNotFound, name)
	}
	return wf, nil
}

// GetAll returns all workflow configurations (thread-safe, returns copy)
func (r *WorkflowRegistry) GetAll() map[string]*WorkflowConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*WorkflowConfig, len(r.workflows))
	for k, v := range r.workflows {
		result[k] = v
	}
	return result
}

// Has checks if a workflow exists in the registry (thread-safe)
func (r *WorkflowRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.workflows[name]
	return exists
}

// Len returns the number of workflows in the registry (thread-safe)
func (r *WorkflowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workflows)
}
