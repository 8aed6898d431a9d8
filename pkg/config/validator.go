package config

import (
	"fmt"
	"log/slog"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: LLM → workflows
	// The LLM config is a dependency of every workflow

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("LLM validation failed: %w", err)
	}

	if err := v.validateWorkflows(); err != nil {
		return fmt.Errorf("workflow validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	llm := v.cfg.LLM

	if llm.Model == "" {
		return NewValidationError("llm", "provider", "model", fmt.Errorf("model required"))
	}
	if llm.BaseURL == "" {
		return NewValidationError("llm", "provider", "base_url", fmt.Errorf("base URL required"))
	}
	if llm.MaxTokens < 1 {
		return NewValidationError("llm", "provider", "max_tokens", fmt.Errorf("must be at least 1"))
	}
	if llm.Temperature < 0 || llm.Temperature > 2 {
		return NewValidationError("llm", "provider", "temperature", fmt.Errorf("must be within [0, 2]"))
	}

	// The API key is checked here, before any client exists, so an unset
	// credential aborts startup with zero network calls attempted.
	if llm.APIKey() == "" {
		return NewValidationError("llm", "provider", "api_key_env",
			fmt.Errorf("%w: environment variable %s is empty", ErrMissingAPIKey, llm.APIKeyEnv))
	}

	return nil
}

func (v *ConfigValidator) validateWorkflows() error {
	for name, wf := range v.cfg.WorkflowRegistry.GetAll() {
		kind := wf.Kind
		if kind == "" {
			kind = WorkflowKindPipeline
		}
		if !kind.IsValid() {
			return NewValidationError("workflow", name, "kind", fmt.Errorf("invalid kind: %s", wf.Kind))
		}

		switch kind {
		case WorkflowKindPipeline:
			if err := v.validatePipeline(name, wf); err != nil {
				return err
			}
		case WorkflowKindCrew:
			if err := v.validateCrew(name, wf); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validatePipeline(name string, wf *WorkflowConfig) error {
	if len(wf.Phases) == 0 {
		return NewValidationError("workflow", name, "phases", fmt.Errorf("at least one phase required"))
	}

	seen := make(map[string]bool, len(wf.Phases))
	for i, phase := range wf.Phases {
		phaseRef := fmt.Sprintf("workflow '%s' phase %d", name, i)

		if phase.Name == "" {
			return fmt.Errorf("%s: phase name required", phaseRef)
		}
		if seen[phase.Name] {
			return fmt.Errorf("%s: duplicate phase name '%s'", phaseRef, phase.Name)
		}
		seen[phase.Name] = true

		if phase.Role == "" {
			return fmt.Errorf("%s: role required", phaseRef)
		}
		if phase.Temperature != nil && (*phase.Temperature < 0 || *phase.Temperature > 2) {
			return fmt.Errorf("%s: temperature must be within [0, 2]", phaseRef)
		}

		// A phase without an instruction template is allowed: it runs
		// with the generic fallback. Surface that loudly now instead of
		// silently at run time.
		if _, ok := v.cfg.Instructions[phase.Name]; !ok {
			slog.Warn("Phase has no instruction template, will use generic fallback",
				"workflow", name,
				"phase", phase.Name,
				"fallback", FallbackInstruction)
		}
	}

	return nil
}

func (v *ConfigValidator) validateCrew(name string, wf *WorkflowConfig) error {
	if len(wf.Agents) == 0 {
		return NewValidationError("workflow", name, "agents", fmt.Errorf("at least one agent required"))
	}
	if len(wf.Tasks) == 0 {
		return NewValidationError("workflow", name, "tasks", fmt.Errorf("at least one task required"))
	}
	if wf.Process != "" && !wf.Process.IsValid() {
		return NewValidationError("workflow", name, "process", fmt.Errorf("invalid process: %s", wf.Process))
	}

	agents := make(map[string]bool, len(wf.Agents))
	for i, agent := range wf.Agents {
		agentRef := fmt.Sprintf("workflow '%s' agent %d", name, i)

		if agent.Name == "" {
			return fmt.Errorf("%s: agent name required", agentRef)
		}
		if agents[agent.Name] {
			return fmt.Errorf("%s: duplicate agent name '%s'", agentRef, agent.Name)
		}
		agents[agent.Name] = true

		if agent.Role == "" {
			return fmt.Errorf("%s: role required", agentRef)
		}
		if agent.Goal == "" {
			return fmt.Errorf("%s: goal required", agentRef)
		}
	}

	for i, task := range wf.Tasks {
		taskRef := fmt.Sprintf("workflow '%s' task %d", name, i)

		if task.Agent == "" {
			return fmt.Errorf("%s: agent reference required", taskRef)
		}
		if !agents[task.Agent] {
			return fmt.Errorf("%s: agent '%s' not found", taskRef, task.Agent)
		}
		if task.Description == "" {
			return fmt.Errorf("%s: description required", taskRef)
		}
	}

	return nil
}
