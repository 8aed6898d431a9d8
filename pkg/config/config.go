package config

// Config is the umbrella configuration object returned by Initialize().
// Constructed once at startup and passed by reference to the pipeline
// driver, crew engine, and LLM client; no ambient global state.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Resolved LLM provider configuration
	LLM *LLMConfig

	// Workflow registry (built-ins merged with user YAML)
	WorkflowRegistry *WorkflowRegistry

	// Phase name → user-instruction template
	Instructions map[string]string
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Workflows    int
	Instructions int
}

// Stats returns configuration statistics for logging
func (c *Config) Stats() Stats {
	s := Stats{Instructions: len(c.Instructions)}
	if c.WorkflowRegistry != nil {
		s.Workflows = c.WorkflowRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetWorkflow retrieves a workflow configuration by name.
// This is a convenience method that wraps WorkflowRegistry.Get().
func (c *Config) GetWorkflow(name string) (*WorkflowConfig, error) {
	return c.WorkflowRegistry.Get(name)
}

// InstructionFor returns the user-instruction template for a phase name.
// Unknown names get FallbackInstruction; the load-time validator has
// already logged which phases will take this path.
func (c *Config) InstructionFor(phaseName string) string {
	if text, ok := c.Instructions[phaseName]; ok {
		return text
	}
	return FallbackInstruction
}
