package config

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeWorkflows merges built-in and user-defined workflow configurations.
// A user workflow with a built-in name is merged field-by-field over the
// built-in (non-zero user values win), so a YAML override of just
// default_topic keeps the built-in phases. New names are added as-is.
func mergeWorkflows(builtinWorkflows map[string]WorkflowConfig, userWorkflows map[string]WorkflowConfig) (map[string]*WorkflowConfig, error) {
	result := make(map[string]*WorkflowConfig)

	// First, add built-in workflows
	for name, wf := range builtinWorkflows {
		wfCopy := wf
		result[name] = &wfCopy
	}

	// Then, merge user-defined workflows over built-ins (or add new ones)
	for name, userWf := range userWorkflows {
		base, exists := result[name]
		if !exists {
			wfCopy := userWf
			result[name] = &wfCopy
			continue
		}
		if err := mergo.Merge(base, userWf, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge workflow %q: %w", name, err)
		}
	}

	return result, nil
}

// mergeInstructions merges built-in and user-defined instruction templates.
// User-defined entries override built-in entries with the same phase name.
func mergeInstructions(builtinInstructions, userInstructions map[string]string) map[string]string {
	result := make(map[string]string, len(builtinInstructions)+len(userInstructions))
	for name, text := range builtinInstructions {
		result[name] = text
	}
	for name, text := range userInstructions {
		result[name] = text
	}
	return result
}
