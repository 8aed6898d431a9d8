package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DraftForgeYAMLConfig represents the complete draftforge.yaml file structure
type DraftForgeYAMLConfig struct {
	Workflows    map[string]WorkflowConfig `yaml:"workflows"`
	Instructions map[string]string         `yaml:"instructions"`
	LLM          *LLMYAMLConfig            `yaml:"llm"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load draftforge.yaml from configDir (optional; built-ins alone are a
//     complete configuration)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined workflows and instructions
//  5. Resolve LLM configuration from YAML and environment
//  6. Validate all configuration (missing API key is fatal here, before
//     any client is constructed)
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"workflows", stats.Workflows,
		"instructions", stats.Instructions,
		"model", cfg.LLM.Model)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	userConfig, err := loader.loadDraftForgeYAML()
	if err != nil {
		return nil, NewLoadError("draftforge.yaml", err)
	}

	builtin := GetBuiltinConfig()

	// Merge built-in + user-defined components (user overrides built-in)
	workflows, err := mergeWorkflows(builtin.Workflows, userConfig.Workflows)
	if err != nil {
		return nil, err
	}
	instructions := mergeInstructions(builtin.Instructions, userConfig.Instructions)

	return &Config{
		configDir:        configDir,
		LLM:              resolveLLMConfig(userConfig.LLM),
		WorkflowRegistry: NewWorkflowRegistry(workflows),
		Instructions:     instructions,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) (bool, error) {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return true, nil
}

// loadDraftForgeYAML loads the optional user configuration file. A missing
// file is not an error: the built-in workflows are a complete setup and
// the reference deployment runs without any YAML at all.
func (l *configLoader) loadDraftForgeYAML() (*DraftForgeYAMLConfig, error) {
	var config DraftForgeYAMLConfig

	// Initialize maps to avoid nil maps
	config.Workflows = make(map[string]WorkflowConfig)
	config.Instructions = make(map[string]string)

	found, err := l.loadYAML("draftforge.yaml", &config)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Info("No draftforge.yaml found, using built-in configuration",
			"config_dir", l.configDir)
	}

	return &config, nil
}
