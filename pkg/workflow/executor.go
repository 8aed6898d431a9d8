package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draftforge/draftforge/pkg/config"
	"github.com/draftforge/draftforge/pkg/llm"
)

// Executor runs a single phase: it builds the prompt from the phase
// descriptor and the accumulated state, issues exactly one completion
// call, and returns the text. Stateless between calls; all run state
// lives in the State passed in.
type Executor struct {
	client llm.Client
	cfg    *config.Config
	topic  string
}

// NewExecutor creates a phase executor bound to one run's topic.
func NewExecutor(client llm.Client, cfg *config.Config, topic string) *Executor {
	return &Executor{
		client: client,
		cfg:    cfg,
		topic:  topic,
	}
}

// Topic returns the topic this executor was bound to.
func (e *Executor) Topic() string {
	return e.topic
}

// ExecutePhase builds the phase's prompt from the prior outputs and sends
// one synchronous completion request. The prompt context contains the
// outputs of all and only phases executed strictly before this one, in
// execution order.
func (e *Executor) ExecutePhase(ctx context.Context, phase config.PhaseConfig, state *State) (string, error) {
	instruction := e.cfg.InstructionFor(phase.Name)
	contextBlock := ContextBlock(state)

	temperature := e.cfg.LLM.Temperature
	if phase.Temperature != nil {
		temperature = *phase.Temperature
	}

	if e.cfg.LLM.Verbose {
		slog.Info("Context passed to phase",
			"phase", phase.Name,
			"context", contextBlock)
	}

	resp, err := e.client.Complete(ctx, llm.Request{
		Model:       e.cfg.LLM.Model,
		Temperature: temperature,
		MaxTokens:   e.cfg.LLM.MaxTokens,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt(phase.Role, phase.Instructions, e.topic)},
			{Role: llm.RoleUser, Content: UserPrompt(contextBlock, instruction)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("phase %q completion failed: %w", phase.Name, err)
	}

	slog.Info("Phase completed",
		"phase", phase.Name,
		"prompt_tokens", resp.PromptTokens,
		"completion_tokens", resp.CompletionTokens)

	return resp.Content, nil
}
