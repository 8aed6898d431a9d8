// Package crew runs role-flavored agents through an ordered task list.
// It is the multi-agent expression of the same chaining pattern the
// pipeline uses: the sequential process hands each task the labeled
// outputs of every task before it.
package crew

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/draftforge/draftforge/pkg/config"
	"github.com/draftforge/draftforge/pkg/llm"
	"github.com/draftforge/draftforge/pkg/workflow"
)

// Agent is a role-flavored participant in a crew.
type Agent struct {
	Name      string
	Role      string
	Goal      string
	Backstory string
}

// Task is one unit of crew work, performed by a named agent.
type Task struct {
	Agent          string
	Description    string
	ExpectedOutput string
}

// Crew executes its task list under the sequential process: tasks run one
// at a time in declared order, each receiving prior task outputs as
// labeled context.
type Crew struct {
	agents map[string]Agent
	tasks  []Task
	client llm.Client
	cfg    *config.Config
}

// NewFromConfig builds a crew from a validated crew workflow configuration,
// substituting the run topic into agent goals and task descriptions.
func NewFromConfig(wf *config.WorkflowConfig, cfg *config.Config, client llm.Client, topic string) (*Crew, error) {
	if wf.Process != "" && wf.Process != config.ProcessSequential {
		return nil, fmt.Errorf("unsupported crew process: %s", wf.Process)
	}

	agents := make(map[string]Agent, len(wf.Agents))
	for _, a := range wf.Agents {
		agents[a.Name] = Agent{
			Name:      a.Name,
			Role:      a.Role,
			Goal:      substituteTopic(a.Goal, topic),
			Backstory: a.Backstory,
		}
	}

	tasks := make([]Task, len(wf.Tasks))
	for i, t := range wf.Tasks {
		if _, ok := agents[t.Agent]; !ok {
			return nil, fmt.Errorf("task %d references unknown agent %q", i, t.Agent)
		}
		tasks[i] = Task{
			Agent:          t.Agent,
			Description:    substituteTopic(t.Description, topic),
			ExpectedOutput: t.ExpectedOutput,
		}
	}

	return &Crew{
		agents: agents,
		tasks:  tasks,
		client: client,
		cfg:    cfg,
	}, nil
}

// Kickoff executes all tasks in order. The returned state holds one entry
// per task, keyed by the performing agent's name, in execution order.
func (c *Crew) Kickoff(ctx context.Context) (*workflow.State, error) {
	state := workflow.NewState()

	for i, task := range c.tasks {
		agent := c.agents[task.Agent]

		slog.Info("Dispatching task",
			"agent", agent.Name,
			"role", agent.Role,
			"task", i+1,
			"total", len(c.tasks))

		resp, err := c.client.Complete(ctx, llm.Request{
			Model:       c.cfg.LLM.Model,
			Temperature: c.cfg.LLM.Temperature,
			MaxTokens:   c.cfg.LLM.MaxTokens,
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: agentSystemPrompt(agent)},
				{Role: llm.RoleUser, Content: taskUserPrompt(task, state)},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("crew aborted at task %d/%d (%s): %w", i+1, len(c.tasks), agent.Name, err)
		}

		state.Append(agent.Name, resp.Content)
	}

	slog.Info("Crew complete", "tasks", state.Len())
	return state, nil
}

// Result returns the final task's output, or empty when nothing ran.
func Result(state *workflow.State) string {
	entries := state.Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].Output
}

// agentSystemPrompt composes the system instruction from the agent's
// role, backstory, and goal.
func agentSystemPrompt(agent Agent) string {
	var sb strings.Builder
	sb.WriteString("You are the ")
	sb.WriteString(agent.Role)
	sb.WriteString(".\n\n")
	if agent.Backstory != "" {
		sb.WriteString(agent.Backstory)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Your goal: ")
	sb.WriteString(agent.Goal)
	return sb.String()
}

// taskUserPrompt carries the prior task outputs as labeled context,
// followed by the task description and the expected output shape.
func taskUserPrompt(task Task, state *workflow.State) string {
	var sb strings.Builder
	sb.WriteString(workflow.ContextBlock(state))
	sb.WriteString("\n\n")
	sb.WriteString(task.Description)
	if task.ExpectedOutput != "" {
		sb.WriteString("\n\nExpected output: ")
		sb.WriteString(task.ExpectedOutput)
	}
	return sb.String()
}

func substituteTopic(text, topic string) string {
	return strings.ReplaceAll(text, config.TopicPlaceholder, topic)
}
