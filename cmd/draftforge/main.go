// DraftForge runs a configured workflow (phase pipeline or agent crew)
// against a chat-completion endpoint and writes the flat report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/draftforge/draftforge/pkg/config"
	"github.com/draftforge/draftforge/pkg/crew"
	"github.com/draftforge/draftforge/pkg/llm"
	"github.com/draftforge/draftforge/pkg/report"
	"github.com/draftforge/draftforge/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags; remaining arguments override the topic
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	workflowName := flag.String("workflow", config.BuiltinWorkflowOutline,
		"Workflow to run (e.g. outline, conference)")
	outPath := flag.String("out", "",
		"Report output path (default <workflow>-report.txt)")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting DraftForge",
		"workflow", *workflowName,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration (fatal if the API key is unset; no
	// network call is ever attempted with a missing credential)
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Resolve the workflow and topic
	wf, err := cfg.GetWorkflow(*workflowName)
	if err != nil {
		slog.Error("Unknown workflow", "workflow", *workflowName, "error", err)
		os.Exit(1)
	}

	topic := wf.DefaultTopic
	if args := flag.Args(); len(args) > 0 {
		topic = strings.Join(args, " ")
	}

	// 3. Create the LLM client
	client, err := llm.NewHTTPClient(cfg.LLM.BaseURL, cfg.LLM.APIKey(), cfg.LLM.Timeout)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "base_url", cfg.LLM.BaseURL, "model", cfg.LLM.Model)

	// 4. Run the workflow
	var state *workflow.State
	switch wf.Kind {
	case config.WorkflowKindCrew:
		c, err := crew.NewFromConfig(wf, cfg, client, topic)
		if err != nil {
			slog.Error("Failed to build crew", "workflow", *workflowName, "error", err)
			os.Exit(1)
		}
		state, err = c.Kickoff(ctx)
		if err != nil {
			slog.Error("Crew run failed", "workflow", *workflowName, "error", err)
			os.Exit(1)
		}
	default:
		executor := workflow.NewExecutor(client, cfg, topic)
		runner := workflow.NewRunner(executor, wf.Phases)
		state, err = runner.Run(ctx)
		if err != nil {
			slog.Error("Pipeline run failed", "workflow", *workflowName, "error", err)
			os.Exit(1)
		}
	}

	// 5. Write the report (the sole persisted artifact)
	title := wf.ReportTitle
	if title == "" {
		title = fmt.Sprintf("DraftForge - %s", *workflowName)
	}
	path := *outPath
	if path == "" {
		path = fmt.Sprintf("%s-report.txt", *workflowName)
	}

	rep := report.New(title, topic, cfg.LLM.Model, state)
	if err := rep.Write(path); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		os.Exit(1)
	}

	slog.Info("Run complete", "workflow", *workflowName, "report", path)
}
