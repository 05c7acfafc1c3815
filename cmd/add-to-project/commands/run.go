// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/similigh/add-to-project/internal/core/config"
	"github.com/similigh/add-to-project/internal/core/pipeline"
	"github.com/similigh/add-to-project/internal/integrations/github"
)

var (
	eventFile string
	eventName string
	dryRun    bool
	workflow  string
)

var inputFlagUsage = map[string]string{
	config.InputProjectURL:     "URL of the project, e.g. https://github.com/orgs/acme/projects/7",
	config.InputGitHubToken:    "Token with access to the project (defaults to INPUT_GITHUB-TOKEN or GITHUB_TOKEN)",
	config.InputLabeled:        "Comma-separated labels to filter on",
	config.InputLabelOperator:  "Label operator: and, not or or (default or)",
	config.InputStatusOverride: "Status option to set on the added item",
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Add the triggering issue or pull request to a project",
	Long: `Add the issue or pull request from the workflow event to a project.

The event payload is read from --event or GITHUB_EVENT_PATH. Items from a
repository owned by someone other than the project owner are added as draft
issues titled with the item's URL. The project item ID is written as the
"itemId" output to GITHUB_OUTPUT (or stdout outside Actions).`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAddToProject(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&eventFile, "event", "", "Path to event payload JSON (default: $GITHUB_EVENT_PATH)")
	runCmd.Flags().StringVar(&eventName, "event-name", "", "Event name (default: $GITHUB_EVENT_NAME)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve the project and status option without mutating anything")
	runCmd.Flags().StringVar(&workflow, "workflow", "", "Workflow preset to run (overrides config)")

	addInputFlags(runCmd)
}

// addInputFlags registers one string flag per action input.
func addInputFlags(cmd *cobra.Command) {
	for _, name := range config.Inputs {
		cmd.Flags().String(name, "", inputFlagUsage[name])
	}
}

func runAddToProject(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	item, err := loadItem(firstNonEmpty(eventFile, os.Getenv("GITHUB_EVENT_PATH")), firstNonEmpty(eventName, os.Getenv("GITHUB_EVENT_NAME")))
	if err != nil {
		if errors.Is(err, ErrUnsupportedEvent) {
			log.Printf("[add-to-project] Skipping: %v", err)
			return nil
		}
		return err
	}

	ctx := context.Background()

	// One authenticated client shared by every call in this run.
	httpClient := github.NewHTTPClient(ctx, cfg.GitHubToken)
	deps := &pipeline.Dependencies{
		Projects:   github.NewGraphQLClient(httpClient, cfg.GraphQLURL),
		Issues:     github.NewClient(httpClient),
		DryRun:     dryRun,
		OutputPath: os.Getenv("GITHUB_OUTPUT"),
		Stdout:     cmd.OutOrStdout(),
	}

	stepNames, err := pipeline.ResolveSteps(cfg.Steps, cfg.Workflow)
	if err != nil {
		return err
	}

	pCtx := pipeline.NewContext(ctx, item, cfg)
	pCtx.Result.DryRun = dryRun

	if isCI() {
		return runPlain(cmd.OutOrStdout(), pCtx, deps, stepNames)
	}
	return runInteractive(cmd.OutOrStdout(), pCtx, deps, stepNames)
}

// loadConfig merges defaults, the optional config file, and the action
// inputs (environment and flags), then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	path := config.FindConfigPath(cfgFile)
	if cfgFile != "" && path == "" {
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if verbose {
			log.Printf("[add-to-project] Loaded config from %s", path)
		}
	}

	v := config.NewViper()
	for _, name := range config.Inputs {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	cfg.ApplyInputs(v)

	if workflow != "" {
		cfg.Workflow = workflow
		cfg.Steps = nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// A mistyped preset must fail here, before any client is built.
	if _, err := pipeline.ResolveSteps(cfg.Steps, cfg.Workflow); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isCI reports whether we run on a CI runner, where no TUI is shown.
func isCI() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
