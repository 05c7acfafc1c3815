// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

// Package pipeline provides the core pipeline engine for add-to-project.
// It defines the Step interface and Context structure used by all pipeline steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/similigh/add-to-project/internal/core/config"
	"github.com/similigh/add-to-project/internal/project"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., label filter mismatch).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Item kinds.
const (
	KindIssue       = "issue"
	KindPullRequest = "pull_request"
)

// Item is the issue or pull request that triggered the run.
type Item struct {
	Kind        string   `json:"kind"`
	Number      int      `json:"number"`
	NodeID      string   `json:"node_id"`
	URL         string   `json:"url"`
	Labels      []string `json:"labels"`
	Owner       string   `json:"owner"` // login of the repository owner
	Repo        string   `json:"repo"`
	EventName   string   `json:"event_name,omitempty"`
	EventAction string   `json:"event_action,omitempty"`
}

// Project is a project reference whose node ID has been looked up.
type Project struct {
	Ref project.Ref
	ID  string
}

// Result holds the accumulated results from pipeline execution.
type Result struct {
	ItemNumber    int    `json:"item_number"`
	Skipped       bool   `json:"skipped"`
	SkipReason    string `json:"skip_reason,omitempty"`
	ProjectID     string `json:"project_id,omitempty"`
	ItemID        string `json:"item_id,omitempty"`
	Draft         bool   `json:"draft"`
	StatusApplied string `json:"status_applied,omitempty"`
	OutputWritten bool   `json:"output_written"`
	DryRun        bool   `json:"dry_run,omitempty"`
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Item is the issue or pull request being processed.
	Item *Item

	// Config is the loaded configuration.
	Config *config.Config

	// Result accumulates the processing results.
	Result *Result

	// Project is set once the project URL has been resolved to a node ID.
	Project *Project
}

// NewContext creates a new pipeline context for an item.
func NewContext(ctx context.Context, item *Item, cfg *config.Config) *Context {
	return &Context{
		Ctx:    ctx,
		Item:   item,
		Config: cfg,
		Result: &Result{ItemNumber: item.Number},
	}
}

// Skip marks the result as skipped and returns ErrSkipPipeline.
func (c *Context) Skip(reason string) error {
	c.Result.Skipped = true
	c.Result.SkipReason = reason
	return ErrSkipPipeline
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful).
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
