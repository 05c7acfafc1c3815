// Package pipeline provides step registration and preset workflow building.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/similigh/add-to-project/internal/integrations/github"
	"github.com/similigh/add-to-project/internal/project"
)

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
// It receives dependencies (like clients, config) as parameters.
type StepFactory func(deps *Dependencies) (Step, error)

// ProjectsAPI is the set of GraphQL operations the steps rely on.
type ProjectsAPI interface {
	GetProjectID(ctx context.Context, ref project.Ref) (string, error)
	AddProjectItemByID(ctx context.Context, projectID, contentID string) (string, error)
	AddProjectDraftIssue(ctx context.Context, projectID, title string) (string, error)
	GetSingleSelectField(ctx context.Context, projectID, name string) (*github.SingleSelectField, error)
	UpdateSingleSelectValue(ctx context.Context, projectID, itemID, fieldID, optionID string) error
}

// IssuesAPI looks up issue metadata missing from the event payload.
type IssuesAPI interface {
	GetIssueNodeID(ctx context.Context, owner, repo string, number int) (string, error)
}

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	// Projects issues the project queries and mutations.
	Projects ProjectsAPI

	// Issues backfills node IDs through the REST API. May be nil.
	Issues IssuesAPI

	// DryRun logs mutations instead of issuing them.
	DryRun bool

	// OutputPath is the step output file (GITHUB_OUTPUT). Empty means Stdout.
	OutputPath string

	// Stdout receives outputs when OutputPath is empty.
	Stdout io.Writer
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// add-to-project: filter, add the item, optionally set its status, publish itemId
	"add-to-project": {
		"label_filter",
		"project_resolver",
		"item_adder",
		"status_override",
		"output_writer",
	},

	// validate: check the filter and that the project resolves, no mutations
	"validate": {
		"label_filter",
		"project_resolver",
	},
}

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}

// ErrUnknownWorkflow is returned for a workflow name with no preset.
var ErrUnknownWorkflow = errors.New("unknown workflow")

// ResolveSteps determines the steps to use based on config.
// Priority: explicit steps > workflow preset > default
func ResolveSteps(explicitSteps []string, workflow string) ([]string, error) {
	if len(explicitSteps) > 0 {
		return explicitSteps, nil
	}
	if workflow == "" {
		return Presets["add-to-project"], nil
	}
	preset, ok := GetPreset(workflow)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownWorkflow, workflow)
	}
	return preset, nil
}
