// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package steps

import (
	"fmt"
	"log"

	"github.com/similigh/add-to-project/internal/core/pipeline"
	"github.com/similigh/add-to-project/internal/project"
)

// ProjectResolver parses the project URL and looks up the project's node ID.
type ProjectResolver struct {
	projects pipeline.ProjectsAPI
}

// NewProjectResolver creates a new project resolver step.
func NewProjectResolver(deps *pipeline.Dependencies) *ProjectResolver {
	return &ProjectResolver{
		projects: deps.Projects,
	}
}

// Name returns the step name.
func (s *ProjectResolver) Name() string {
	return "project_resolver"
}

// Run sets ctx.Project. Later steps refuse to mutate without it.
func (s *ProjectResolver) Run(ctx *pipeline.Context) error {
	ref, err := project.ParseURL(ctx.Config.ProjectURL)
	if err != nil {
		return err
	}
	log.Printf("[project_resolver] Project URL resolved to %s", ref)

	if s.projects == nil {
		return fmt.Errorf("projects client not configured")
	}

	id, err := s.projects.GetProjectID(ctx.Ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to look up project %s: %w", ref, err)
	}

	ctx.Project = &pipeline.Project{Ref: ref, ID: id}
	ctx.Result.ProjectID = id
	log.Printf("[project_resolver] Project ID: %s", id)
	return nil
}
