// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package steps

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/similigh/add-to-project/internal/core/config"
	"github.com/similigh/add-to-project/internal/core/pipeline"
)

// ErrInvalidStatusOverride is returned when no status option matches the override.
var ErrInvalidStatusOverride = errors.New("invalid status override")

// StatusOverride sets the status field of the freshly added item.
//
// It runs after item_adder and is not transactional with it: if the update
// fails, the item stays on the project with its default status and the run
// fails.
type StatusOverride struct {
	projects pipeline.ProjectsAPI
	dryRun   bool
}

// NewStatusOverride creates a new status override step.
func NewStatusOverride(deps *pipeline.Dependencies) *StatusOverride {
	return &StatusOverride{
		projects: deps.Projects,
		dryRun:   deps.DryRun,
	}
}

// Name returns the step name.
func (s *StatusOverride) Name() string {
	return "status_override"
}

// Run resolves the override to an option ID and updates the item.
func (s *StatusOverride) Run(ctx *pipeline.Context) error {
	override := ctx.Config.StatusOverride
	if override == "" {
		log.Printf("[status_override] No status override configured")
		return nil
	}

	if ctx.Project == nil || ctx.Project.ID == "" {
		return errProjectNotResolved
	}
	if ctx.Result.ItemID == "" && !s.dryRun {
		return fmt.Errorf("no project item to update; item_adder must run first")
	}
	if s.projects == nil {
		return fmt.Errorf("projects client not configured")
	}

	fieldName := ctx.Config.StatusField
	if fieldName == "" {
		fieldName = config.DefaultStatusField
	}

	field, err := s.projects.GetSingleSelectField(ctx.Ctx, ctx.Project.ID, fieldName)
	if err != nil {
		return fmt.Errorf("failed to fetch %s field: %w", fieldName, err)
	}

	option, ok := field.FindOption(override)
	if !ok {
		available := "none"
		if names := field.OptionNames(); len(names) > 0 {
			available = strings.Join(names, ", ")
		}
		return fmt.Errorf("%w: %q (available %s options: %s)", ErrInvalidStatusOverride, override, fieldName, available)
	}

	if s.dryRun {
		log.Printf("[status_override] DRY RUN: Would set %s to %q (option %s)", fieldName, option.Name, option.ID)
		return nil
	}

	if err := s.projects.UpdateSingleSelectValue(ctx.Ctx, ctx.Project.ID, ctx.Result.ItemID, field.ID, option.ID); err != nil {
		return fmt.Errorf("failed to update %s: %w", fieldName, err)
	}

	ctx.Result.StatusApplied = option.Name
	log.Printf("[status_override] Set %s of item %s to %q", fieldName, ctx.Result.ItemID, option.Name)
	return nil
}
