// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package steps

import (
	"errors"
	"fmt"
	"log"

	"github.com/similigh/add-to-project/internal/core/pipeline"
)

// errProjectNotResolved is returned by mutating steps that run before project_resolver.
var errProjectNotResolved = errors.New("project identity not resolved; project_resolver must run first")

// ItemAdder attaches the item to the project, or creates a draft issue
// pointing at it when the item lives under a different owner.
type ItemAdder struct {
	projects pipeline.ProjectsAPI
	issues   pipeline.IssuesAPI
	dryRun   bool
}

// NewItemAdder creates a new item adder step.
func NewItemAdder(deps *pipeline.Dependencies) *ItemAdder {
	return &ItemAdder{
		projects: deps.Projects,
		issues:   deps.Issues,
		dryRun:   deps.DryRun,
	}
}

// Name returns the step name.
func (s *ItemAdder) Name() string {
	return "item_adder"
}

// Run adds the item and records its project item ID in ctx.Result.ItemID.
func (s *ItemAdder) Run(ctx *pipeline.Context) error {
	if ctx.Project == nil || ctx.Project.ID == "" {
		return errProjectNotResolved
	}
	if s.projects == nil {
		return fmt.Errorf("projects client not configured")
	}

	projectOwner := ctx.Project.Ref.Owner
	if projectOwner == "" {
		return fmt.Errorf("project owner name is missing")
	}

	// Owner logins are compared exactly as the API reports them.
	if ctx.Item.Owner == projectOwner {
		return s.addExisting(ctx)
	}
	return s.addDraft(ctx)
}

func (s *ItemAdder) addExisting(ctx *pipeline.Context) error {
	log.Printf("[item_adder] Creating project item for %s #%d", ctx.Item.Kind, ctx.Item.Number)

	contentID, err := s.contentID(ctx)
	if err != nil {
		return err
	}

	if s.dryRun {
		log.Printf("[item_adder] DRY RUN: Would add content %s to project %s", contentID, ctx.Project.ID)
		ctx.Result.DryRun = true
		return nil
	}

	itemID, err := s.projects.AddProjectItemByID(ctx.Ctx, ctx.Project.ID, contentID)
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	ctx.Result.ItemID = itemID
	log.Printf("[item_adder] Added item %s", itemID)
	return nil
}

func (s *ItemAdder) addDraft(ctx *pipeline.Context) error {
	log.Printf("[item_adder] %s #%d belongs to %q, not project owner %q; creating draft issue",
		ctx.Item.Kind, ctx.Item.Number, ctx.Item.Owner, ctx.Project.Ref.Owner)

	// A draft cannot reference the original item, so its URL becomes the title.
	title := ctx.Item.URL
	if title == "" {
		return fmt.Errorf("cannot create draft issue: %s #%d has no URL", ctx.Item.Kind, ctx.Item.Number)
	}
	ctx.Result.Draft = true

	if s.dryRun {
		log.Printf("[item_adder] DRY RUN: Would create draft issue %q in project %s", title, ctx.Project.ID)
		ctx.Result.DryRun = true
		return nil
	}

	itemID, err := s.projects.AddProjectDraftIssue(ctx.Ctx, ctx.Project.ID, title)
	if err != nil {
		return fmt.Errorf("failed to create draft issue: %w", err)
	}

	ctx.Result.ItemID = itemID
	log.Printf("[item_adder] Added draft item %s", itemID)
	return nil
}

// contentID returns the item's node ID, fetching it over REST when the
// event payload did not carry one.
func (s *ItemAdder) contentID(ctx *pipeline.Context) (string, error) {
	if ctx.Item.NodeID != "" {
		return ctx.Item.NodeID, nil
	}
	if s.issues == nil || ctx.Item.Repo == "" {
		return "", fmt.Errorf("%s #%d has no node ID", ctx.Item.Kind, ctx.Item.Number)
	}

	log.Printf("[item_adder] Event payload has no node ID, fetching %s/%s#%d", ctx.Item.Owner, ctx.Item.Repo, ctx.Item.Number)
	id, err := s.issues.GetIssueNodeID(ctx.Ctx, ctx.Item.Owner, ctx.Item.Repo, ctx.Item.Number)
	if err != nil {
		return "", fmt.Errorf("failed to fetch node ID: %w", err)
	}
	ctx.Item.NodeID = id
	return id, nil
}
