package steps

import (
	"errors"
	"testing"

	"github.com/similigh/add-to-project/internal/core/config"
	"github.com/similigh/add-to-project/internal/core/pipeline"
)

func TestItemAdderSameOwnerAddsExistingItem(t *testing.T) {
	fake := &fakeProjects{}
	ctx := resolvedCtx(newItem("acme"), config.Default())

	if err := NewItemAdder(&pipeline.Dependencies{Projects: fake}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.added) != 1 || fake.added[0] != "I_node3" {
		t.Fatalf("expected add by content ID I_node3, got %v", fake.added)
	}
	if len(fake.drafts) != 0 {
		t.Fatalf("no draft expected, got %v", fake.drafts)
	}
	if ctx.Result.ItemID != "PVTI_existing" || ctx.Result.Draft {
		t.Fatalf("unexpected result %+v", ctx.Result)
	}
}

func TestItemAdderOtherOwnerCreatesDraft(t *testing.T) {
	fake := &fakeProjects{}
	item := newItem("other-org")
	ctx := resolvedCtx(item, config.Default())

	if err := NewItemAdder(&pipeline.Dependencies{Projects: fake}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.drafts) != 1 || fake.drafts[0] != item.URL {
		t.Fatalf("expected draft titled %q, got %v", item.URL, fake.drafts)
	}
	if len(fake.added) != 0 {
		t.Fatalf("no add by ID expected, got %v", fake.added)
	}
	if ctx.Result.ItemID != "PVTI_draft" || !ctx.Result.Draft {
		t.Fatalf("unexpected result %+v", ctx.Result)
	}
}

func TestItemAdderOwnerMatchIsCaseSensitive(t *testing.T) {
	fake := &fakeProjects{}
	ctx := resolvedCtx(newItem("ACME"), config.Default())

	if err := NewItemAdder(&pipeline.Dependencies{Projects: fake}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.drafts) != 1 {
		t.Fatalf("differently cased owner must route to draft, got drafts=%v added=%v", fake.drafts, fake.added)
	}
}

func TestItemAdderRequiresResolvedProject(t *testing.T) {
	fake := &fakeProjects{}
	ctx := newCtx(newItem("acme"), config.Default())

	err := NewItemAdder(&pipeline.Dependencies{Projects: fake}).Run(ctx)
	if !errors.Is(err, errProjectNotResolved) {
		t.Fatalf("expected errProjectNotResolved, got %v", err)
	}
	if fake.mutations() != 0 {
		t.Fatal("no mutation may be issued without a project ID")
	}
}

func TestItemAdderBackfillsNodeID(t *testing.T) {
	fake := &fakeProjects{}
	issues := &fakeIssues{nodeID: "I_fetched"}
	item := newItem("acme")
	item.NodeID = ""
	ctx := resolvedCtx(item, config.Default())

	if err := NewItemAdder(&pipeline.Dependencies{Projects: fake, Issues: issues}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issues.calls != 1 {
		t.Fatalf("expected one REST lookup, got %d", issues.calls)
	}
	if len(fake.added) != 1 || fake.added[0] != "I_fetched" {
		t.Fatalf("expected fetched node ID to be used, got %v", fake.added)
	}
}

func TestItemAdderMissingNodeIDWithoutREST(t *testing.T) {
	fake := &fakeProjects{}
	item := newItem("acme")
	item.NodeID = ""
	ctx := resolvedCtx(item, config.Default())

	if err := NewItemAdder(&pipeline.Dependencies{Projects: fake}).Run(ctx); err == nil {
		t.Fatal("expected error when node ID cannot be determined")
	}
	if fake.mutations() != 0 {
		t.Fatal("no mutation expected")
	}
}

func TestItemAdderDryRun(t *testing.T) {
	fake := &fakeProjects{}
	ctx := resolvedCtx(newItem("other-org"), config.Default())

	if err := NewItemAdder(&pipeline.Dependencies{Projects: fake, DryRun: true}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.mutations() != 0 {
		t.Fatal("dry run must not mutate")
	}
	if ctx.Result.ItemID != "" || !ctx.Result.Draft || !ctx.Result.DryRun {
		t.Fatalf("unexpected result %+v", ctx.Result)
	}
}

func TestItemAdderPropagatesMutationError(t *testing.T) {
	boom := errors.New("boom")
	ctx := resolvedCtx(newItem("acme"), config.Default())

	err := NewItemAdder(&pipeline.Dependencies{Projects: &fakeProjects{err: boom}}).Run(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if ctx.Result.ItemID != "" {
		t.Fatal("item ID must stay empty on failure")
	}
}
