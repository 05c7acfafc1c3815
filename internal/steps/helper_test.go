package steps

import (
	"context"

	"github.com/similigh/add-to-project/internal/core/config"
	"github.com/similigh/add-to-project/internal/core/pipeline"
	"github.com/similigh/add-to-project/internal/integrations/github"
	"github.com/similigh/add-to-project/internal/project"
)

// fakeProjects records calls and returns canned responses.
type fakeProjects struct {
	projectID string
	field     *github.SingleSelectField
	err       error

	lookups  []project.Ref
	added    []string // content IDs
	drafts   []string // titles
	updates  []string // option IDs
	fieldReq []string // field names
}

func (f *fakeProjects) GetProjectID(_ context.Context, ref project.Ref) (string, error) {
	f.lookups = append(f.lookups, ref)
	if f.err != nil {
		return "", f.err
	}
	return f.projectID, nil
}

func (f *fakeProjects) AddProjectItemByID(_ context.Context, _, contentID string) (string, error) {
	f.added = append(f.added, contentID)
	if f.err != nil {
		return "", f.err
	}
	return "PVTI_existing", nil
}

func (f *fakeProjects) AddProjectDraftIssue(_ context.Context, _, title string) (string, error) {
	f.drafts = append(f.drafts, title)
	if f.err != nil {
		return "", f.err
	}
	return "PVTI_draft", nil
}

func (f *fakeProjects) GetSingleSelectField(_ context.Context, _, name string) (*github.SingleSelectField, error) {
	f.fieldReq = append(f.fieldReq, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.field, nil
}

func (f *fakeProjects) UpdateSingleSelectValue(_ context.Context, _, _, _, optionID string) error {
	f.updates = append(f.updates, optionID)
	return f.err
}

func (f *fakeProjects) mutations() int {
	return len(f.added) + len(f.drafts) + len(f.updates)
}

type fakeIssues struct {
	nodeID string
	calls  int
}

func (f *fakeIssues) GetIssueNodeID(context.Context, string, string, int) (string, error) {
	f.calls++
	return f.nodeID, nil
}

func statusField() *github.SingleSelectField {
	return &github.SingleSelectField{
		ID:   "PVTSSF_status",
		Name: "Status",
		Options: []github.SingleSelectOption{
			{ID: "opt_todo", Name: "Todo"},
			{ID: "opt_progress", Name: "In Progress"},
			{ID: "opt_done", Name: "Done"},
		},
	}
}

func newItem(owner string, labels ...string) *pipeline.Item {
	return &pipeline.Item{
		Kind:   pipeline.KindIssue,
		Number: 3,
		NodeID: "I_node3",
		URL:    "https://github.com/" + owner + "/widgets/issues/3",
		Labels: labels,
		Owner:  owner,
		Repo:   "widgets",
	}
}

func newCtx(item *pipeline.Item, cfg *config.Config) *pipeline.Context {
	return pipeline.NewContext(context.Background(), item, cfg)
}

func resolvedCtx(item *pipeline.Item, cfg *config.Config) *pipeline.Context {
	ctx := newCtx(item, cfg)
	ctx.Project = &pipeline.Project{
		Ref: project.Ref{OwnerType: project.OwnerTypeOrganization, Owner: "acme", Number: 7},
		ID:  "PVT_acme7",
	}
	return ctx
}
