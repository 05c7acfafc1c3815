// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package github

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/similigh/add-to-project/internal/project"
)

// SingleSelectOption is one named choice of a single-select field.
type SingleSelectOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SingleSelectField is a project field together with its options, in the
// order the API returns them. Options is empty for other field types.
type SingleSelectField struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Options []SingleSelectOption `json:"options"`
}

// FindOption returns the option whose name equals name exactly.
func (f *SingleSelectField) FindOption(name string) (SingleSelectOption, bool) {
	for _, opt := range f.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return SingleSelectOption{}, false
}

// OptionNames lists option names in API order.
func (f *SingleSelectField) OptionNames() []string {
	names := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		names = append(names, opt.Name)
	}
	return names
}

// GetProjectID fetches the node ID of a project. The owner type selects the
// query root (organization or user) and the key the response is read from.
func (c *GraphQLClient) GetProjectID(ctx context.Context, ref project.Ref) (string, error) {
	root := ref.OwnerType.QueryRoot()
	if root == "" {
		return "", fmt.Errorf("%w: %v", project.ErrUnsupportedOwnerType, ref.OwnerType)
	}

	query := fmt.Sprintf(`
		query($owner: String!, $number: Int!) {
			%s(login: $owner) {
				projectV2(number: $number) {
					id
				}
			}
		}
	`, root)
	variables := map[string]interface{}{
		"owner":  ref.Owner,
		"number": ref.Number,
	}

	data, err := c.execute(ctx, query, variables)
	if err != nil {
		return "", err
	}

	var result map[string]*struct {
		ProjectV2 *struct {
			ID string `json:"id"`
		} `json:"projectV2"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to parse project ID: %w", err)
	}

	owner := result[root]
	if owner == nil || owner.ProjectV2 == nil || owner.ProjectV2.ID == "" {
		return "", fmt.Errorf("%w: project %s", ErrNotFound, ref)
	}

	return owner.ProjectV2.ID, nil
}

// AddProjectItemByID adds an existing issue or pull request to a project and
// returns the new project item ID.
func (c *GraphQLClient) AddProjectItemByID(ctx context.Context, projectID, contentID string) (string, error) {
	mutation := `
		mutation($projectId: ID!, $contentId: ID!, $clientMutationId: String) {
			addProjectV2ItemById(input: {projectId: $projectId, contentId: $contentId, clientMutationId: $clientMutationId}) {
				clientMutationId
				item {
					id
				}
			}
		}
	`
	mutationID := uuid.NewString()
	variables := map[string]interface{}{
		"projectId":        projectID,
		"contentId":        contentID,
		"clientMutationId": mutationID,
	}

	data, err := c.execute(ctx, mutation, variables)
	if err != nil {
		return "", err
	}

	var result struct {
		AddProjectV2ItemByID struct {
			ClientMutationID string `json:"clientMutationId"`
			Item             struct {
				ID string `json:"id"`
			} `json:"item"`
		} `json:"addProjectV2ItemById"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to parse add item result: %w", err)
	}

	payload := result.AddProjectV2ItemByID
	if err := checkMutationID(mutationID, payload.ClientMutationID); err != nil {
		return "", err
	}
	if payload.Item.ID == "" {
		return "", fmt.Errorf("add item failed: empty item ID returned")
	}

	return payload.Item.ID, nil
}

// AddProjectDraftIssue creates a draft issue in a project and returns the
// new project item ID.
func (c *GraphQLClient) AddProjectDraftIssue(ctx context.Context, projectID, title string) (string, error) {
	mutation := `
		mutation($projectId: ID!, $title: String!, $clientMutationId: String) {
			addProjectV2DraftIssue(input: {projectId: $projectId, title: $title, clientMutationId: $clientMutationId}) {
				clientMutationId
				projectItem {
					id
				}
			}
		}
	`
	mutationID := uuid.NewString()
	variables := map[string]interface{}{
		"projectId":        projectID,
		"title":            title,
		"clientMutationId": mutationID,
	}

	data, err := c.execute(ctx, mutation, variables)
	if err != nil {
		return "", err
	}

	var result struct {
		AddProjectV2DraftIssue struct {
			ClientMutationID string `json:"clientMutationId"`
			ProjectItem      struct {
				ID string `json:"id"`
			} `json:"projectItem"`
		} `json:"addProjectV2DraftIssue"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to parse draft issue result: %w", err)
	}

	payload := result.AddProjectV2DraftIssue
	if err := checkMutationID(mutationID, payload.ClientMutationID); err != nil {
		return "", err
	}
	if payload.ProjectItem.ID == "" {
		return "", fmt.Errorf("draft issue creation failed: empty item ID returned")
	}

	return payload.ProjectItem.ID, nil
}

// GetSingleSelectField fetches a project field by name along with its
// options when it is a single-select field.
func (c *GraphQLClient) GetSingleSelectField(ctx context.Context, projectID, name string) (*SingleSelectField, error) {
	query := `
		query($projectId: ID!, $field: String!) {
			node(id: $projectId) {
				... on ProjectV2 {
					field(name: $field) {
						... on ProjectV2FieldCommon {
							id
							name
						}
						... on ProjectV2SingleSelectField {
							options {
								id
								name
							}
						}
					}
				}
			}
		}
	`
	variables := map[string]interface{}{
		"projectId": projectID,
		"field":     name,
	}

	data, err := c.execute(ctx, query, variables)
	if err != nil {
		return nil, err
	}

	var result struct {
		Node *struct {
			Field *SingleSelectField `json:"field"`
		} `json:"node"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse field: %w", err)
	}

	if result.Node == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	if result.Node.Field == nil || result.Node.Field.ID == "" {
		return nil, fmt.Errorf("%w: field %q in project %s", ErrNotFound, name, projectID)
	}

	return result.Node.Field, nil
}

// UpdateSingleSelectValue sets a single-select field of a project item.
func (c *GraphQLClient) UpdateSingleSelectValue(ctx context.Context, projectID, itemID, fieldID, optionID string) error {
	mutation := `
		mutation($projectId: ID!, $itemId: ID!, $fieldId: ID!, $optionId: String!, $clientMutationId: String) {
			updateProjectV2ItemFieldValue(input: {projectId: $projectId, itemId: $itemId, fieldId: $fieldId, value: {singleSelectOptionId: $optionId}, clientMutationId: $clientMutationId}) {
				clientMutationId
				projectV2Item {
					id
				}
			}
		}
	`
	mutationID := uuid.NewString()
	variables := map[string]interface{}{
		"projectId":        projectID,
		"itemId":           itemID,
		"fieldId":          fieldID,
		"optionId":         optionID,
		"clientMutationId": mutationID,
	}

	data, err := c.execute(ctx, mutation, variables)
	if err != nil {
		return err
	}

	var result struct {
		UpdateProjectV2ItemFieldValue struct {
			ClientMutationID string `json:"clientMutationId"`
			ProjectV2Item    struct {
				ID string `json:"id"`
			} `json:"projectV2Item"`
		} `json:"updateProjectV2ItemFieldValue"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to parse field update result: %w", err)
	}

	return checkMutationID(mutationID, result.UpdateProjectV2ItemFieldValue.ClientMutationID)
}

// checkMutationID verifies the server echoed the clientMutationId we sent.
func checkMutationID(sent, got string) error {
	if got != sent {
		return fmt.Errorf("mutation response mismatch: sent clientMutationId %s, got %q", sent, got)
	}
	return nil
}
