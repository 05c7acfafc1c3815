// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/add-to-project/internal/core/pipeline"
)

// ErrUnsupportedEvent is returned for payloads that carry no issue or pull request.
var ErrUnsupportedEvent = errors.New("unsupported event")

var supportedEvents = map[string]bool{
	"issues":                      true,
	"issue_comment":               true,
	"pull_request":                true,
	"pull_request_target":         true,
	"pull_request_review":         true,
	"pull_request_review_comment": true,
}

// loadItem reads the event payload at path and extracts the triggering item.
func loadItem(path, eventName string) (*pipeline.Item, error) {
	if path == "" {
		return nil, fmt.Errorf("no event payload: set GITHUB_EVENT_PATH or pass --event")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	return itemFromEvent(eventName, data)
}

// itemFromEvent decodes a webhook payload. When eventName is empty it is
// guessed from the payload's top-level keys.
func itemFromEvent(eventName string, payload []byte) (*pipeline.Item, error) {
	eventName = strings.TrimSpace(eventName)
	if eventName == "" {
		eventName = sniffEventName(payload)
	}
	if !supportedEvents[eventName] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, eventName)
	}

	event, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s payload: %w", eventName, err)
	}

	var (
		item   *pipeline.Item
		repo   *github.Repository
		action string
	)

	switch e := event.(type) {
	case *github.IssuesEvent:
		item, repo, action = itemFromIssue(e.GetIssue()), e.GetRepo(), e.GetAction()
	case *github.IssueCommentEvent:
		item, repo, action = itemFromIssue(e.GetIssue()), e.GetRepo(), e.GetAction()
	case *github.PullRequestEvent:
		item, repo, action = itemFromPullRequest(e.GetPullRequest()), e.GetRepo(), e.GetAction()
	case *github.PullRequestTargetEvent:
		item, repo, action = itemFromPullRequest(e.GetPullRequest()), e.GetRepo(), e.GetAction()
	case *github.PullRequestReviewEvent:
		item, repo, action = itemFromPullRequest(e.GetPullRequest()), e.GetRepo(), e.GetAction()
	case *github.PullRequestReviewCommentEvent:
		item, repo, action = itemFromPullRequest(e.GetPullRequest()), e.GetRepo(), e.GetAction()
	}

	if item == nil {
		return nil, fmt.Errorf("%w: %s payload has no issue or pull request", ErrUnsupportedEvent, eventName)
	}

	item.Owner = repo.GetOwner().GetLogin()
	item.Repo = repo.GetName()
	item.EventName = eventName
	item.EventAction = action
	return item, nil
}

func itemFromIssue(issue *github.Issue) *pipeline.Item {
	if issue == nil {
		return nil
	}

	kind := pipeline.KindIssue
	if issue.IsPullRequest() {
		kind = pipeline.KindPullRequest
	}

	return &pipeline.Item{
		Kind:   kind,
		Number: issue.GetNumber(),
		NodeID: issue.GetNodeID(),
		URL:    issue.GetHTMLURL(),
		Labels: labelNames(issue.Labels),
	}
}

func itemFromPullRequest(pr *github.PullRequest) *pipeline.Item {
	if pr == nil {
		return nil
	}

	return &pipeline.Item{
		Kind:   pipeline.KindPullRequest,
		Number: pr.GetNumber(),
		NodeID: pr.GetNodeID(),
		URL:    pr.GetHTMLURL(),
		Labels: labelNames(pr.Labels),
	}
}

func labelNames(labels []*github.Label) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if name := l.GetName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func sniffEventName(payload []byte) string {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		return ""
	}

	switch {
	case keys["pull_request"] != nil && keys["review"] != nil:
		return "pull_request_review"
	case keys["pull_request"] != nil && keys["comment"] != nil:
		return "pull_request_review_comment"
	case keys["pull_request"] != nil:
		return "pull_request"
	case keys["issue"] != nil && keys["comment"] != nil:
		return "issue_comment"
	case keys["issue"] != nil:
		return "issues"
	default:
		return ""
	}
}
