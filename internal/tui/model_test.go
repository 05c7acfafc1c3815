package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/add-to-project/internal/core/pipeline"
)

func TestModelTracksStepStatus(t *testing.T) {
	m := NewModel("Add to Project", []string{"label_filter", "item_adder"}, nil)

	updated, _ := m.Update(PipelineStatusMsg{Step: "label_filter", Status: StatusSuccess, Message: "Completed"})
	m = updated.(Model)
	updated, _ = m.Update(PipelineStatusMsg{Step: "item_adder", Status: StatusStarted, Message: "Starting..."})
	m = updated.(Model)

	if m.status["item_adder"] != StatusStarted {
		t.Fatalf("unexpected status %q", m.status["item_adder"])
	}
	view := m.View()
	if !strings.Contains(view, "Add to Project") || !strings.Contains(view, "✓ label_filter") {
		t.Fatalf("view missing title or finished step:\n%s", view)
	}
	if strings.Contains(view, "Starting...") {
		t.Fatalf("start messages should not be logged:\n%s", view)
	}
}

func TestModelKeepsRecentLogLines(t *testing.T) {
	m := NewModel("Add to Project", []string{"a"}, nil)
	for _, msg := range []string{"one", "two", "three", "four"} {
		updated, _ := m.Update(PipelineStatusMsg{Step: "a", Status: StatusSuccess, Message: msg})
		m = updated.(Model)
	}

	if len(m.logs) != maxLogLines || m.logs[0] != "a: two" {
		t.Fatalf("expected the last %d lines, got %v", maxLogLines, m.logs)
	}
}

func TestModelRecordsStepError(t *testing.T) {
	m := NewModel("Add to Project", []string{"project_resolver"}, nil)

	updated, _ := m.Update(PipelineStatusMsg{Step: "project_resolver", Status: StatusError, Message: "invalid project URL"})
	m = updated.(Model)

	if m.Err() == nil || !strings.Contains(m.Err().Error(), "project_resolver") {
		t.Fatalf("expected step failure to be recorded, got %v", m.Err())
	}
	if strings.Contains(m.View(), "invalid project URL") {
		t.Fatalf("error details must not be shown in the view:\n%s", m.View())
	}
}

func TestModelRelaysResultFromChannel(t *testing.T) {
	ch := make(chan tea.Msg, 2)
	ch <- PipelineStatusMsg{Step: "item_adder", Status: StatusError}
	ch <- ResultMsg{Err: errors.New("boom")}
	close(ch)

	m := NewModel("Add to Project", []string{"item_adder"}, ch)
	for msg := m.waitForActivity()(); msg != nil; msg = m.waitForActivity()() {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	if !strings.Contains(m.View(), "failed at item_adder") {
		t.Fatalf("expected failed step before the result, got %q", m.View())
	}
}

func TestModelOutcome(t *testing.T) {
	tests := []struct {
		name    string
		msg     ResultMsg
		want    string
		notWant string
	}{
		{
			name: "existing item with status",
			msg:  ResultMsg{Result: &pipeline.Result{ItemNumber: 3, ItemID: "PVTI_1", StatusApplied: "Done"}},
			want: `#3 added as existing item PVTI_1, status "Done"`,
		},
		{
			name: "draft",
			msg:  ResultMsg{Result: &pipeline.Result{ItemNumber: 4, ItemID: "PVTI_2", Draft: true}},
			want: "#4 added as draft issue PVTI_2",
		},
		{
			name: "skipped",
			msg:  ResultMsg{Result: &pipeline.Result{ItemNumber: 5, Skipped: true, SkipReason: "does not have one of the labels: bug"}},
			want: "#5 skipped: does not have one of the labels: bug",
		},
		{
			name: "dry run",
			msg:  ResultMsg{Result: &pipeline.Result{ItemNumber: 6, ProjectID: "PVT_1", DryRun: true}},
			want: "Dry run: #6 would be added as existing item to project PVT_1",
		},
		{
			name:    "failure leaves details to the caller",
			msg:     ResultMsg{Result: &pipeline.Result{ItemNumber: 7}, Err: errors.New("step 'item_adder' failed: boom")},
			want:    "Add to Project failed",
			notWant: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel("Add to Project", nil, nil)
			updated, cmd := m.Update(tt.msg)
			m = updated.(Model)

			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatal("expected tea.QuitMsg")
			}

			view := m.View()
			if !strings.Contains(view, tt.want) {
				t.Fatalf("expected %q in final view, got %q", tt.want, view)
			}
			if tt.notWant != "" && strings.Contains(view, tt.notWant) {
				t.Fatalf("final view must not contain %q, got %q", tt.notWant, view)
			}
		})
	}
}

func TestModelStatusChannelClosed(t *testing.T) {
	ch := make(chan tea.Msg)
	close(ch)

	if msg := NewModel("Add to Project", nil, ch).waitForActivity()(); msg != nil {
		t.Fatalf("expected no message on a closed channel, got %#v", msg)
	}
}
