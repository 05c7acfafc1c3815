// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-19

// Package tui renders pipeline progress for interactive runs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/similigh/add-to-project/internal/core/pipeline"
)

// Step statuses reported through PipelineStatusMsg.
const (
	StatusStarted = "started"
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// maxLogLines is how many step messages stay visible under the step list.
const maxLogLines = 3

var (
	accent = lipgloss.Color("#ff7300")
	faint  = lipgloss.Color("#626262")

	titleStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(accent)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
)

// PipelineStatusMsg reports a step transition.
type PipelineStatusMsg struct {
	Step    string
	Status  string
	Message string
}

// ResultMsg ends the view once the pipeline has returned.
type ResultMsg struct {
	Result *pipeline.Result
	Err    error
}

// Model shows one line per step and, once done, what happened to the item.
type Model struct {
	spinner    spinner.Model
	title      string
	steps      []string
	status     map[string]string
	logs       []string
	failedStep string
	result     *pipeline.Result
	runErr     error
	finished   bool
	quitting   bool
	statusChan <-chan tea.Msg
}

// NewModel creates a model for the named steps. statusChan carries
// PipelineStatusMsg values followed by one ResultMsg.
func NewModel(title string, steps []string, statusChan <-chan tea.Msg) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle

	return Model{
		spinner:    s,
		title:      title,
		steps:      steps,
		status:     make(map[string]string),
		statusChan: statusChan,
	}
}

// Err returns the pipeline error, or the first step failure seen.
func (m Model) Err() error {
	if m.runErr != nil {
		return m.runErr
	}
	if m.failedStep != "" {
		return fmt.Errorf("step %s failed", m.failedStep)
	}
	return nil
}

// Result returns the pipeline result delivered with ResultMsg.
func (m Model) Result() *pipeline.Result {
	return m.result
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForActivity())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Closing the view early does not stop the pipeline.
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PipelineStatusMsg:
		m.status[msg.Step] = msg.Status
		if msg.Status == StatusError && m.failedStep == "" {
			m.failedStep = msg.Step
		}
		// Errors are reported by the caller, not repeated here.
		if msg.Message != "" && msg.Status != StatusStarted && msg.Status != StatusError {
			m.logs = append(m.logs, fmt.Sprintf("%s: %s", msg.Step, msg.Message))
			if len(m.logs) > maxLogLines {
				m.logs = m.logs[len(m.logs)-maxLogLines:]
			}
		}
		return m, m.waitForActivity()

	case ResultMsg:
		m.result = msg.Result
		m.runErr = msg.Err
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

// waitForActivity relays the next message. ResultMsg is sent before the
// channel is closed, so a closed channel has nothing left to report.
func (m Model) waitForActivity() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.statusChan
		if !ok {
			return nil
		}
		return msg
	}
}

// View renders the step list while running and a one-line outcome at the end.
func (m Model) View() string {
	if m.finished {
		return m.outcome() + "\n"
	}
	if m.quitting {
		return faintStyle.Render("View closed; the run continues in the background.") + "\n"
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title) + "\n\n")

	for _, step := range m.steps {
		switch m.status[step] {
		case StatusStarted:
			s.WriteString(activeStyle.Render(m.spinner.View() + " " + step))
		case StatusSuccess:
			s.WriteString(doneStyle.Render("✓ " + step))
		case StatusError:
			s.WriteString(failStyle.Render("✗ " + step))
		case StatusSkipped:
			s.WriteString(faintStyle.Render("○ " + step))
		default:
			s.WriteString(faintStyle.Render("  " + step))
		}
		s.WriteString("\n")
	}

	if len(m.logs) > 0 {
		s.WriteString("\n")
		for _, line := range m.logs {
			s.WriteString(faintStyle.Render(line) + "\n")
		}
	}

	s.WriteString(faintStyle.Render("\nq: close view") + "\n")
	return s.String()
}

// outcome describes what happened to the item. Error details are left to
// the caller, which reports them once.
func (m Model) outcome() string {
	if m.runErr != nil || m.failedStep != "" {
		if m.failedStep != "" {
			return failStyle.Render(fmt.Sprintf("✗ %s failed at %s", m.title, m.failedStep))
		}
		return failStyle.Render(fmt.Sprintf("✗ %s failed", m.title))
	}

	r := m.result
	if r == nil {
		return doneStyle.Render("✓ " + m.title + " finished")
	}
	if r.Skipped {
		return faintStyle.Render(fmt.Sprintf("○ #%d skipped: %s", r.ItemNumber, r.SkipReason))
	}

	path := "existing item"
	if r.Draft {
		path = "draft issue"
	}

	if r.DryRun {
		return doneStyle.Render(fmt.Sprintf("✓ Dry run: #%d would be added as %s to project %s", r.ItemNumber, path, r.ProjectID))
	}
	if r.ItemID == "" {
		// Presets without item_adder only resolve the project.
		return doneStyle.Render(fmt.Sprintf("✓ #%d checked against project %s", r.ItemNumber, r.ProjectID))
	}

	line := fmt.Sprintf("✓ #%d added as %s %s", r.ItemNumber, path, r.ItemID)
	if r.StatusApplied != "" {
		line += fmt.Sprintf(", status %q", r.StatusApplied)
	}
	return doneStyle.Render(line)
}
