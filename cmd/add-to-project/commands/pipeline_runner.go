// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-19

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/add-to-project/internal/core/pipeline"
	"github.com/similigh/add-to-project/internal/steps"
	"github.com/similigh/add-to-project/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner      pipeline.Step
	statusChan chan<- tea.Msg
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusStarted, Message: "Starting..."}

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSkipped, Message: ctx.Result.SkipReason}
			return err
		}
		s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusError, Message: err.Error()}
		return err
	}

	s.statusChan <- tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSuccess, Message: "Completed"}
	return nil
}

// buildPipeline creates the named steps. When statusChan is non-nil every
// step reports its progress on it.
func buildPipeline(deps *pipeline.Dependencies, stepNames []string, statusChan chan<- tea.Msg) (*pipeline.Pipeline, error) {
	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	built, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		return nil, err
	}
	if statusChan == nil {
		return built, nil
	}

	var wrapped []pipeline.Step
	for _, step := range built.Steps() {
		wrapped = append(wrapped, &statusReportingStep{inner: step, statusChan: statusChan})
	}
	return pipeline.New(wrapped...), nil
}

// runPlain runs the pipeline with plain log output, as in CI.
func runPlain(out io.Writer, pCtx *pipeline.Context, deps *pipeline.Dependencies, stepNames []string) error {
	fmt.Fprintln(out, "[add-to-project] Running in CI mode (no TUI)")

	p, err := buildPipeline(deps, stepNames, nil)
	if err != nil {
		return err
	}

	if err := p.Run(pCtx); err != nil {
		return err
	}

	if pCtx.Result.Skipped {
		fmt.Fprintf(out, "[add-to-project] Skipped: %s\n", pCtx.Result.SkipReason)
	} else {
		fmt.Fprintln(out, "[add-to-project] Pipeline completed")
	}
	if verbose {
		fmt.Fprintln(out, resultSummary(pCtx.Result))
	}
	return nil
}

// programOptions are passed to the progress view; tests point it at a buffer.
var programOptions []tea.ProgramOption

// runInteractive runs the pipeline behind a progress view. Step logs and the
// itemId line are held back while the view owns the terminal and written
// afterwards; logs only with --verbose.
func runInteractive(out io.Writer, pCtx *pipeline.Context, deps *pipeline.Dependencies, stepNames []string) error {
	// Two messages per step plus the result; buffered so the pipeline never
	// waits on the view.
	statusChan := make(chan tea.Msg, 2*len(stepNames)+1)

	var stdout bytes.Buffer
	viewDeps := *deps
	viewDeps.Stdout = &stdout

	p, err := buildPipeline(&viewDeps, stepNames, statusChan)
	if err != nil {
		return err
	}

	var logs bytes.Buffer
	prevOutput := log.Writer()
	log.SetOutput(&logs)
	defer log.SetOutput(prevOutput)

	program := tea.NewProgram(tui.NewModel("Add to Project", stepNames, statusChan), programOptions...)

	done := make(chan error, 1)
	go func() {
		runErr := p.Run(pCtx)
		// Sent on the same channel so the view sees every step update first.
		statusChan <- tui.ResultMsg{Result: pCtx.Result, Err: runErr}
		close(statusChan)
		done <- runErr
	}()

	_, uiErr := program.Run()
	// The pipeline is never abandoned half way, even if the view quit early.
	runErr := <-done

	log.SetOutput(prevOutput)
	if verbose {
		fmt.Fprint(out, logs.String())
	}
	if _, err := stdout.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// The caller prints runErr; the view only names the failed step.
	if runErr != nil {
		return runErr
	}
	if verbose {
		fmt.Fprintln(out, resultSummary(pCtx.Result))
	}
	if uiErr != nil {
		return fmt.Errorf("error running TUI: %w", uiErr)
	}
	return nil
}

func resultSummary(result *pipeline.Result) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to marshal result: %v", err)
	}
	return string(data)
}
