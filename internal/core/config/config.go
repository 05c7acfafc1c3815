// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

// Package config handles loading add-to-project configuration from an
// optional YAML file and the action inputs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/similigh/add-to-project/internal/labels"
)

// ErrMissingInput is returned by Validate when a required input is empty.
var ErrMissingInput = errors.New("missing required input")

const (
	// DefaultWorkflow is the preset used when no workflow or steps are configured.
	DefaultWorkflow = "add-to-project"

	// DefaultStatusField is the single-select field updated by a status override.
	DefaultStatusField = "Status"

	// DefaultGraphQLURL is the public GitHub GraphQL endpoint.
	DefaultGraphQLURL = "https://api.github.com/graphql"
)

// Config is the root configuration structure. It is built once per run and
// passed to every pipeline step.
type Config struct {
	// ProjectURL is the URL of the target project, e.g. https://github.com/orgs/acme/projects/7.
	ProjectURL string `yaml:"project_url"`

	// GitHubToken authenticates every API call. Usually supplied as an input
	// rather than in the file.
	GitHubToken string `yaml:"github_token,omitempty"`

	// Labeled is a comma-separated list of labels used to filter items.
	Labeled string `yaml:"labeled,omitempty"`

	// LabelOperator is "and", "not" or "or". Anything else behaves like "or".
	LabelOperator string `yaml:"label_operator,omitempty"`

	// StatusOverride is the option name to set on the status field after adding.
	StatusOverride string `yaml:"status_override,omitempty"`

	// StatusField is the single-select field the override targets.
	StatusField string `yaml:"status_field,omitempty"`

	// GraphQLURL is the GraphQL endpoint (GitHub Enterprise Server uses its own).
	GraphQLURL string `yaml:"graphql_url,omitempty"`

	// Workflow is a preset workflow name (e.g., "add-to-project").
	Workflow string `yaml:"workflow,omitempty"`

	// Steps is a custom list of pipeline steps (overrides workflow).
	Steps []string `yaml:"steps,omitempty"`
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns a config holding only default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".github/add-to-project.yaml",
		".github/add-to-project.yml",
		".add-to-project.yaml",
		".add-to-project.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// Validate checks that the inputs every run needs are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProjectURL) == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, InputProjectURL)
	}
	if strings.TrimSpace(c.GitHubToken) == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, InputGitHubToken)
	}
	return nil
}

// LabelList returns the normalized label filter: lower-cased, trimmed, no empty entries.
func (c *Config) LabelList() []string {
	return labels.ParseList(c.Labeled)
}

// Operator returns the parsed label operator.
func (c *Config) Operator() labels.Operator {
	return labels.ParseOperator(c.LabelOperator)
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.LabelOperator == "" {
		c.LabelOperator = string(labels.OperatorOr)
	}
	if c.StatusField == "" {
		c.StatusField = DefaultStatusField
	}
	if c.GraphQLURL == "" {
		c.GraphQLURL = DefaultGraphQLURL
	}
	if c.Workflow == "" && len(c.Steps) == 0 {
		c.Workflow = DefaultWorkflow
	}
}
