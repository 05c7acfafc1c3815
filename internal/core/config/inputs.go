// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Action input names. The runner exposes each one as INPUT_<NAME>.
const (
	InputProjectURL     = "project-url"
	InputGitHubToken    = "github-token"
	InputLabeled        = "labeled"
	InputLabelOperator  = "label-operator"
	InputStatusOverride = "status-override"
)

// graphQLURLKey binds the endpoint the runner advertises in GITHUB_GRAPHQL_URL.
const graphQLURLKey = "graphql-url"

// Inputs lists every action input in declaration order.
var Inputs = []string{
	InputProjectURL,
	InputGitHubToken,
	InputLabeled,
	InputLabelOperator,
	InputStatusOverride,
}

// InputEnvNames returns the environment variables an input is read from.
// The runner keeps hyphens (INPUT_PROJECT-URL); the underscore spelling is
// accepted for shells that cannot export hyphenated names.
func InputEnvNames(name string) []string {
	upper := strings.ToUpper(name)
	names := []string{"INPUT_" + upper}
	if alt := strings.ReplaceAll(upper, "-", "_"); alt != upper {
		names = append(names, "INPUT_"+alt)
	}
	if name == InputGitHubToken {
		names = append(names, "GITHUB_TOKEN")
	}
	return names
}

// NewViper creates a Viper instance with every action input bound to its
// environment variables. Callers may additionally bind command flags.
func NewViper() *viper.Viper {
	v := viper.New()
	for _, name := range Inputs {
		_ = v.BindEnv(append([]string{name}, InputEnvNames(name)...)...)
	}
	_ = v.BindEnv(graphQLURLKey, "GITHUB_GRAPHQL_URL")
	return v
}

// ApplyInputs overlays non-empty inputs from v onto c.
func (c *Config) ApplyInputs(v *viper.Viper) {
	set := func(dst *string, name string) {
		if val := strings.TrimSpace(v.GetString(name)); val != "" {
			*dst = val
		}
	}

	set(&c.ProjectURL, InputProjectURL)
	set(&c.GitHubToken, InputGitHubToken)
	set(&c.Labeled, InputLabeled)
	set(&c.LabelOperator, InputLabelOperator)
	set(&c.StatusOverride, InputStatusOverride)
	set(&c.GraphQLURL, graphQLURLKey)
}
