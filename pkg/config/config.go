// Package config loads migsafe run configuration from a YAML or JSON
// file. Configuration only tunes how the linter is run; the rule
// catalog itself is compiled in.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/migsafe/pkg/types"
)

// Config is the on-disk configuration for a migsafe run.
type Config struct {
	// FailOn is the minimum severity that fails the run, e.g. "high".
	FailOn string `yaml:"fail-on" json:"fail-on"`

	// Rows is the default row-count hint applied when the --rows flag
	// is not given.
	Rows int `yaml:"rows" json:"rows"`

	// DisabledRules lists rule IDs to skip during analysis.
	DisabledRules []string `yaml:"disabled-rules" json:"disabled-rules"`
}

// DefaultConfig returns the configuration used when no file is found:
// fail on high severity, no row hint, all rules enabled.
func DefaultConfig() *Config {
	return &Config{FailOn: string(types.SeverityHigh)}
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("Loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Debug("YAML unmarshal failed, trying JSON", "error", err)
		if jsonErr := json.Unmarshal(data, &config); jsonErr != nil {
			return nil, errors.Wrapf(err, "failed to parse config file: %s", filename)
		}
	}

	if config.FailOn == "" {
		config.FailOn = string(types.SeverityHigh)
	}
	if _, err := types.ParseSeverity(config.FailOn); err != nil {
		return nil, errors.Wrapf(err, "invalid fail-on in %s", filename)
	}

	slog.Debug("Loaded config", "fail_on", config.FailOn, "disabled_rules", len(config.DisabledRules))
	return &config, nil
}

// Enabled filters the rule catalog down to the rules not listed in
// DisabledRules. Rule IDs are stable and append-only, so an unknown ID
// in the disabled list is a typo and reported as an error rather than
// ignored.
func (c *Config) Enabled(catalog []types.Rule) ([]types.Rule, error) {
	if len(c.DisabledRules) == 0 {
		return catalog, nil
	}

	known := make(map[string]bool, len(catalog))
	for _, r := range catalog {
		known[r.ID] = true
	}
	disabled := make(map[string]bool, len(c.DisabledRules))
	for _, id := range c.DisabledRules {
		if !known[id] {
			return nil, errors.Errorf("unknown rule ID in disabled-rules: %s", id)
		}
		disabled[id] = true
	}

	var rules []types.Rule
	for _, r := range catalog {
		if !disabled[r.ID] {
			rules = append(rules, r)
		}
	}
	return rules, nil
}
