package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/migsafe/pkg/analyzer"
	"github.com/nsxbet/migsafe/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "migsafe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, string(types.SeverityHigh), cfg.FailOn)
	assert.Zero(t, cfg.Rows)
	assert.Empty(t, cfg.DisabledRules)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeConfig(t, `
fail-on: critical
rows: 500000
disabled-rules:
  - BAN003
  - LCK002
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "critical", cfg.FailOn)
	assert.Equal(t, 500000, cfg.Rows)
	assert.Equal(t, []string{"BAN003", "LCK002"}, cfg.DisabledRules)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeConfig(t, `{"fail-on": "medium", "disabled-rules": ["BAN001"]}`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.FailOn)
	assert.Equal(t, []string{"BAN001"}, cfg.DisabledRules)
}

func TestLoadFromFile_DefaultsFailOn(t *testing.T) {
	path := writeConfig(t, "rows: 100\n")
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(types.SeverityHigh), cfg.FailOn)
}

func TestLoadFromFile_InvalidFailOn(t *testing.T) {
	path := writeConfig(t, "fail-on: catastrophic\n")
	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catastrophic")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnabled_FiltersCatalog(t *testing.T) {
	cfg := &Config{DisabledRules: []string{"BAN001", "LCK002"}}
	rules, err := cfg.Enabled(analyzer.Catalog())
	require.NoError(t, err)

	assert.Len(t, rules, len(analyzer.Catalog())-2)
	for _, r := range rules {
		assert.NotEqual(t, "BAN001", r.ID)
		assert.NotEqual(t, "LCK002", r.ID)
	}
}

func TestEnabled_NoDisabledReturnsFullCatalog(t *testing.T) {
	cfg := DefaultConfig()
	rules, err := cfg.Enabled(analyzer.Catalog())
	require.NoError(t, err)
	assert.Equal(t, analyzer.Catalog(), rules)
}

func TestEnabled_UnknownRuleID(t *testing.T) {
	cfg := &Config{DisabledRules: []string{"NOPE999"}}
	_, err := cfg.Enabled(analyzer.Catalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE999")
}
