package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityRank(t *testing.T) {
	assert.Equal(t, 1, SeverityLow.Rank())
	assert.Equal(t, 2, SeverityMedium.Rank())
	assert.Equal(t, 3, SeverityHigh.Rank())
	assert.Equal(t, 4, SeverityCritical.Rank())
	assert.Equal(t, 0, Severity("bogus").Rank())

	assert.Less(t, SeverityLow.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityHigh.Rank())
	assert.Less(t, SeverityHigh.Rank(), SeverityCritical.Rank())
}

func TestSeverityWeight_UnknownFloorsAtOne(t *testing.T) {
	assert.Equal(t, 1, Severity("bogus").Weight())
	assert.Equal(t, 4, SeverityCritical.Weight())
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []string{"low", "medium", "high", "critical"} {
		sev, err := ParseSeverity(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(sev))
	}

	_, err := ParseSeverity("HIGH")
	assert.Error(t, err)
	_, err = ParseSeverity("")
	assert.Error(t, err)
}

func TestFindingJSONContract(t *testing.T) {
	ms := 110
	f := Finding{
		RuleID:   "BAN001",
		Severity: SeverityCritical,
		Message:  "DROP TABLE permanently deletes data and all indexes",
		Line:     3,
		SQL:      "DROP TABLE users",
		LockType: "ACCESS EXCLUSIVE",
		LockMS:   &ms,
	}

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "BAN001", got["rule_id"])
	assert.Equal(t, "critical", got["severity"])
	assert.Equal(t, float64(3), got["line"])
	assert.Equal(t, "ACCESS EXCLUSIVE", got["lock_type"])
	assert.Equal(t, float64(110), got["lock_ms"])
	// The snippet is display-only and stays out of the JSON contract.
	assert.NotContains(t, got, "sql")
}

func TestFindingJSON_UnknownLockMSIsNull(t *testing.T) {
	data, err := json.Marshal(Finding{RuleID: "LCK001", Severity: SeverityCritical, Line: 1})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lock_ms":null`)
}
