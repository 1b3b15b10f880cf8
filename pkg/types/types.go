// Package types defines the shared data model for migration analysis:
// severities, rules, and findings.
package types

import (
	"regexp"

	"github.com/pkg/errors"
)

// Severity classifies how dangerous a matched statement is.
// Severities are totally ordered: low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for threshold comparisons and scoring.
var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the ordinal position of the severity (1 for low through
// 4 for critical). Unknown severities rank 0, below every valid one.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Weight returns the scoring weight of the severity. Unknown severities
// weigh 1 so that malformed findings still contribute to the risk score.
func (s Severity) Weight() int {
	if w, ok := severityRank[s]; ok {
		return w
	}
	return 1
}

// ParseSeverity converts a string to a Severity.
// It returns an error for anything outside the four known levels.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityRank[sev]; !ok {
		return "", errors.Errorf("unknown severity: %q (want low, medium, high or critical)", s)
	}
	return sev, nil
}

// Rule describes one dangerous-migration pattern. Rules are static:
// the catalog is built once at startup and never mutated. Rule IDs are
// stable across versions and append-only, since external tooling (SARIF
// consumers, suppression configs) keys on them.
type Rule struct {
	// ID is the short stable identifier, e.g. "BAN001".
	ID string

	// Pattern triggers the rule when it matches anywhere in a
	// normalized statement. Patterns are compiled case-insensitive.
	Pattern *regexp.Regexp

	// Absent, when non-nil, suppresses the rule if it matches anywhere
	// in the same statement. This stands in for negative lookahead:
	// e.g. LCK001 fires on a NOT NULL column addition only when no
	// DEFAULT clause appears later in the statement.
	Absent *regexp.Regexp

	Severity Severity
	Message  string

	// LockType names the PostgreSQL lock mode the statement acquires.
	// Informational only; nothing is computed from it.
	LockType string

	// BaseLockMS is the baseline lock-duration estimate in
	// milliseconds when no row-count hint is available. Nil means the
	// duration cannot be estimated without a row count.
	BaseLockMS *int
}

// Finding is one rule match against one statement. Findings are
// self-contained snapshots: they copy the rule metadata at creation and
// carry no reference back to the Rule, so callers may hold them freely.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`

	// Line is the 1-based line on which the statement begins in the
	// original source text.
	Line int `json:"line"`

	// SQL is a truncated snippet of the normalized statement, for
	// display only. It is excluded from JSON output.
	SQL string `json:"-"`

	LockType string `json:"lock_type"`

	// LockMS is the estimated lock duration in milliseconds.
	// Nil means unknown.
	LockMS *int `json:"lock_ms"`
}
