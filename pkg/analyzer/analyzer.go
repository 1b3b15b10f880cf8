// Package analyzer is the rule-matching engine behind migsafe. It
// splits a SQL migration script into statements, matches each statement
// against a catalog of dangerous-pattern rules, estimates lock duration
// from an optional row-count hint, and aggregates findings into a
// bounded risk score.
//
// The engine does not parse SQL. Statements are matched with
// case-insensitive pattern search over whitespace-normalized text,
// which keeps the analysis cheap and total: any input, including
// non-SQL, yields zero or more findings and never an error. The known
// cost is that semicolons inside string literals, quoted identifiers,
// or $$-delimited bodies split a statement early.
//
// All functions here are pure. The rule catalog is read-only static
// data, so concurrent Analyze calls need no coordination.
package analyzer

import (
	"github.com/nsxbet/migsafe/pkg/types"
)

// maxSnippetLen bounds the statement snippet carried on each finding.
const maxSnippetLen = 120

// maxRiskScore caps the aggregate risk score.
const maxRiskScore = 100

// Analyze runs the built-in rule catalog against every statement in
// sql and returns the findings in order: statements in script order,
// and rules in catalog order within each statement. A statement may
// match several rules; each match produces its own finding.
//
// rows is an optional row-count hint for the table being migrated;
// pass 0 or a negative value when unknown. It only affects the
// per-finding lock-duration estimate.
func Analyze(sql string, rows int) []types.Finding {
	return AnalyzeWithRules(sql, rows, catalog)
}

// AnalyzeWithRules is Analyze with an explicit rule set, for callers
// that disable rules via configuration.
func AnalyzeWithRules(sql string, rows int, rules []types.Rule) []types.Finding {
	var findings []types.Finding
	for stmt, line := range Statements(sql) {
		for _, rule := range rules {
			if !rule.Pattern.MatchString(stmt) {
				continue
			}
			if rule.Absent != nil && rule.Absent.MatchString(stmt) {
				continue
			}
			snippet := stmt
			if len(snippet) > maxSnippetLen {
				snippet = snippet[:maxSnippetLen]
			}
			findings = append(findings, types.Finding{
				RuleID:   rule.ID,
				Severity: rule.Severity,
				Message:  rule.Message,
				Line:     line,
				SQL:      snippet,
				LockType: rule.LockType,
				LockMS:   EstimateLockMs(rule.BaseLockMS, rows),
			})
		}
	}
	return findings
}

// EstimateLockMs estimates lock duration in milliseconds from a rule's
// baseline cost and a row-count hint. Nil means the duration is
// unknowable.
//
// Without a hint (rows <= 0) the baseline passes through unchanged.
// With a hint, the estimate is max(base or 1, rows/10000 + base),
// using integer division: lock time grows with table size, the
// baseline overhead is additive, and a floor of 1ms guarantees a
// nonzero estimate once a hint is supplied even for rules with no
// baseline cost.
func EstimateLockMs(baseMS *int, rows int) *int {
	if rows <= 0 {
		return baseMS
	}
	base, floor := 0, 1
	if baseMS != nil && *baseMS > 0 {
		base, floor = *baseMS, *baseMS
	}
	est := rows/10000 + base
	if est < floor {
		est = floor
	}
	return &est
}

// RiskScore aggregates findings into a 0-100 risk score: the sum over
// findings of severity weight times 25, clamped to 100. The score is
// order-independent and monotonic in both the number and severity of
// findings; no findings scores 0.
func RiskScore(findings []types.Finding) int {
	score := 0
	for _, f := range findings {
		score += f.Severity.Weight() * 25
	}
	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}
