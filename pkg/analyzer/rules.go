package analyzer

import (
	"regexp"

	"github.com/nsxbet/migsafe/pkg/types"
)

// catalog is the full rule set, in evaluation order. Findings are
// emitted in this order within a statement, so the order is part of the
// observable contract. IDs are stable and append-only.
//
// Go's regexp has no negative lookahead, so rules that fire on the
// absence of a clause (LCK001, LCK003) carry a second Absent pattern
// checked over the whole normalized statement.
var catalog = []types.Rule{
	{
		ID:         "BAN001",
		Pattern:    regexp.MustCompile(`(?i)\bDROP\s+TABLE\b`),
		Severity:   types.SeverityCritical,
		Message:    "DROP TABLE permanently deletes data and all indexes",
		LockType:   "ACCESS EXCLUSIVE",
		BaseLockMS: baseMS(10),
	},
	{
		ID:         "BAN002",
		Pattern:    regexp.MustCompile(`(?i)\bALTER\s+TABLE\s+\S+\s+DROP\s+COLUMN\b`),
		Severity:   types.SeverityHigh,
		Message:    "DROP COLUMN is irreversible and may break running queries",
		LockType:   "ACCESS EXCLUSIVE",
		BaseLockMS: baseMS(50),
	},
	{
		ID:         "BAN003",
		Pattern:    regexp.MustCompile(`(?i)\bALTER\s+TABLE\s+\S+\s+RENAME\b`),
		Severity:   types.SeverityMedium,
		Message:    "Renaming table/column will break application queries",
		LockType:   "ACCESS EXCLUSIVE",
		BaseLockMS: baseMS(5),
	},
	{
		ID:       "LCK001",
		Pattern:  regexp.MustCompile(`(?i)\bADD\s+(?:COLUMN\s+)?\S+\s+\S+.*\bNOT\s+NULL\b`),
		Absent:   regexp.MustCompile(`(?i)\bDEFAULT\b`),
		Severity: types.SeverityCritical,
		Message:  "Adding NOT NULL column without DEFAULT rewrites entire table under lock",
		LockType: "ACCESS EXCLUSIVE",
	},
	{
		ID:       "LCK002",
		Pattern:  regexp.MustCompile(`(?i)\bCREATE\s+(?:UNIQUE\s+)?INDEX\b`),
		Absent:   regexp.MustCompile(`(?i)\bCREATE\s+(?:UNIQUE\s+)?INDEX\s+CONCURRENTLY\b`),
		Severity: types.SeverityHigh,
		Message:  "CREATE INDEX without CONCURRENTLY blocks all writes",
		LockType: "SHARE",
	},
	{
		ID:       "LCK003",
		Pattern:  regexp.MustCompile(`(?i)\bADD\s+(?:CONSTRAINT\s+\S+\s+)?FOREIGN\s+KEY\b`),
		Absent:   regexp.MustCompile(`(?i)\bNOT\s+VALID\b`),
		Severity: types.SeverityHigh,
		Message:  "Adding FK without NOT VALID scans entire table under lock",
		LockType: "SHARE ROW EXCLUSIVE",
	},
	{
		ID:       "LCK004",
		Pattern:  regexp.MustCompile(`(?i)\bALTER\s+TABLE\s+\S+\s+ALTER\s+COLUMN\s+\S+\s+(?:SET\s+DATA\s+)?TYPE\b`),
		Severity: types.SeverityCritical,
		Message:  "Changing column type rewrites the entire table under ACCESS EXCLUSIVE lock",
		LockType: "ACCESS EXCLUSIVE",
	},
	{
		ID:       "LCK005",
		Pattern:  regexp.MustCompile(`(?i)\bALTER\s+TABLE\s+\S+\s+ALTER\s+COLUMN\s+\S+\s+SET\s+NOT\s+NULL\b`),
		Severity: types.SeverityHigh,
		Message:  "SET NOT NULL scans full table; use CHECK constraint + NOT VALID instead",
		LockType: "ACCESS EXCLUSIVE",
	},
}

// Catalog returns the built-in rule set in evaluation order.
// The returned slice is shared; callers must not modify it.
func Catalog() []types.Rule {
	return catalog
}

func baseMS(ms int) *int {
	return &ms
}
