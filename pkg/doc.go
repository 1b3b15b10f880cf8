// Package pkg provides migration safety analysis for Go applications.
//
// MigSafe analyzes SQL migration scripts and flags statements that
// would acquire dangerous locks or cause irreversible schema changes in
// a production PostgreSQL database, estimating lock duration and
// producing a bounded risk score.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - analyzer: Statement segmentation, rule matching, lock-time
//     estimation, and risk scoring (the engine; start here)
//   - types: Core type definitions: Severity, Rule, Finding
//   - config: Run configuration loading (disabled rules, thresholds)
//   - sarif: SARIF 2.1.0 report rendering
//   - logger: Logging abstraction layer
//
// # Getting Started
//
//	import (
//	    "fmt"
//
//	    "github.com/nsxbet/migsafe/pkg/analyzer"
//	)
//
//	func main() {
//	    findings := analyzer.Analyze(sqlScript, 1_000_000)
//	    for _, f := range findings {
//	        fmt.Printf("%s line %d: [%s] %s\n", f.RuleID, f.Line, f.Severity, f.Message)
//	    }
//	    fmt.Printf("risk: %d/100\n", analyzer.RiskScore(findings))
//	}
//
// # How Matching Works
//
// Scripts are split on ";" into statements with line attribution, each
// statement's whitespace is normalized, and every rule in the catalog
// is tested as a case-insensitive pattern search. There is no SQL
// parsing: arbitrary input yields zero or more findings, never an
// error. The trade-off is that semicolons inside string literals or
// $$-delimited bodies split statements early.
//
// # Thread Safety
//
// All public APIs are safe for concurrent use by multiple goroutines.
// The rule catalog is read-only static data, so Analyze calls over
// different files can run in parallel with no coordination.
package pkg
