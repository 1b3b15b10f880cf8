package analyzer

import (
	"iter"
	"strings"
)

// Statements splits a SQL script into discrete statements, yielding
// each statement's normalized text together with the 1-based line on
// which it begins in the original source.
//
// Segments are split on ";". A segment is skipped if it trims to empty
// or starts with a "--" line comment. Internal whitespace runs,
// including newlines, are collapsed to single spaces, so rule patterns
// never have to account for statement formatting. Text after the final
// semicolon is treated as a last, unterminated statement.
//
// Semicolons inside string literals or embedded comments are not
// recognized; the split is intentionally naive. See the package
// documentation for the trade-off.
//
// The returned sequence is restartable and can be ranged over more
// than once.
func Statements(sql string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		offset := 0
		for _, part := range strings.Split(sql, ";") {
			text := strings.TrimSpace(part)
			if text != "" && !strings.HasPrefix(text, "--") {
				// Line attribution counts newlines before the segment
				// start in the original, un-normalized text.
				line := strings.Count(sql[:offset], "\n") + 1
				if !yield(strings.Join(strings.Fields(text), " "), line) {
					return
				}
			}
			offset += len(part) + 1
		}
	}
}
