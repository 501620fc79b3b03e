package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjy-dev/lcov-report/internal/lcov"
)

func TestPct(t *testing.T) {
	tests := []struct {
		name  string
		hit   int
		found int
		want  string
	}{
		{"empty denominator is fully covered", 0, 0, "100.0%"},
		{"half", 5, 10, "50.00%"},
		{"zero", 0, 10, "0.000%"},
		{"full", 10, 10, "100.0%"},
		{"repeating decimal rounds", 1, 3, "33.33%"},
		{"rounds up", 2, 3, "66.67%"},
		{"just below full", 9999, 10000, "99.99%"},
		{"rounds across the magnitude boundary", 99999, 100000, "100.0%"},
		{"below one percent", 1, 1000, "0.1000%"},
		{"fraction with a leading zero", 1, 2000, "0.05000%"},
		{"tiny fraction", 1, 20000, "0.005000%"},
		{"rounds up across one", 99999, 10000000, "1.000%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pct(tt.hit, tt.found))
		})
	}
}

func TestSummarize_NoRecords(t *testing.T) {
	want := "Lines: 0/0 100.0%\nFunctions: 0/0 100.0%\nBranches: 0/0 100.0%"
	assert.Equal(t, want, Summarize(nil))
}

func TestSummarize_SumsAcrossRecords(t *testing.T) {
	records := []*lcov.FileRecord{
		{
			Filename:  "a.c",
			Lines:     lcov.Count{Found: 10, Hit: 5},
			Functions: lcov.Count{Found: 2, Hit: 1},
			Branches:  lcov.Count{Found: 4, Hit: 4},
		},
		{
			Filename:  "b.c",
			Lines:     lcov.Count{Found: 10, Hit: 10},
			Functions: lcov.Count{Found: 2, Hit: 2},
		},
	}

	got := Summarize(records)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Lines: 15/20 75.00%", lines[0])
	assert.Equal(t, "Functions: 3/4 75.00%", lines[1])
	assert.Equal(t, "Branches: 4/4 100.0%", lines[2])
}

func TestRenderTable(t *testing.T) {
	records := []*lcov.FileRecord{
		{
			Filename: "nothing-to-cover.ts",
		},
		{
			Filename:  "covered.ts",
			Lines:     lcov.Count{Found: 5, Hit: 5},
			Functions: lcov.Count{Found: 2, Hit: 2},
			Branches:  lcov.Count{Found: 1, Hit: 1},
		},
	}

	got := RenderTable(records)
	rows := strings.Split(got, "\n")
	require.Len(t, rows, 2+len(records), "header + delimiter + one row per record")

	// Every row is padded to the same overall width.
	for _, row := range rows[1:] {
		assert.Len(t, row, len(rows[0]))
	}

	for _, header := range []string{"Filename", "Line Coverage", "Function Coverage", "Branch Coverage"} {
		assert.Contains(t, rows[0], header)
	}
	assert.Equal(t, "", strings.Trim(rows[1], "|-"), "delimiter row is dashes and pipes only")

	// Zero found and full coverage both report 100.0%.
	assert.Contains(t, rows[2], "nothing-to-cover.ts")
	assert.Contains(t, rows[2], "0/0")
	assert.Equal(t, 3, strings.Count(rows[2], "100.0%"))
	assert.Contains(t, rows[3], "covered.ts")
	assert.Contains(t, rows[3], "5/5")
	assert.Equal(t, 3, strings.Count(rows[3], "100.0%"))
}

func TestRenderTable_NoRecords(t *testing.T) {
	got := RenderTable(nil)
	rows := strings.Split(got, "\n")
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "Filename")
}

func TestRenderTable_NonASCIIFilenames(t *testing.T) {
	records := []*lcov.FileRecord{
		{
			Filename: "src/übersicht.ts",
			Lines:    lcov.Count{Found: 2, Hit: 1},
		},
		{
			Filename: "src/año/código.ts",
			Lines:    lcov.Count{Found: 3, Hit: 3},
		},
		{
			Filename: "src/plain.ts",
			Lines:    lcov.Count{Found: 1, Hit: 0},
		},
	}

	got := RenderTable(records)
	rows := strings.Split(got, "\n")
	require.Len(t, rows, 5)

	// Padding is counted in runes, so every row lines up regardless of
	// multi-byte characters in the filenames.
	width := utf8.RuneCountInString(rows[0])
	for _, row := range rows[1:] {
		assert.Equal(t, width, utf8.RuneCountInString(row))
	}
}

func TestRenderTable_ColumnWidthFollowsWidestCell(t *testing.T) {
	records := []*lcov.FileRecord{
		{
			Filename: "a/very/long/path/deep/in/the/tree/widget.c",
			Lines:    lcov.Count{Found: 1234, Hit: 1000},
		},
	}

	got := RenderTable(records)
	rows := strings.Split(got, "\n")
	require.Len(t, rows, 3)

	// The filename column must be at least as wide as the longest path.
	assert.Contains(t, rows[2], "a/very/long/path/deep/in/the/tree/widget.c ")
	assert.Len(t, rows[1], len(rows[0]))
	assert.Len(t, rows[2], len(rows[0]))
}
