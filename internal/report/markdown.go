// Package report renders parsed coverage records as markdown text.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zjy-dev/lcov-report/internal/lcov"
)

var tableHeaders = []string{
	"Filename",
	"Lines",
	"Line Coverage",
	"Functions",
	"Function Coverage",
	"Branches",
	"Branch Coverage",
}

// Pct formats hit out of found as a percentage with 4 significant
// digits. An empty denominator counts as fully covered: there was
// nothing to miss, and it avoids dividing by zero.
func Pct(hit, found int) string {
	if found == 0 {
		return "100.0%"
	}
	value := 100 * float64(hit) / float64(found)
	return toPrecision(value, 4) + "%"
}

// toPrecision renders value with the given number of significant
// digits, keeping trailing zeros (50 -> "50.00" at 4 digits). Values
// below 1 carry zero or negative integer digits (0.05 -> "0.05000"),
// so small coverage fractions keep their precision instead of rounding
// away to "0.000". Zero itself renders as "0.000".
func toPrecision(value float64, digits int) string {
	intDigits := 1
	switch {
	case value >= 10:
		for v := value; v >= 10; v /= 10 {
			intDigits++
		}
	case value > 0 && value < 1:
		for v := value; v < 1; v *= 10 {
			intDigits--
		}
	}
	decimals := digits - intDigits
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	// Rounding can promote the leading digit (99.995 -> "100.00",
	// 0.99995 -> "1.0000"); drop a decimal so the significant digit
	// count stays fixed.
	if decimals > 0 && significantDigits(s) > digits {
		s = strconv.FormatFloat(value, 'f', decimals-1, 64)
	}
	return s
}

// significantDigits counts the digits of a formatted number, ignoring
// the decimal point and leading zeros.
func significantDigits(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if n == 0 && r == '0' {
			continue
		}
		n++
	}
	return n
}

// Summarize sums hit and found over every record independently for the
// three coverage categories and renders one line per category.
func Summarize(records []*lcov.FileRecord) string {
	var lines, functions, branches lcov.Count
	for _, r := range records {
		lines.Found += r.Lines.Found
		lines.Hit += r.Lines.Hit
		functions.Found += r.Functions.Found
		functions.Hit += r.Functions.Hit
		branches.Found += r.Branches.Found
		branches.Hit += r.Branches.Hit
	}

	return strings.Join([]string{
		summaryLine("Lines", lines),
		summaryLine("Functions", functions),
		summaryLine("Branches", branches),
	}, "\n")
}

func summaryLine(category string, c lcov.Count) string {
	return fmt.Sprintf("%s: %d/%d %s", category, c.Hit, c.Found, Pct(c.Hit, c.Found))
}

// RenderTable renders one row per record as a pipe-delimited markdown
// table, in parser-output order. Every column is padded to the widest
// value it holds so the raw text stays aligned.
//
// If any row does not line up with the header column count the table is
// considered corrupt and the empty string is returned. The rows are
// built here from a fixed set of columns, so that path is a guard, not
// an expected outcome.
func RenderTable(records []*lcov.FileRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Filename,
			fmt.Sprintf("%d/%d", r.Lines.Hit, r.Lines.Found),
			Pct(r.Lines.Hit, r.Lines.Found),
			fmt.Sprintf("%d/%d", r.Functions.Hit, r.Functions.Found),
			Pct(r.Functions.Hit, r.Functions.Found),
			fmt.Sprintf("%d/%d", r.Branches.Hit, r.Branches.Found),
			Pct(r.Branches.Hit, r.Branches.Found),
		})
	}

	// Widths are counted in runes, not bytes, so a non-ASCII filename
	// does not throw off the padding of every other row.
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		if len(row) != len(tableHeaders) {
			return ""
		}
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]string, 0, 2+len(rows))
	out = append(out, formatRow(tableHeaders, widths), delimiterRow(widths))
	for _, row := range rows {
		out = append(out, formatRow(row, widths))
	}
	return strings.Join(out, "\n")
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		b.WriteString(" |")
	}
	return b.String()
}

func delimiterRow(widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	return b.String()
}
