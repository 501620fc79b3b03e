// Package comment assembles the rendered coverage report into a
// publishable comment body and delivers it to a sink.
package comment

import (
	"fmt"
	"strings"
)

// DefaultMarker is the hidden line embedded in every published comment.
// A later run looks for it to decide whether it is updating its own
// previous comment or creating a fresh one.
const DefaultMarker = "<!-- lcov-report-comment -->"

// Build wraps the summary and per-file table into the comment body:
// a title heading, the three-line totals, and the table folded inside
// a collapsible details block, with the marker appended last.
func Build(title, summary, table, marker string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	b.WriteString(summary)
	b.WriteString("\n\n<details>\n<summary>Coverage per file</summary>\n\n")
	b.WriteString(table)
	b.WriteString("\n\n</details>\n\n")
	b.WriteString(marker)
	b.WriteString("\n")
	return b.String()
}
