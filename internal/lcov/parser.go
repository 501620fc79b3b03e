package lcov

import (
	"bufio"
	"strconv"
	"strings"
)

// Parse converts lcov tracefile text into per-file coverage records,
// in the order their SF: directives appear.
//
// The parser is deliberately permissive and never fails: coverage tools
// emit slightly non-conformant output in practice, so a malformed
// directive (negative or non-numeric field, data outside an SF section)
// is dropped and scanning continues. An SF: directive that arrives
// before the previous section's end_of_record discards the unterminated
// section entirely.
func Parse(text string) []*FileRecord {
	var (
		records  []*FileRecord
		current  *FileRecord
		testName string
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "TN:"):
			testName = strings.TrimPrefix(line, "TN:")

		case strings.HasPrefix(line, "SF:"):
			current = newFileRecord(strings.TrimPrefix(line, "SF:"))

		case line == "end_of_record":
			if current != nil {
				records = append(records, current)
				current = nil
			}

		case current == nil:
			// Data directives have nothing to attach to outside an
			// SF section.

		case strings.HasPrefix(line, "DA:"):
			// DA:line,count
			fields := strings.SplitN(strings.TrimPrefix(line, "DA:"), ",", 2)
			if len(fields) != 2 {
				continue
			}
			lineNo, ok := parseNonNegative(fields[0])
			if !ok {
				continue
			}
			count, ok := parseNonNegative(fields[1])
			if !ok {
				continue
			}
			current.addLineHit(lineNo, testName, count)

		case strings.HasPrefix(line, "FNDA:"):
			// FNDA:count,function_name
			fields := strings.SplitN(strings.TrimPrefix(line, "FNDA:"), ",", 2)
			if len(fields) != 2 {
				continue
			}
			count, ok := parseNonNegative(fields[0])
			if !ok {
				continue
			}
			current.addFunctionHit(fields[1], testName, count)

		case strings.HasPrefix(line, "BRDA:"):
			// BRDA:line,block,branch,taken
			// The block number is validated but does not participate in
			// branch identity, matching lcov's per-line branch numbering.
			fields := strings.Split(strings.TrimPrefix(line, "BRDA:"), ",")
			if len(fields) != 4 {
				continue
			}
			lineNo, ok := parseNonNegative(fields[0])
			if !ok {
				continue
			}
			if _, ok := parseNonNegative(fields[1]); !ok {
				continue
			}
			branch, ok := parseNonNegative(fields[2])
			if !ok {
				continue
			}
			taken, ok := parseNonNegative(fields[3])
			if !ok {
				continue
			}
			current.addBranchTaken(lineNo, testName, branch, taken)

		case strings.HasPrefix(line, "LF:"):
			setSummary(&current.Lines.Found, strings.TrimPrefix(line, "LF:"))
		case strings.HasPrefix(line, "LH:"):
			setSummary(&current.Lines.Hit, strings.TrimPrefix(line, "LH:"))
		case strings.HasPrefix(line, "FNF:"):
			setSummary(&current.Functions.Found, strings.TrimPrefix(line, "FNF:"))
		case strings.HasPrefix(line, "FNH:"):
			setSummary(&current.Functions.Hit, strings.TrimPrefix(line, "FNH:"))
		case strings.HasPrefix(line, "BRF:"):
			setSummary(&current.Branches.Found, strings.TrimPrefix(line, "BRF:"))
		case strings.HasPrefix(line, "BRH:"):
			setSummary(&current.Branches.Hit, strings.TrimPrefix(line, "BRH:"))
		}
	}

	return records
}

// parseNonNegative parses a decimal field, rejecting negative values and
// anything strconv cannot read as an integer.
func parseNonNegative(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// setSummary overwrites a found/hit total from a summary directive.
// Summary directives replace rather than accumulate; the last one
// before end_of_record wins.
func setSummary(target *int, field string) {
	if n, ok := parseNonNegative(field); ok {
		*target = n
	}
}
