// Package lcov parses lcov tracefile text into per-file coverage records.
package lcov

// Count holds the found/hit totals for one coverage category.
// "Found" is the number of measurable units (lines, functions or
// branches) present in the source; "Hit" is how many of them were
// exercised at least once.
type Count struct {
	Found int
	Hit   int
}

// TestHits maps a test run name to an accumulated execution count.
// The empty string is a valid name and is the usual single-run case.
type TestHits map[string]int

// BranchHits maps a test run name to per-branch taken counts,
// keyed by branch number.
type BranchHits map[string]map[int]int

// FileRecord is the parsed coverage for one SF: section of a tracefile.
type FileRecord struct {
	Filename string

	Lines     Count
	Functions Count
	Branches  Count

	// Per-unit execution detail, keyed first by the unit (line number
	// or function name) and then by test run name. Counts from repeated
	// directives for the same unit and test accumulate additively.
	LineHits     map[int]TestHits
	FunctionHits map[string]TestHits
	BranchTaken  map[int]BranchHits
}

func newFileRecord(filename string) *FileRecord {
	return &FileRecord{
		Filename:     filename,
		LineHits:     make(map[int]TestHits),
		FunctionHits: make(map[string]TestHits),
		BranchTaken:  make(map[int]BranchHits),
	}
}

func (r *FileRecord) addLineHit(line int, test string, count int) {
	hits, ok := r.LineHits[line]
	if !ok {
		hits = make(TestHits)
		r.LineHits[line] = hits
	}
	hits[test] += count
}

func (r *FileRecord) addFunctionHit(name string, test string, count int) {
	hits, ok := r.FunctionHits[name]
	if !ok {
		hits = make(TestHits)
		r.FunctionHits[name] = hits
	}
	hits[test] += count
}

func (r *FileRecord) addBranchTaken(line int, test string, branch, taken int) {
	byTest, ok := r.BranchTaken[line]
	if !ok {
		byTest = make(BranchHits)
		r.BranchTaken[line] = byTest
	}
	byBranch, ok := byTest[test]
	if !ok {
		byBranch = make(map[int]int)
		byTest[test] = byBranch
	}
	byBranch[branch] += taken
}
