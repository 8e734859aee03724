package models

// MatchRecord is one observation produced by scanning a single line: the word
// at WordIndex occurred Count times on row Row of the file at Path.
type MatchRecord struct {
	Path      string // Path as seen during traversal
	Word      string // Configured word (already normalized)
	WordIndex int    // Position of Word in the configured word list
	Row       int    // 0-indexed line number
	Text      string // Trimmed line text
	Count     int    // Non-overlapping occurrences of Word on this line
}

// TotalOccurrences sums Count over all records.
func TotalOccurrences(records []MatchRecord) int {
	total := 0
	for _, r := range records {
		total += r.Count
	}
	return total
}
