package models

// ScanStats holds the counters shared across one traversal. A single value is
// created per run and passed by pointer through every recursive call.
type ScanStats struct {
	Seen       int      // Non-hidden files reached by the walker
	Analyzed   int      // Files whose content was actually read
	Skipped    int      // Files filtered out by extension or ignore policy
	Unreadable int      // Files or directories that failed with an I/O error
	Failed     []string // Paths counted in Unreadable, in traversal order
}

// MarkUnreadable records a path that could not be read.
func (s *ScanStats) MarkUnreadable(path string) {
	s.Unreadable++
	s.Failed = append(s.Failed, path)
}
