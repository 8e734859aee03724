package config

import (
	"fmt"
	"strings"
)

// SearchConfig is the finalized, read-only input of a search run. Build it
// with Config.Finalize; when CaseSensitive is false, Words and Exclude are
// already lower-cased.
type SearchConfig struct {
	Dir              string
	Words            []string
	Exclude          []string
	Recursive        bool
	CaseSensitive    bool
	IncludeHidden    bool
	AllFiles         bool
	FullPath         bool
	RespectGitignore bool
	Verbose          bool
	RunID            string
}

// String renders the configuration dump printed in verbose mode
func (s *SearchConfig) String() string {
	var b strings.Builder
	b.WriteString("Configuration:\n")
	fmt.Fprintf(&b, "  run_id          -> %s\n", s.RunID)
	fmt.Fprintf(&b, "  words           -> %q\n", s.Words)
	fmt.Fprintf(&b, "  exclude         -> %q\n", s.Exclude)
	fmt.Fprintf(&b, "  dir             -> %q\n", s.Dir)
	fmt.Fprintf(&b, "  recursive       -> %t\n", s.Recursive)
	fmt.Fprintf(&b, "  case_sensitive  -> %t\n", s.CaseSensitive)
	fmt.Fprintf(&b, "  hidden          -> %t\n", s.IncludeHidden)
	fmt.Fprintf(&b, "  all_files       -> %t\n", s.AllFiles)
	fmt.Fprintf(&b, "  full_path       -> %t\n", s.FullPath)
	fmt.Fprintf(&b, "  gitignore       -> %t\n", s.RespectGitignore)
	fmt.Fprintf(&b, "  verbose         -> %t", s.Verbose)
	return b.String()
}
