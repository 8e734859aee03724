package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the wordscan root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordscan [flags] word [word...]",
		Short: "Count word and pattern occurrences across a directory tree",
		Long: `wordscan walks a directory, scans text files line by line and prints a
table of how often each word occurs in each file.

Words are regular expressions. Matching is case-insensitive unless
--case-sensitive is given. Lines containing any --exclude substring are
ignored, and a file is abandoned after more than 5 consecutive empty lines.

By default only .py .md .rst .rs .js .html .txt .c .tf and .tfstate files
are scanned and hidden entries are skipped.

Configuration is loaded from .wordscan.yaml if present.
CLI flags override configuration file settings.

Examples:
  wordscan cat dog
  wordscan -d ./src -e TODO,FIXME 'err(or)?'
  wordscan --flat --all --full-path password
  wordscan -v --save --save-format markdown deprecated`,
		Args:    cobra.MinimumNArgs(1),
		Version: Version,
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringP("dir", "d", ".", "Root directory to search")
	flags.BoolP("flat", "f", false, "Do not descend into subdirectories")
	flags.BoolP("case-sensitive", "c", false, "Match words and exclusions case-sensitively")
	flags.StringSliceP("exclude", "e", nil, "Comma-separated substrings; lines containing any are ignored")
	flags.BoolP("all", "a", false, "Scan every file regardless of extension")
	flags.BoolP("hidden", "H", false, "Include hidden files and directories")
	flags.BoolP("full-path", "p", false, "Show full paths instead of file names")
	flags.BoolP("verbose", "v", false, "Print the resolved configuration and run statistics")
	flags.BoolP("save", "s", false, "Also write the results to a file")
	flags.String("save-format", "text", "Saved results format: text, markdown, html")
	flags.String("save-path", "", "Saved results path (default: wordscan-results.<ext> in the current directory)")
	flags.Bool("gitignore", false, "Skip paths matched by the root directory's .gitignore")
	flags.String("config", "", "Path to config file (default: .wordscan.yaml)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")

	return cmd
}
