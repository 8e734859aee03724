package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the formatted warning to out, in yellow when out is a terminal
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected path:\n")
		} else {
			b.WriteString("    Affected paths:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if useColor(out) {
		text = color.New(color.FgYellow).Sprint(text)
	}
	fmt.Fprint(out, text)
}

func useColor(out io.Writer) bool {
	if out != os.Stdout && out != os.Stderr {
		return false
	}
	return !color.NoColor
}

// NoMatches creates the warning shown instead of an empty report
func NoMatches(dir string, words []string) Warning {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}

	return Warning{
		Title:      "No matches found",
		Message:    fmt.Sprintf("None of %s occur in eligible files under %s", strings.Join(quoted, ", "), dir),
		Suggestion: "Try --all to scan every file type, --hidden to include hidden entries, or drop --case-sensitive",
	}
}

// UnreadablePaths creates a warning listing paths that could not be read
func UnreadablePaths(paths []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("%d path(s) could not be read", len(paths)),
		Files:      paths,
		Suggestion: "Check permissions on the listed paths",
	}
}
