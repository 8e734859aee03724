// Package display formats user-facing warnings written next to the report.
//
// A Warning has a title and optional message, path list and suggestion:
//
//	display.Warning{
//	    Title:      "Unreadable Paths",
//	    Files:      []string{"src/secret.txt"},
//	    Suggestion: "Check file permissions",
//	}.Display(os.Stderr)
//
// Colour is applied only when the destination is a terminal and NO_COLOR is
// not set.
package display
