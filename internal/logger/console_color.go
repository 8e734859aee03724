package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/wordscan/internal/models"
)

// colorScheme defines consistent colors for different metric types.
// Green: files actually scanned and matches
// Red: unreadable paths
// Yellow: skipped files
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatColorizedStats formats scan statistics with color coding.
// Format: "seen: N, analyzed: N, skipped: N, unreadable: N, matches: N"
// Zero-valued warning and failure metrics keep the neutral colour.
func formatColorizedStats(stats *models.ScanStats, matches int) string {
	scheme := newColorScheme()
	parts := []string{formatColorizedMetric("seen", stats.Seen, scheme)}

	parts = append(parts, fmt.Sprintf("%s: %s",
		scheme.success.Sprint("analyzed"), scheme.value.Sprintf("%d", stats.Analyzed)))

	if stats.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s",
			scheme.warn.Sprint("skipped"), scheme.warn.Sprintf("%d", stats.Skipped)))
	} else {
		parts = append(parts, formatColorizedMetric("skipped", stats.Skipped, scheme))
	}

	if stats.Unreadable > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s",
			scheme.fail.Sprint("unreadable"), scheme.fail.Sprintf("%d", stats.Unreadable)))
	} else {
		parts = append(parts, formatColorizedMetric("unreadable", stats.Unreadable, scheme))
	}

	parts = append(parts, fmt.Sprintf("%s: %s",
		scheme.success.Sprint("matches"), scheme.value.Sprintf("%d", matches)))

	return strings.Join(parts, ", ")
}
