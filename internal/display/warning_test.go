package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWarningTitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf)

	assert.Equal(t, "Warning: Configuration Missing\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[", "buffers never get ANSI codes")
}

func TestDisplayWarningWithFiles(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		wantText string
	}{
		{"single path", []string{"a.txt"}, "    Affected path:\n      1. a.txt\n"},
		{"multiple paths", []string{"a.txt", "b/c.md"}, "    Affected paths:\n      1. a.txt\n      2. b/c.md\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Warning{Title: "T", Files: tt.files}.Display(&buf)
			assert.Contains(t, buf.String(), tt.wantText)
		})
	}
}

func TestDisplayWarningAllFields(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Title",
		Message:    "Message",
		Files:      []string{"x"},
		Suggestion: "Do this",
	}.Display(&buf)

	want := "Warning: Title\n" +
		"    Message\n" +
		"    Affected path:\n" +
		"      1. x\n" +
		"    Suggestion:\n" +
		"    Do this\n"
	assert.Equal(t, want, buf.String())
}

func TestNoMatches(t *testing.T) {
	w := NoMatches("./src", []string{"cat", "d.g"})

	assert.Equal(t, "No matches found", w.Title)
	assert.Contains(t, w.Message, `"cat", "d.g"`)
	assert.Contains(t, w.Message, "./src")
	assert.True(t, strings.Contains(w.Suggestion, "--all"))
}

func TestUnreadablePaths(t *testing.T) {
	w := UnreadablePaths([]string{"a", "b"})

	assert.Equal(t, "2 path(s) could not be read", w.Title)
	assert.Equal(t, []string{"a", "b"}, w.Files)
}
