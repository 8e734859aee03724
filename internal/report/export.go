package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/wordscan/internal/config"
)

// Header identifies the run a saved report belongs to
type Header struct {
	RunID string
	Dir   string
	Words []string
}

// Export renders a complete saved report in the given save format
// (config.SaveFormatText, SaveFormatMarkdown or SaveFormatHTML).
func Export(table *Table, opts Options, format string, h Header) ([]byte, error) {
	opts.Color = false

	switch format {
	case config.SaveFormatMarkdown:
		return []byte(markdownDocument(table, opts, h)), nil
	case config.SaveFormatHTML:
		html, err := convertMarkdown(markdownDocument(table, opts, h))
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	case config.SaveFormatText, "":
		var b strings.Builder
		fmt.Fprintf(&b, "run:   %s\n", h.RunID)
		fmt.Fprintf(&b, "dir:   %s\n", h.Dir)
		fmt.Fprintf(&b, "words: %s\n\n", strings.Join(h.Words, ", "))
		b.WriteString(Render(table, opts))
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unsupported save format %q", format)
	}
}

func markdownDocument(table *Table, opts Options, h Header) string {
	var b strings.Builder
	b.WriteString("# wordscan results\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", h.RunID)
	fmt.Fprintf(&b, "- Directory: `%s`\n", h.Dir)
	quoted := make([]string, len(h.Words))
	for i, w := range h.Words {
		quoted[i] = "`" + w + "`"
	}
	fmt.Fprintf(&b, "- Words: %s\n\n", strings.Join(quoted, ", "))
	b.WriteString(RenderMarkdown(table, opts))
	return b.String()
}

// RenderMarkdown renders the table as a GitHub-flavoured Markdown pipe table
// with the same ordering as Render.
func RenderMarkdown(table *Table, opts Options) string {
	l := newLayout(table, opts)

	var b strings.Builder

	cells := []string{fileLabel}
	align := []string{"---"}
	for _, col := range l.columns {
		cells = append(cells, escapeCell(col.label))
		align = append(align, "---:")
	}
	writeMarkdownRow(&b, cells)
	writeMarkdownRow(&b, align)

	for _, r := range l.rows {
		cells = []string{escapeCell(r.name)}
		for _, col := range l.columns {
			cells = append(cells, strconv.Itoa(r.counts[col.index]))
		}
		writeMarkdownRow(&b, cells)
	}

	cells = []string{"**" + totalLabel + "**"}
	for _, col := range l.columns {
		cells = append(cells, fmt.Sprintf("**%d**", col.total))
	}
	writeMarkdownRow(&b, cells)

	return b.String()
}

// RenderHTML converts the Markdown report to HTML with goldmark's table extension
func RenderHTML(table *Table, opts Options) (string, error) {
	return convertMarkdown(RenderMarkdown(table, opts))
}

func convertMarkdown(src string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert report to HTML: %w", err)
	}
	return buf.String(), nil
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// escapeCell keeps pipes and backslashes inside words from breaking the table
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}
