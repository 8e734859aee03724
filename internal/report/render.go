package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	fileLabel  = "file"
	totalLabel = "TOTAL"
	separator  = " | "
)

// Options controls how a table is rendered
type Options struct {
	// FullPath shows the full path instead of the base file name
	FullPath bool
	// Color emphasises the header and TOTAL rows with ANSI attributes
	Color bool
}

type column struct {
	index int
	label string
	total int
	width int
}

type row struct {
	name   string
	path   string
	counts []int
}

// layout is the renderer-independent shape of a report: columns ordered by
// descending total and rows ordered by display name descending.
type layout struct {
	columns   []column
	rows      []row
	fileWidth int
}

func newLayout(table *Table, opts Options) layout {
	totals := table.WordTotals()

	columns := make([]column, len(table.Words))
	for i, word := range table.Words {
		columns[i] = column{
			index: i,
			label: word,
			total: totals[i],
			width: max(utf8.RuneCountInString(word), len(strconv.Itoa(totals[i]))),
		}
	}
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].total > columns[j].total
	})

	rows := make([]row, 0, len(table.Files))
	fileWidth := len(totalLabel)
	for path, counts := range table.Files {
		name := displayName(path, opts.FullPath)
		fileWidth = max(fileWidth, utf8.RuneCountInString(name))
		rows = append(rows, row{name: name, path: path, counts: counts.Counts})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name != rows[j].name {
			return rows[i].name > rows[j].name
		}
		return rows[i].path > rows[j].path
	})

	return layout{columns: columns, rows: rows, fileWidth: fileWidth}
}

func displayName(path string, fullPath bool) string {
	if fullPath {
		return path
	}
	return filepath.Base(path)
}

// Render returns the aligned text report: a header, one line per file and a
// TOTAL line, columns separated by " | " and right-aligned.
func Render(table *Table, opts Options) string {
	l := newLayout(table, opts)
	emphasis := color.New(color.Bold)

	var b strings.Builder

	header := padLeft(fileLabel, l.fileWidth)
	for _, col := range l.columns {
		header += separator + padLeft(col.label, col.width)
	}
	writeLine(&b, header, opts.Color, emphasis)

	for _, r := range l.rows {
		line := padLeft(r.name, l.fileWidth)
		for _, col := range l.columns {
			line += separator + padLeft(strconv.Itoa(r.counts[col.index]), col.width)
		}
		writeLine(&b, line, false, nil)
	}

	totalLine := padLeft(totalLabel, l.fileWidth)
	for _, col := range l.columns {
		totalLine += separator + padLeft(strconv.Itoa(col.total), col.width)
	}
	writeLine(&b, totalLine, opts.Color, emphasis)

	return b.String()
}

func writeLine(b *strings.Builder, line string, colored bool, c *color.Color) {
	if colored && c != nil {
		line = c.Sprint(line)
	}
	b.WriteString(line)
	b.WriteString("\n")
}

// padLeft right-aligns s in a field of width runes
func padLeft(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}
