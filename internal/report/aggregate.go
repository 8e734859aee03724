// Package report folds match records into a per-file occurrence table and
// renders it as an aligned text table, a Markdown table or HTML.
package report

import "github.com/harrison/wordscan/internal/models"

// FileCounts is one row of the occurrence table. Counts is aligned with
// Table.Words and always has one cell per configured word.
type FileCounts struct {
	Path    string
	Counts  []int
	Matches int // Number of match records folded into this row
}

// Table is the per-file, per-word occurrence table. It is built once by
// Aggregate and not modified afterwards.
type Table struct {
	Words []string
	Files map[string]*FileCounts
}

// Aggregate builds a Table from records. Every file present in records gets a
// zero-filled row for every word, so the result does not depend on record order.
func Aggregate(records []models.MatchRecord, words []string) *Table {
	table := &Table{
		Words: make([]string, len(words)),
		Files: make(map[string]*FileCounts),
	}
	copy(table.Words, words)

	for _, r := range records {
		row, ok := table.Files[r.Path]
		if !ok {
			row = &FileCounts{Path: r.Path, Counts: make([]int, len(words))}
			table.Files[r.Path] = row
		}

		row.Matches++
		if idx := table.wordIndex(r); idx >= 0 {
			row.Counts[idx] += r.Count
		}
	}

	return table
}

// wordIndex resolves the column for r, falling back to the first column with
// the same label when r.WordIndex does not point at r.Word.
func (t *Table) wordIndex(r models.MatchRecord) int {
	if r.WordIndex >= 0 && r.WordIndex < len(t.Words) && t.Words[r.WordIndex] == r.Word {
		return r.WordIndex
	}
	for i, w := range t.Words {
		if w == r.Word {
			return i
		}
	}
	return -1
}

// Count returns the occurrences of word in path, using the first column
// labelled word. Unknown files or words return 0.
func (t *Table) Count(path, word string) int {
	row, ok := t.Files[path]
	if !ok {
		return 0
	}
	for i, w := range t.Words {
		if w == word {
			return row.Counts[i]
		}
	}
	return 0
}

// WordTotals returns the grand total of each word column, in Words order.
func (t *Table) WordTotals() []int {
	totals := make([]int, len(t.Words))
	for _, row := range t.Files {
		for i, c := range row.Counts {
			totals[i] += c
		}
	}
	return totals
}
