// Package search implements the traversal half of a wordscan run: walking the
// directory tree, scanning eligible files line by line and collecting one
// MatchRecord per matching (line, word) pair.
//
// Execution is single-threaded and depth-first. A run owns exactly one
// models.ScanStats value, which is threaded through every recursive call.
package search

import (
	"fmt"

	"github.com/harrison/wordscan/internal/config"
	"github.com/harrison/wordscan/internal/matcher"
	"github.com/harrison/wordscan/internal/models"
)

// Result is the outcome of a complete run
type Result struct {
	Records []models.MatchRecord
	Stats   *models.ScanStats
}

// TotalMatches sums the occurrence counts of every record
func (r *Result) TotalMatches() int {
	return models.TotalOccurrences(r.Records)
}

// Run compiles the configured words and walks cfg.Dir. Invalid patterns and an
// unreadable root are fatal; everything else is absorbed into the statistics.
func Run(cfg *config.SearchConfig, log Logger) (*Result, error) {
	set, err := matcher.Compile(cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("failed to compile search words: %w", err)
	}

	stats := &models.ScanStats{}
	walker := NewWalker(cfg, set, log)

	records, err := walker.Walk(cfg.Dir, stats)
	if err != nil {
		return nil, err
	}

	return &Result{Records: records, Stats: stats}, nil
}
