package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/harrison/wordscan/internal/config"
	"github.com/harrison/wordscan/internal/fileutil"
	"github.com/harrison/wordscan/internal/matcher"
	"github.com/harrison/wordscan/internal/models"
)

// maxEmptyRun is the number of consecutive empty lines tolerated before a
// file is abandoned.
const maxEmptyRun = 5

// ScanFile scans one file and returns a MatchRecord for every (line, word)
// pair with at least one occurrence.
//
// Files outside the extension allow-list are counted as skipped and never
// opened. Non-regular targets yield no records and no error. Any I/O failure is
// returned to the caller, which decides how to account for it.
func ScanFile(path string, cfg *config.SearchConfig, set *matcher.Set, stats *models.ScanStats) ([]models.MatchRecord, error) {
	if !cfg.AllFiles && !fileutil.HasAllowedExtension(path) {
		stats.Skipped++
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	stats.Analyzed++

	records, err := scanLines(path, file, cfg, set)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// scanLines applies the line policy to r. path is only copied into records.
func scanLines(path string, r io.Reader, cfg *config.SearchConfig, set *matcher.Set) ([]models.MatchRecord, error) {
	var records []models.MatchRecord
	reader := bufio.NewReader(r)
	emptyRun := 0

	for row := 0; ; row++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}
		if readErr != nil && line == "" {
			break
		}

		line = strings.TrimRight(line, "\r\n")
		if !utf8.ValidString(line) {
			line = ""
		}

		if line == "" {
			emptyRun++
			if emptyRun > maxEmptyRun {
				break
			}
		} else {
			emptyRun = 0

			if !cfg.CaseSensitive {
				line = strings.ToLower(line)
			}

			if !isExcluded(line, cfg.Exclude) {
				records = append(records, matchLine(path, row, line, set)...)
			}
		}

		if readErr != nil {
			break
		}
	}

	return records, nil
}

func isExcluded(line string, exclude []string) bool {
	for _, term := range exclude {
		if strings.Contains(line, term) {
			return true
		}
	}
	return false
}

func matchLine(path string, row int, line string, set *matcher.Set) []models.MatchRecord {
	var records []models.MatchRecord
	var text string

	for i := 0; i < set.Len(); i++ {
		count := set.Count(i, line)
		if count == 0 {
			continue
		}
		if text == "" {
			text = strings.TrimSpace(line)
		}
		records = append(records, models.MatchRecord{
			Path:      path,
			Word:      set.Word(i),
			WordIndex: i,
			Row:       row,
			Text:      text,
			Count:     count,
		})
	}

	return records
}
