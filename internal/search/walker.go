package search

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/wordscan/internal/config"
	"github.com/harrison/wordscan/internal/fileutil"
	"github.com/harrison/wordscan/internal/matcher"
	"github.com/harrison/wordscan/internal/models"
)

// Logger is the subset of the console logger used during traversal
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
}

type discardLogger struct{}

func (discardLogger) LogTrace(string) {}
func (discardLogger) LogDebug(string) {}
func (discardLogger) LogWarn(string)  {}

// Walker traverses a directory tree depth-first and collects match records.
type Walker struct {
	cfg     *config.SearchConfig
	set     *matcher.Set
	log     Logger
	root    string
	ignorer fileutil.Ignorer
}

// NewWalker creates a Walker. A nil log discards messages.
func NewWalker(cfg *config.SearchConfig, set *matcher.Set, log Logger) *Walker {
	if log == nil {
		log = discardLogger{}
	}

	w := &Walker{
		cfg:  cfg,
		set:  set,
		log:  log,
		root: cfg.Dir,
	}
	if cfg.RespectGitignore {
		w.ignorer = fileutil.LoadGitignore(cfg.Dir)
	}
	return w
}

// Walk scans dir and, when recursion is enabled, its subdirectories. Only a
// failure to list dir itself is returned; unreadable files and subdirectories
// are counted in stats and contribute nothing.
func (w *Walker) Walk(dir string, stats *models.ScanStats) ([]models.MatchRecord, error) {
	records, err := w.walkDir(dir, stats)
	if err != nil {
		return nil, &RootError{Path: dir, Err: err}
	}
	return records, nil
}

func (w *Walker) walkDir(dir string, stats *models.ScanStats) ([]models.MatchRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var records []models.MatchRecord
	for _, entry := range entries {
		name := entry.Name()
		if !w.cfg.IncludeHidden && fileutil.IsHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if !w.cfg.Recursive {
				continue
			}
			if fileutil.IsIgnored(w.ignorer, w.root, path, true) {
				w.log.LogTrace(fmt.Sprintf("ignored directory %s", path))
				continue
			}

			found, err := w.walkDir(path, stats)
			if err != nil {
				stats.MarkUnreadable(path)
				w.log.LogWarn(fmt.Sprintf("skipping unreadable directory %s: %v", path, err))
				continue
			}
			records = append(records, found...)
			continue
		}

		stats.Seen++

		if fileutil.IsIgnored(w.ignorer, w.root, path, false) {
			stats.Skipped++
			w.log.LogTrace(fmt.Sprintf("ignored file %s", path))
			continue
		}

		found, err := ScanFile(path, w.cfg, w.set, stats)
		if err != nil {
			stats.MarkUnreadable(path)
			w.log.LogWarn(fmt.Sprintf("skipping unreadable file: %v", err))
			continue
		}
		if len(found) > 0 {
			w.log.LogTrace(fmt.Sprintf("%s: %d matching lines", path, len(found)))
		}
		records = append(records, found...)
	}

	return records, nil
}
