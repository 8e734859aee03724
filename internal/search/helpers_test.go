package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/wordscan/internal/config"
	"github.com/harrison/wordscan/internal/matcher"
	"github.com/stretchr/testify/require"
)

// writeFiles creates each relative path under root with the given content
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// newSearchConfig finalizes a default config rooted at dir, after applying mutate
func newSearchConfig(t *testing.T, dir string, words []string, mutate func(*config.Config)) *config.SearchConfig {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Dir = dir
	if mutate != nil {
		mutate(cfg)
	}
	sc, err := cfg.Finalize(words)
	require.NoError(t, err)
	return sc
}

func compile(t *testing.T, sc *config.SearchConfig) *matcher.Set {
	t.Helper()
	set, err := matcher.Compile(sc.Words)
	require.NoError(t, err)
	return set
}
