package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dir != "." {
		t.Errorf("Dir = %q, want %q", cfg.Dir, ".")
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if cfg.CaseSensitive {
		t.Error("CaseSensitive = true, want false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.SaveFormat != SaveFormatText {
		t.Errorf("SaveFormat = %q, want %q", cfg.SaveFormat, SaveFormatText)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `dir: /srv/src
recursive: false
case_sensitive: true
hidden: true
all_files: true
full_path: true
exclude:
  - TODO
  - FIXME
gitignore: true
log_level: debug
save_format: markdown
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/src", cfg.Dir)
	assert.False(t, cfg.Recursive)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.IncludeHidden)
	assert.True(t, cfg.AllFiles)
	assert.True(t, cfg.FullPath)
	assert.Equal(t, []string{"TODO", "FIXME"}, cfg.Exclude)
	assert.True(t, cfg.RespectGitignore)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SaveFormatMarkdown, cfg.SaveFormat)
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoadConfigInvalidYAML tests error handling for malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidYAML := `
recursive: true
exclude: [this is not valid
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

// TestLoadConfigPartialValues tests that partial config merges with defaults
func TestLoadConfigPartialValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("hidden: true\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.IncludeHidden)
	assert.True(t, cfg.Recursive, "recursive should keep its default")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.Dir)
}

func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte("all_files: true\n"), 0644))

	cfg, err := LoadConfigFromDir(tmpDir)
	require.NoError(t, err)
	assert.True(t, cfg.AllFiles)
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude = []string{"from-file"}

	dir := "/data"
	recursive := false
	exclude := []string{"a", "b"}
	level := "warn"

	cfg.MergeWithFlags(Flags{
		Dir:       &dir,
		Recursive: &recursive,
		Exclude:   &exclude,
		LogLevel:  &level,
	})

	assert.Equal(t, "/data", cfg.Dir)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, []string{"a", "b"}, cfg.Exclude)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unset flags leave values untouched
	assert.False(t, cfg.CaseSensitive)
	assert.Equal(t, SaveFormatText, cfg.SaveFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"empty dir", func(c *Config) { c.Dir = "  " }, "dir cannot be empty"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"uppercase log level accepted", func(c *Config) { c.LogLevel = "DEBUG" }, ""},
		{"bad save format", func(c *Config) { c.SaveFormat = "pdf" }, "invalid save_format"},
		{"html save format", func(c *Config) { c.SaveFormat = SaveFormatHTML }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolvedSavePath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "wordscan-results.txt", cfg.ResolvedSavePath())

	cfg.SaveFormat = SaveFormatMarkdown
	assert.Equal(t, "wordscan-results.md", cfg.ResolvedSavePath())

	cfg.SaveFormat = SaveFormatHTML
	assert.Equal(t, "wordscan-results.html", cfg.ResolvedSavePath())

	cfg.SavePath = "/tmp/out.txt"
	assert.Equal(t, "/tmp/out.txt", cfg.ResolvedSavePath())
}

func TestFinalizeCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude = []string{"SKIP", "", "Ignore"}

	sc, err := cfg.Finalize([]string{"Foo", "BAR", "Foo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar", "foo"}, sc.Words, "duplicates are preserved")
	assert.Equal(t, []string{"skip", "ignore"}, sc.Exclude, "empty exclusions are dropped")
	assert.NotEmpty(t, sc.RunID)
}

func TestFinalizeCaseSensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaseSensitive = true
	cfg.Exclude = []string{"SKIP"}

	words := []string{"Foo"}
	sc, err := cfg.Finalize(words)
	require.NoError(t, err)

	assert.Equal(t, []string{"Foo"}, sc.Words)
	assert.Equal(t, []string{"SKIP"}, sc.Exclude)

	sc.Words[0] = "changed"
	assert.Equal(t, "Foo", words[0], "Finalize must copy the caller's slice")
}

func TestFinalizeEmptyWords(t *testing.T) {
	sc, err := DefaultConfig().Finalize(nil)
	require.NoError(t, err)
	assert.Empty(t, sc.Words)
}

func TestFinalizeInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "nope"

	sc, err := cfg.Finalize([]string{"x"})
	assert.Nil(t, sc)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSearchConfigString(t *testing.T) {
	sc, err := DefaultConfig().Finalize([]string{"cat"})
	require.NoError(t, err)

	out := sc.String()
	for _, want := range []string{"Configuration:", `["cat"]`, "recursive       -> true", sc.RunID} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}
}
