package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name looked up in the working directory
const DefaultConfigFile = ".wordscan.yaml"

// Save formats accepted by SaveFormat
const (
	SaveFormatText     = "text"
	SaveFormatMarkdown = "markdown"
	SaveFormatHTML     = "html"
)

// ErrInvalidConfig is returned when configuration validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents wordscan configuration options, from file defaults and CLI flags
type Config struct {
	// Dir is the root directory where the search starts
	Dir string `yaml:"dir"`

	// Recursive enables descent into subdirectories
	Recursive bool `yaml:"recursive"`

	// CaseSensitive disables lower-casing of words, exclusions and lines
	CaseSensitive bool `yaml:"case_sensitive"`

	// IncludeHidden scans entries whose name starts with "."
	IncludeHidden bool `yaml:"hidden"`

	// AllFiles disables the extension allow-list
	AllFiles bool `yaml:"all_files"`

	// FullPath shows full paths instead of base names in the report
	FullPath bool `yaml:"full_path"`

	// Exclude lists substrings that disqualify a line
	Exclude []string `yaml:"exclude"`

	// RespectGitignore skips paths matched by the root .gitignore
	RespectGitignore bool `yaml:"gitignore"`

	// Verbose prints the resolved configuration and run statistics
	Verbose bool `yaml:"verbose"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Save writes the report to SavePath in addition to stdout
	Save bool `yaml:"save"`

	// SaveFormat is one of text, markdown, html
	SaveFormat string `yaml:"save_format"`

	// SavePath overrides the saved report location
	SavePath string `yaml:"save_path"`
}

// DefaultConfig returns a Config with the default search behaviour
func DefaultConfig() *Config {
	return &Config{
		Dir:        ".",
		Recursive:  true,
		LogLevel:   "info",
		SaveFormat: SaveFormatText,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default value
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .wordscan.yaml in the specified directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// Flags holds CLI overrides. Nil fields were not set on the command line.
type Flags struct {
	Dir              *string
	Recursive        *bool
	CaseSensitive    *bool
	IncludeHidden    *bool
	AllFiles         *bool
	FullPath         *bool
	Exclude          *[]string
	RespectGitignore *bool
	Verbose          *bool
	LogLevel         *string
	Save             *bool
	SaveFormat       *string
	SavePath         *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.Dir != nil {
		c.Dir = *f.Dir
	}
	if f.Recursive != nil {
		c.Recursive = *f.Recursive
	}
	if f.CaseSensitive != nil {
		c.CaseSensitive = *f.CaseSensitive
	}
	if f.IncludeHidden != nil {
		c.IncludeHidden = *f.IncludeHidden
	}
	if f.AllFiles != nil {
		c.AllFiles = *f.AllFiles
	}
	if f.FullPath != nil {
		c.FullPath = *f.FullPath
	}
	if f.Exclude != nil {
		c.Exclude = *f.Exclude
	}
	if f.RespectGitignore != nil {
		c.RespectGitignore = *f.RespectGitignore
	}
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Save != nil {
		c.Save = *f.Save
	}
	if f.SaveFormat != nil {
		c.SaveFormat = *f.SaveFormat
	}
	if f.SavePath != nil {
		c.SavePath = *f.SavePath
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("%w: dir cannot be empty", ErrInvalidConfig)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: invalid log_level %q, must be one of: trace, debug, info, warn, error", ErrInvalidConfig, c.LogLevel)
	}

	switch c.SaveFormat {
	case SaveFormatText, SaveFormatMarkdown, SaveFormatHTML:
	default:
		return fmt.Errorf("%w: invalid save_format %q, must be one of: text, markdown, html", ErrInvalidConfig, c.SaveFormat)
	}

	return nil
}

// ResolvedSavePath returns SavePath, or a default file name in the current
// directory matching SaveFormat.
func (c *Config) ResolvedSavePath() string {
	if c.SavePath != "" {
		return c.SavePath
	}
	switch c.SaveFormat {
	case SaveFormatMarkdown:
		return "wordscan-results.md"
	case SaveFormatHTML:
		return "wordscan-results.html"
	default:
		return "wordscan-results.txt"
	}
}

// Finalize validates c and builds the immutable SearchConfig for words.
// Case normalization happens here, once per run.
func (c *Config) Finalize(words []string) (*SearchConfig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sc := &SearchConfig{
		Dir:              c.Dir,
		Words:            make([]string, len(words)),
		Recursive:        c.Recursive,
		CaseSensitive:    c.CaseSensitive,
		IncludeHidden:    c.IncludeHidden,
		AllFiles:         c.AllFiles,
		FullPath:         c.FullPath,
		RespectGitignore: c.RespectGitignore,
		Verbose:          c.Verbose,
		RunID:            uuid.New().String(),
	}
	copy(sc.Words, words)

	for _, term := range c.Exclude {
		if term == "" {
			continue
		}
		sc.Exclude = append(sc.Exclude, term)
	}

	if !sc.CaseSensitive {
		for i, w := range sc.Words {
			sc.Words[i] = strings.ToLower(w)
		}
		for i, e := range sc.Exclude {
			sc.Exclude[i] = strings.ToLower(e)
		}
	}

	return sc, nil
}
