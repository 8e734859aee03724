package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/wordscan/internal/config"
	"github.com/harrison/wordscan/internal/display"
	"github.com/harrison/wordscan/internal/filelock"
	"github.com/harrison/wordscan/internal/logger"
	"github.com/harrison/wordscan/internal/report"
	"github.com/harrison/wordscan/internal/search"
)

// runSearch implements the root command
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.MergeWithFlags(flagOverrides(cmd))
	if cfg.Verbose && !isMoreVerbose(cfg.LogLevel, "debug") {
		cfg.LogLevel = "debug"
	}

	sc, err := cfg.Finalize(args)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if sc.Verbose {
		log.LogConfig(sc)
	}

	result, err := search.Run(sc, log)
	if err != nil {
		return err
	}

	if sc.Verbose {
		log.LogStats(result.Stats, result.TotalMatches())
		if len(result.Stats.Failed) > 0 {
			display.UnreadablePaths(result.Stats.Failed).Display(stderr)
		}
	}

	out := cmd.OutOrStdout()
	table := report.Aggregate(result.Records, sc.Words)
	opts := report.Options{FullPath: sc.FullPath, Color: isColorTerminal(out)}

	if len(result.Records) == 0 {
		display.NoMatches(sc.Dir, sc.Words).Display(stderr)
	} else {
		fmt.Fprint(out, report.Render(table, opts))
	}

	if cfg.Save {
		path := cfg.ResolvedSavePath()
		data, err := report.Export(table, opts, cfg.SaveFormat, report.Header{
			RunID: sc.RunID,
			Dir:   sc.Dir,
			Words: sc.Words,
		})
		if err != nil {
			return fmt.Errorf("failed to render saved results: %w", err)
		}
		if err := filelock.LockAndWrite(path, data); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		log.LogInfo(fmt.Sprintf("Results saved to %s", path))
	}

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects only the flags the user set explicitly, so config
// file values survive flag defaults.
func flagOverrides(cmd *cobra.Command) config.Flags {
	flags := cmd.Flags()
	var f config.Flags

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	f.Dir = stringFlag("dir")
	if flat := boolFlag("flat"); flat != nil {
		recursive := !*flat
		f.Recursive = &recursive
	}
	f.CaseSensitive = boolFlag("case-sensitive")
	if flags.Changed("exclude") {
		exclude, _ := flags.GetStringSlice("exclude")
		f.Exclude = &exclude
	}
	f.AllFiles = boolFlag("all")
	f.IncludeHidden = boolFlag("hidden")
	f.FullPath = boolFlag("full-path")
	f.Verbose = boolFlag("verbose")
	f.Save = boolFlag("save")
	f.SaveFormat = stringFlag("save-format")
	f.SavePath = stringFlag("save-path")
	f.RespectGitignore = boolFlag("gitignore")
	f.LogLevel = stringFlag("log-level")

	return f
}

// isMoreVerbose reports whether level already shows everything want shows.
// Unknown levels are left alone for Validate to reject.
func isMoreVerbose(level, want string) bool {
	order := map[string]int{"trace": 0, "debug": 1, "info": 2, "warn": 3, "error": 4}
	l, ok := order[strings.ToLower(level)]
	if !ok {
		return true
	}
	return l <= order[want]
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
