package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jamesainslie/filetally/pkg/filetally/classifier"
	"github.com/jamesainslie/filetally/pkg/filetally/config"
	"github.com/jamesainslie/filetally/pkg/filetally/logging"
	"github.com/jamesainslie/filetally/pkg/filetally/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the filetally command tree. Each call returns a fresh
// command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "filetally [path...]",
		Short: "Count C sources, headers, objects, makefiles, executables and scripts",
		Long: `Filetally classifies each path given on the command line and prints how many
fall into each category.

Paths are classified by name first (.c, makefile/Makefile, .o, .h) and, when
the name is inconclusive, by their leading bytes (#! for shell scripts, ELF
magic for executables). Everything else counts as Other. Paths that do not
exist are reported on stderr and not counted.

Every argument is a path; filetally has no subcommands, so files named
"help", "rules" or "version" are classified like any other.

Examples:
  filetally *                          # Classify everything in the current directory
  filetally -f pretty src/*            # Styled summary
  filetally -v -- -odd-name            # Debug log of each decision; -- ends flags
  filetally --rules                    # Show the rule chain
  filetally --rules --category shell   # Only the rules that yield Shell
  filetally --log-component classifier=debug *.c`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd, v)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, v, args)
		},
	}

	// Paths are the only positional arguments; nothing may be read as a
	// command name.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true, Run: func(*cobra.Command, []string) {}})

	flags := rootCmd.Flags()
	flags.StringP("format", "f", config.DefaultFormat, fmt.Sprintf("report format (%v)", output.Available()))
	flags.String("log-level", config.DefaultLogLevel, "log level for stderr (debug, info, warn, error)")
	flags.StringToString("log-component", nil, "per-component log level, e.g. classifier=debug,cli=info")
	flags.Bool("log-timestamps", false, "prefix log lines with the time of day")
	flags.BoolP("verbose", "v", false, "log every classification decision (same as --log-level debug)")
	flags.Bool("no-color", false, "disable colors in the pretty format")
	flags.Bool("rules", false, "list the classification rules in priority order and exit")
	flags.String("category", "", "with --rules, list only rules for this category id (e.g. shell)")
	flags.Bool("version", false, "print version information and exit")

	// Flags are looked up by name, so binding cannot fail here.
	_ = config.BindFlags(v, flags)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// initLogging configures the logging system from the bound flags.
func initLogging(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.EffectiveLogLevel()
	logCfg.Components = cfg.LogComponents
	logCfg.ReportTimestamp = cfg.LogTimestamps
	logCfg.Output = cmd.ErrOrStderr()
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return nil
}

// runClassify classifies args and prints the summary report. --version and
// --rules print their listing instead and ignore args.
func runClassify(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	switch {
	case cfg.ShowVersion:
		return printVersion(cmd.OutOrStdout())
	case cfg.ShowRules:
		return printRules(cmd.OutOrStdout(), cfg.Category)
	case cfg.Category != "":
		return fmt.Errorf("--category requires --rules")
	}

	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	logger := logging.Get("cli")
	logger.Debug("classifying", "paths", len(args), "format", cfg.Format)

	start := time.Now()
	c := classifier.New(classifier.WithDiagnostics(cmd.ErrOrStderr()))
	summary := c.Run(args)

	result := &output.Result{
		Tally:   summary.Tally,
		Skipped: len(summary.Skipped),
		Elapsed: time.Since(start),
	}
	logger.Info("classification finished",
		"classified", result.Classified(),
		"skipped", result.Skipped,
		"elapsed", result.Elapsed)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		logger.Error("writing report", "error", err)
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// newFormatter resolves the requested report formatter.
func newFormatter(cfg *config.Config) (output.Formatter, error) {
	name := cfg.Format
	if name == "" {
		name = output.DefaultFormat
	}

	formatter, err := output.Get(name)
	if err != nil {
		return nil, fmt.Errorf("invalid --format %q (available: %v): %w", name, output.Available(), err)
	}

	if pretty, ok := formatter.(*output.PrettyFormatter); ok {
		pretty.NoColor = cfg.NoColor
	} else if cfg.NoColor {
		logging.Get("cli").Warn("--no-color only affects the pretty format", "format", name)
	}
	return formatter, nil
}
