package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aockit/pkg/config"
)

var (
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger

	appFs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "aockit",
	Short: "Advent of Code workflow helper",
	Long: `aockit automates the routine parts of solving Advent of Code puzzles.

It infers the current year, day and part from the directory you are in
(advent-of-code-2023/day-07/part-2.rs and friends, configurable through
aockit.toml) and uses that context to:

  - download puzzle input           aockit input
  - run or test your solution       aockit run, aockit test
  - submit an answer                aockit submit
  - scaffold the next day or part   aockit new day, aockit new part

The session cookie is read from $AOC_SESSION or ~/.adventofcode.session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err = config.Load(appFs, cfgFile, cwd)
		if err != nil {
			return err
		}
		if cfg.Path != "" {
			logger.Debug("config loaded", zap.String("path", cfg.Path))
		} else {
			logger.Debug("using built-in config defaults")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("error:"), err)
		var coded exitCodeError
		if errors.As(err, &coded) {
			os.Exit(coded.code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: aockit.toml found upward from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print debug information about context resolution")
}

// exitCodeError propagates a child process's exit code through Execute.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
