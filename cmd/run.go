package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aockit/pkg/runner"
	"github.com/aockit/pkg/template"
	"github.com/aockit/pkg/workspace"
)

var runPart int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the solution for the resolved day and part",
	Long: `Render the configured run command for the current day and part and
execute it in the day directory.

The command template comes from the [commands] section of aockit.toml;
{file} expands to the resolved part file name.

Examples:
  # Run the highest part of the current day
  aockit run

  # Run part 1 explicitly
  aockit run --part 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return execCommandTemplate(cmd, cfg.Commands.Run, runPart)
	},
}

var testPart int

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the solution for the resolved day and part",
	Long: `Render the configured test command for the current day and part and
execute it in the day directory.

Examples:
  aockit test
  aockit test --part 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return execCommandTemplate(cmd, cfg.Commands.Test, testPart)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(testCmd)

	runCmd.Flags().IntVarP(&runPart, "part", "p", 0,
		"part to run (default: highest existing part)")
	testCmd.Flags().IntVarP(&testPart, "part", "p", 0,
		"part to test (default: highest existing part)")
}

// execCommandTemplate renders a command template against the resolved
// context and executes it in the day directory, propagating the child's
// exit code.
func execCommandTemplate(cmd *cobra.Command, tmpl string, part int) error {
	loc, _, err := resolveLocation(workspace.Options{Part: part, NeedPart: true})
	if err != nil {
		return err
	}

	command, err := template.Render(tmpl, loc.Context)
	if err != nil {
		return err
	}
	logger.Debug("rendered command",
		zap.String("template", tmpl),
		zap.String("command", command),
		zap.String("dir", loc.DayDir))

	res, err := runner.New().Run(cmd.Context(), loc.DayDir, command)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return exitCodeError{code: res.ExitCode}
	}
	return nil
}
