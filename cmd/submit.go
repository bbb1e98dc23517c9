package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aockit/pkg/answer"
	"github.com/aockit/pkg/aoc"
	"github.com/aockit/pkg/runner"
	"github.com/aockit/pkg/template"
	"github.com/aockit/pkg/workspace"
)

var (
	submitPart  int
	submitStdin bool
	submitYes   bool
)

var submitCmd = &cobra.Command{
	Use:   "submit [-]",
	Short: "Submit an answer for the resolved day and part",
	Long: `Submit an answer to the puzzle endpoint.

By default the configured run command is executed and the last non-empty
line of its output is submitted. With --stdin (or a piped stdin, or "-")
the answer is read from standard input instead.

The verdict from the site (correct, incorrect, too recent, already solved)
is reported verbatim; submissions are never retried automatically because
the site enforces a cooldown between attempts.

Examples:
  # Run the current part and submit its final output line
  aockit submit

  # Submit part 1's answer even though part-2.rs already exists
  aockit submit --part 1

  # Submit a value computed elsewhere
  echo 300 | aockit submit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().IntVarP(&submitPart, "part", "p", 0,
		"part to submit for (default: highest existing part)")
	submitCmd.Flags().BoolVar(&submitStdin, "stdin", false,
		"read the answer from standard input")
	submitCmd.Flags().BoolVarP(&submitYes, "yes", "y", false,
		"submit without asking for confirmation")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if args[0] != "-" {
			return fmt.Errorf("unexpected argument %q (did you mean \"-\"?)", args[0])
		}
		submitStdin = true
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	source := answer.ChooseSource(submitStdin, !interactive, submitPart > 0)
	logger.Debug("answer source chosen", zap.Stringer("source", source))

	loc, _, err := resolveLocation(workspace.Options{Part: submitPart, NeedPart: true})
	if err != nil {
		return err
	}

	var value string
	switch source {
	case answer.FromStdin:
		value, err = answer.FromReader(os.Stdin)
		if err != nil {
			return err
		}
	case answer.FromProcess:
		command, err := template.Render(cfg.Commands.Run, loc.Context)
		if err != nil {
			return err
		}
		res, err := runner.New().Run(cmd.Context(), loc.DayDir, command)
		if err != nil {
			return err
		}
		if res.ExitCode != 0 {
			return fmt.Errorf("%q exited with code %d; not submitting its output", command, res.ExitCode)
		}
		value, err = answer.FromRun(res, command)
		if err != nil {
			return err
		}
	}

	// Only prompt when the answer came from a process run and stdin is a
	// terminal; in stdin mode the input is already consumed (and the pipe
	// was deliberate anyway).
	if !submitYes && interactive && source == answer.FromProcess {
		ok := true
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Submit %q for %d day %d part %d?", value, loc.Year, loc.Day, loc.Part),
			Default: true,
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return err
		}
		if !ok {
			fmt.Println(styleDim.Render("submission aborted"))
			return nil
		}
	}

	session, err := aoc.ResolveSession(appFs)
	if err != nil {
		return err
	}
	client := aoc.NewClient(cfg.Download.BaseURL, session)

	sub, err := client.SubmitAnswer(cmd.Context(), loc.Year, loc.Day, loc.Part, value)
	if err != nil {
		return err
	}

	fmt.Println(renderVerdict(sub))
	switch sub.Verdict {
	case aoc.VerdictCorrect, aoc.VerdictAlreadySolved:
		return nil
	default:
		return fmt.Errorf("answer %q was not accepted", value)
	}
}
