package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aockit/pkg/aoc"
	"github.com/aockit/pkg/workspace"
)

var inputDay int

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Download puzzle input for the resolved day",
	Long: `Download the puzzle input for the current day and save it next to the
part files (input.txt by default).

The day is taken from the directory you are in. Existing input files are
never overwritten.

Examples:
  # From inside advent-of-code-2023/day-07/
  aockit input

  # From the repo root, for a specific day
  aockit input --day 7`,
	Args: cobra.NoArgs,
	RunE: runInput,
}

func init() {
	rootCmd.AddCommand(inputCmd)

	inputCmd.Flags().IntVarP(&inputDay, "day", "d", 0,
		"day to download input for (default: resolved from the working directory)")
}

func runInput(cmd *cobra.Command, args []string) error {
	loc, resolver, err := resolveLocation(workspace.Options{Day: inputDay})
	if err != nil {
		return err
	}

	path, err := resolver.InputPath(loc)
	if err != nil {
		return err
	}
	if ok, err := afero.Exists(appFs, path); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("input file already exists: %s", path)
	}

	session, err := aoc.ResolveSession(appFs)
	if err != nil {
		return err
	}

	client := aoc.NewClient(cfg.Download.BaseURL, session)
	data, err := client.FetchInput(cmd.Context(), loc.Year, loc.Day)
	if err != nil {
		return err
	}

	if err := appFs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := afero.WriteFile(appFs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Println(styleCreated.Render(fmt.Sprintf("saved %d bytes to %s", len(data), path)))
	return nil
}
