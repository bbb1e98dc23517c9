package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aockit/pkg/scaffold"
	"github.com/aockit/pkg/workspace"
)

var newDayNumber int

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold new days and parts",
}

var newDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Create the next day directory with a part-1 file",
	Long: `Create the next day in the current repo: one above the highest existing
day directory, up to day 25.

The part file is seeded from templates/part.<ext> at the repo root when
that file exists. Existing directories are never touched.

Examples:
  # From inside advent-of-code-2023/ with day-07 as the latest day
  aockit new day        # creates day-08/part-1.rs

  # Create a specific day out of order
  aockit new day --day 3`,
	Args: cobra.NoArgs,
	RunE: runNewDay,
}

var newPartCmd = &cobra.Command{
	Use:   "part",
	Short: "Copy the current day's latest part to the next part",
	Long: `Create the next part file for the current day by copying the highest
existing part verbatim, typically part-1.rs to part-2.rs.

Examples:
  # From inside advent-of-code-2023/day-07/ containing part-1.rs
  aockit new part       # creates part-2.rs`,
	Args: cobra.NoArgs,
	RunE: runNewPart,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.AddCommand(newDayCmd)
	newCmd.AddCommand(newPartCmd)

	newDayCmd.Flags().IntVarP(&newDayNumber, "day", "d", 0,
		"day to create (default: highest existing day + 1)")
}

func runNewDay(cmd *cobra.Command, args []string) error {
	resolver, cwd, err := newResolver()
	if err != nil {
		return err
	}
	repoDir, year, err := resolver.FindRepo(cwd)
	if err != nil {
		return err
	}

	day := newDayNumber
	if day == 0 {
		highest, err := resolver.HighestDay(repoDir)
		if err != nil {
			return err
		}
		day = highest + 1
	}
	logger.Debug("scaffolding day",
		zap.String("repo", repoDir), zap.Int("year", year), zap.Int("day", day))

	s := scaffold.New(appFs, cfg.Formats, resolver)
	created, err := s.NewDay(repoDir, year, day)
	if err != nil {
		return err
	}
	for _, path := range created {
		fmt.Println(styleCreated.Render("created " + path))
	}
	return nil
}

func runNewPart(cmd *cobra.Command, args []string) error {
	loc, resolver, err := resolveLocation(workspace.Options{})
	if err != nil {
		return err
	}

	s := scaffold.New(appFs, cfg.Formats, resolver)
	created, err := s.NewPart(loc)
	if err != nil {
		return err
	}
	fmt.Println(styleCreated.Render("created " + created))
	return nil
}
