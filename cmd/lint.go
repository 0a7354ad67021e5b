package cmd

import (
	"github.com/bloodmagesoftware/sectors/linter"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [level.yaml...]",
	Short: "Check levels for broken references and unclosed sectors",
	Long:  `Loads every level (all levels of the project when none are given) and reports dangling references, orphan or shared sidedefs, sectors that are empty or not closed, and a missing player start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := levelArgs(args)
		if err != nil {
			return err
		}

		return linter.Lint(paths...)
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// levelArgs returns the given level files, or every level of the project.
func levelArgs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	projectRoot, config, err := loadProject()
	if err != nil {
		return nil, err
	}
	return findLevels(config.LevelsPath(projectRoot))
}
