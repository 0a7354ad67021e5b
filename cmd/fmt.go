package cmd

import (
	"github.com/bloodmagesoftware/sectors/formatter"
	"github.com/spf13/cobra"
)

var (
	fmtCheck bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Format level files",
	Long:  `Rewrites every level file of the project in canonical YAML form (4-space indent, every field spelled out).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, config, err := loadProject()
		if err != nil {
			return err
		}

		levelsDir := config.LevelsPath(projectRoot)

		if fmtCheck {
			return formatter.Check(levelsDir)
		}

		return formatter.Format(levelsDir)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Check formatting without modifying files")
}
