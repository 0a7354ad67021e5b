package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bloodmagesoftware/sectors/project"
	"github.com/bloodmagesoftware/sectors/region"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Sectors - Level geometry converter for Doom-style maps",
	Long: `Sectors turns Doom-style levels (vertices, linedefs, sidedefs, sectors)
into carved floor/ceiling polygons, wall planes and placed sprites,
and writes them as protobuf scenes with optional debug rasters.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		region.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log carve decisions and other debug diagnostics")
}

// getProjectRoot returns the project root directory by looking for sectors.yaml.
func getProjectRoot() (string, error) {
	return project.FindProjectRoot()
}

// loadProject returns the project root and its configuration. Outside a
// project the working directory and the default configuration are used.
func loadProject() (string, *project.Config, error) {
	projectRoot, err := getProjectRoot()
	if err != nil {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return "", nil, fmt.Errorf("getting current directory: %w", cwdErr)
		}
		return cwd, project.Default(), nil
	}

	config, err := project.LoadConfig(projectRoot)
	if err != nil {
		return "", nil, fmt.Errorf("loading project config: %w", err)
	}
	return projectRoot, config, nil
}
