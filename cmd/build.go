package cmd

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/packager"
	"github.com/bloodmagesoftware/sectors/project"
	"github.com/bloodmagesoftware/sectors/protobuf"
	"github.com/bloodmagesoftware/sectors/raster"
	"github.com/bloodmagesoftware/sectors/region"
	"github.com/bloodmagesoftware/sectors/scene"
	"github.com/spf13/cobra"
)

var (
	buildOut     string
	buildRaster  bool
	buildZip     bool
	buildTimeout time.Duration
)

var buildCmd = &cobra.Command{
	Use:   "build [level.yaml...]",
	Short: "Convert levels to protobuf scenes",
	Long:  `Converts every level (all levels of the project when none are given) into a .pb scene, optionally with a .qoi region map, and optionally zips the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot, config, err := loadProject()
		if err != nil {
			return err
		}

		paths := args
		if len(paths) == 0 {
			paths, err = findLevels(config.LevelsPath(projectRoot))
			if err != nil {
				return err
			}
		}
		if len(paths) == 0 {
			return fmt.Errorf("no levels found in %s", config.LevelsPath(projectRoot))
		}

		outDir := buildOut
		if outDir == "" {
			outDir = config.OutputPath(projectRoot)
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		fmt.Printf("Preparing level conversion with %s timeout per level...\n", buildTimeout)
		converted := 0
		for relPath, data := range buildLevelsIterator(paths, config, buildTimeout) {
			if err := os.WriteFile(filepath.Join(outDir, relPath), data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", relPath, err)
			}
			if strings.HasSuffix(relPath, ".pb") {
				converted++
			}
		}
		if converted != len(paths) {
			return fmt.Errorf("level conversion failed: %d of %d level(s) converted", converted, len(paths))
		}

		if buildZip {
			packagePath, err := packager.Package(packager.PackageConfig{
				Name:      config.Name,
				SourceDir: outDir,
				OutputDir: filepath.Dir(outDir),
			})
			if err != nil {
				return fmt.Errorf("packaging: %w", err)
			}
			fmt.Printf("\n✅ Build complete: %s\n", packagePath)
			return nil
		}

		fmt.Printf("\n✅ Build complete: %d level(s) in %s\n", converted, outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory (default: output_dir of sectors.yaml)")
	buildCmd.Flags().BoolVarP(&buildRaster, "raster", "r", false, "Also write a .qoi region map per level")
	buildCmd.Flags().BoolVarP(&buildZip, "zip", "z", false, "Zip the output directory")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 30*time.Second, "Timeout per level conversion")
}

// convertLevel loads a YAML level and returns its output files by name.
func convertLevel(yamlPath string, config *project.Config, withRaster bool) (map[string][]byte, error) {
	lvl := level.New("")
	if err := lvl.Load(yamlPath); err != nil {
		return nil, fmt.Errorf("loading level %s: %w", yamlPath, err)
	}

	base := strings.TrimSuffix(filepath.Base(yamlPath), ".yaml")
	if lvl.Name == "" {
		lvl.Name = base
	}

	ctx := region.NewContext(lvl, config.SizeFactor, config.SkyTextures)
	s := scene.Build(lvl, ctx, config.Things, config.StartHeight)

	files := map[string][]byte{
		base + ".pb": protobuf.Marshal(s),
	}

	if withRaster {
		img := raster.Render(region.NewLocator(s.Regions), raster.Config{
			Width:  config.Raster.Width,
			Labels: config.Raster.Labels,
		})
		var buf bytes.Buffer
		if err := raster.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("rendering level %s: %w", yamlPath, err)
		}
		files[base+".qoi"] = buf.Bytes()
	}

	return files, nil
}

// buildLevelsIterator creates an iterator that yields (relativePath, bytes) pairs
// for each level file, with a timeout per level conversion.
// If any level fails or times out, iteration stops.
func buildLevelsIterator(paths []string, config *project.Config, timeout time.Duration) iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, yamlPath := range paths {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)

			type result struct {
				files map[string][]byte
				err   error
			}
			resultChan := make(chan result, 1)

			go func() {
				files, err := convertLevel(yamlPath, config, buildRaster)
				resultChan <- result{files: files, err: err}
			}()

			select {
			case <-ctx.Done():
				fmt.Printf("ERROR: Level conversion timed out after %s: %s\n", timeout, yamlPath)
				cancel()
				return
			case res := <-resultChan:
				cancel()
				if res.err != nil {
					fmt.Printf("ERROR: %v\n", res.err)
					return
				}

				for _, name := range slices.Sorted(maps.Keys(res.files)) {
					fmt.Printf("  Converted: %s -> %s\n", filepath.Base(yamlPath), name)
					if !yield(name, res.files[name]) {
						return
					}
				}
			}
		}
	}
}

// findLevels returns every YAML level file below levelsDir.
func findLevels(levelsDir string) ([]string, error) {
	var matches []string
	err := filepath.Walk(levelsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".yaml") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("walking levels directory: %w", err)
	}
	return matches, nil
}
