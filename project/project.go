package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/sectors/raster"
	"github.com/bloodmagesoftware/sectors/scene"
)

const configFileName = "sectors.yaml"

// Config represents the project configuration from sectors.yaml.
type Config struct {
	Name        string        `yaml:"name"`
	LevelsDir   string        `yaml:"levels_dir"`
	OutputDir   string        `yaml:"output_dir"`
	SizeFactor  float64       `yaml:"size_factor"`
	SkyTextures []string      `yaml:"sky_textures"`
	StartHeight float64       `yaml:"start_height"`
	Raster      RasterConfig  `yaml:"raster"`
	Things      scene.Catalog `yaml:"things"`
}

type RasterConfig struct {
	Width  int  `yaml:"width"`
	Labels bool `yaml:"labels"`
}

// Default returns the configuration used when a field is left out, or when
// there is no project file at all.
func Default() *Config {
	return &Config{
		Name:        "sectors",
		LevelsDir:   "levels",
		OutputDir:   "public",
		SizeFactor:  0.0625,
		SkyTextures: []string{"F_SKY1", "SKY1", "SKY2", "SKY3", "SKY4"},
		StartHeight: 0.1,
		Raster:      RasterConfig{Width: 512},
	}
}

// FindProjectRoot walks up from the current working directory looking for sectors.yaml.
// Returns the directory containing sectors.yaml, or an error if not found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory of %s", configFileName, cwd)
		}
		dir = parent
	}
}

// LoadConfig loads and parses the sectors.yaml file from the given project root.
// Fields missing from the file keep their defaults.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	config := Default()
	// A project file must name the project itself.
	config.Name = ""
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", configFileName, err)
	}

	return config, nil
}

// Validate rejects values the build cannot work with.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("'name' field is required")
	}
	if c.SizeFactor <= 0 {
		return fmt.Errorf("'size_factor' must be positive, got %v", c.SizeFactor)
	}
	if c.Raster.Width <= 0 {
		return fmt.Errorf("'raster.width' must be positive, got %d", c.Raster.Width)
	}
	if c.Raster.Width > raster.MaxDimension {
		return fmt.Errorf("'raster.width' must be at most %d, got %d", raster.MaxDimension, c.Raster.Width)
	}
	for typ, def := range c.Things {
		if def.Height < 0 {
			return fmt.Errorf("thing %d: 'height' must not be negative", typ)
		}
	}
	return nil
}

// LevelsPath returns the absolute levels directory.
func (c *Config) LevelsPath(projectRoot string) string {
	return resolve(projectRoot, c.LevelsDir)
}

// OutputPath returns the absolute output directory.
func (c *Config) OutputPath(projectRoot string) string {
	return resolve(projectRoot, c.OutputDir)
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
