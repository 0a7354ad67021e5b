package level

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NoSide marks an absent side reference on a one-sided linedef.
const NoSide = -1

type (
	Level struct {
		// Name is the map lump name, e.g. E1M1.
		Name     string   `yaml:"name"`
		Vertices []Vertex `yaml:"vertices"`
		// LineDefs reference vertices and sidedefs by index.
		LineDefs []LineDef `yaml:"linedefs"`
		// SideDefs reference the sector they face by index.
		SideDefs []SideDef `yaml:"sidedefs"`
		// Sectors are identified by their index in this list.
		Sectors []Sector `yaml:"sectors"`
		Things  []Thing  `yaml:"things"`
	}

	Vertex struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}

	LineDef struct {
		Start int `yaml:"start"`
		End   int `yaml:"end"`
		// Right is the front sidedef, Left the back one. Either may be NoSide.
		Right   int `yaml:"right"`
		Left    int `yaml:"left"`
		Flags   int `yaml:"flags"`
		Special int `yaml:"special"`
		Tag     int `yaml:"tag"`
	}

	SideDef struct {
		Sector  int    `yaml:"sector"`
		Upper   string `yaml:"upper"`
		Lower   string `yaml:"lower"`
		Middle  string `yaml:"middle"`
		OffsetX int    `yaml:"offset_x"`
		OffsetY int    `yaml:"offset_y"`
	}

	Sector struct {
		FloorHeight    float64 `yaml:"floor_height"`
		CeilingHeight  float64 `yaml:"ceiling_height"`
		FloorTexture   string  `yaml:"floor"`
		CeilingTexture string  `yaml:"ceiling"`
		Light          int     `yaml:"light"`
		Type           int     `yaml:"type"`
		Tag            int     `yaml:"tag"`
	}

	Thing struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		// Angle is in degrees.
		Angle float64 `yaml:"angle"`
		Type  int     `yaml:"type"`
		Flags int     `yaml:"flags"`
	}
)

// UnmarshalYAML decodes a linedef, treating a missing side key as NoSide
// rather than as a reference to sidedef 0.
func (l *LineDef) UnmarshalYAML(value *yaml.Node) error {
	type plain LineDef
	raw := plain{Right: NoSide, Left: NoSide}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*l = LineDef(raw)
	return nil
}

// TwoSided reports whether both sides of the line reference a sidedef.
func (l LineDef) TwoSided() bool {
	return l.Right != NoSide && l.Left != NoSide
}

func New(name string) *Level {
	return &Level{
		Name:     name,
		Vertices: make([]Vertex, 0),
		LineDefs: make([]LineDef, 0),
		SideDefs: make([]SideDef, 0),
		Sectors:  make([]Sector, 0),
		Things:   make([]Thing, 0),
	}
}

func (l *Level) Save(path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return l.Encode(f)
}

// Encode writes the level as YAML with the canonical 4-space indent.
func (l *Level) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(4)

	return encoder.Encode(l)
}

func (l *Level) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := l.Decode(f); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Decode reads a YAML level from r into l.
func (l *Level) Decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	return decoder.Decode(l)
}
