package region

import (
	"math"
	"slices"
	"strings"

	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/level"
)

// Context carries the per-level state shared by every transform: the map to
// scene scale, the level center and the sky texture names.
type Context struct {
	Scale       float64
	Center      geometry.Point
	SkyTextures []string
}

// Identity returns a context that leaves coordinates untouched.
func Identity() Context {
	return Context{Scale: 1}
}

// NewContext centers the level on the midpoint of its vertex extents and
// scales map units by scale.
func NewContext(lvl *level.Level, scale float64, skyTextures []string) Context {
	ctx := Context{Scale: scale, SkyTextures: skyTextures}
	if len(lvl.Vertices) == 0 {
		return ctx
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range lvl.Vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	ctx.Center = geometry.Point{X: (maxX + minX) / 2, Y: (maxY + minY) / 2}
	return ctx
}

// Point maps a position in map units to scene units.
func (c Context) Point(x, y float64) geometry.Point {
	return geometry.Point{
		X: c.Scale * (x - c.Center.X),
		Y: c.Scale * (y - c.Center.Y),
	}
}

// Vertex maps a level vertex to scene units.
func (c Context) Vertex(v level.Vertex) geometry.Point {
	return c.Point(v.X, v.Y)
}

// Height scales a vertical distance. Heights are never re-centered.
func (c Context) Height(h float64) float64 {
	return c.Scale * h
}

// IsSky reports whether texture is one of the sky textures.
func (c Context) IsSky(texture string) bool {
	return slices.Contains(c.SkyTextures, strings.ToUpper(texture))
}
