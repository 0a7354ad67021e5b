package region

import (
	"github.com/golang/geo/r2"

	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/level"
)

// Region is the floor/ceiling area of one sector as a single closed polygon
// in scene units. ID is the sector index.
type Region struct {
	ID      int
	Polygon geometry.Polygon
	// Bounds is computed from the assembled polygon before carving.
	Bounds r2.Rect

	FloorHeight    float64
	CeilingHeight  float64
	FloorTexture   string
	CeilingTexture string
	Light          int
	IsSkyCeiling   bool
}

// Build converts every sector of lvl into a carved Region. The result is
// indexed by sector.
//
// Malformed sectors never abort the build: they are logged and produce a
// best-effort, possibly empty, polygon.
func Build(lvl *level.Level, ctx Context) []Region {
	extractor := NewExtractor(lvl)
	regions := make([]Region, len(lvl.Sectors))

	for id, sector := range lvl.Sectors {
		log := Logger().With("region", id)

		raw := Assemble(extractor.Edges(id), log)
		raw.Normalize()

		polygon := make(geometry.Polygon, len(raw))
		for i, p := range raw {
			polygon[i] = ctx.Point(p.X, p.Y)
		}
		if n := len(polygon); n > 0 && n < 3 {
			log.Warn("region polygon has fewer than 3 points", "points", n)
		}

		regions[id] = Region{
			ID:             id,
			Polygon:        polygon,
			Bounds:         polygon.Bounds(),
			FloorHeight:    ctx.Height(sector.FloorHeight),
			CeilingHeight:  ctx.Height(sector.CeilingHeight),
			FloorTexture:   sector.FloorTexture,
			CeilingTexture: sector.CeilingTexture,
			Light:          sector.Light,
			IsSkyCeiling:   ctx.IsSky(sector.CeilingTexture),
		}
	}

	Carve(regions, Logger())
	return regions
}
