// Package scene turns a level into everything a renderer needs: carved
// floor/ceiling regions, wall planes, placed sprites and the player start.
package scene

import (
	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/region"
)

// Scene coordinates are right-handed with Y up: map x becomes X, map y
// becomes Z and heights become Y.
type (
	Scene struct {
		Name    string
		Regions []region.Region
		// Start is only meaningful when HasStart is set.
		Start    Start
		HasStart bool
		Sprites  []Sprite
		Planes   []Plane
		// Sky is the number of the sky texture, e.g. "1" for SKY1.
		Sky string
	}

	Start struct {
		X, Y, Z float64
		// Angle is in radians.
		Angle float64
	}

	Sprite struct {
		// Thing is the index of the originating thing.
		Thing    int
		Type     int
		Sprite   string
		Sequence string
		Size     float64
		Region   int
		X, Y, Z  float64
		Angle    float64
	}

	Plane struct {
		Line     int
		Texture  string
		Width    float64
		Height   float64
		X, Y, Z  float64
		Rotation float64
	}
)

// Build runs the full per-level transform.
func Build(lvl *level.Level, ctx region.Context, catalog Catalog, startHeight float64) Scene {
	regions := region.Build(lvl, ctx)
	loc := region.NewLocator(regions)

	start, hasStart := StartPosition(lvl, ctx, loc, startHeight)

	return Scene{
		Name:     lvl.Name,
		Regions:  regions,
		Start:    start,
		HasStart: hasStart,
		Sprites:  PlaceThings(lvl, ctx, loc, catalog),
		Planes:   Planes(lvl, ctx),
		Sky:      SkyNumber(lvl, ctx),
	}
}
