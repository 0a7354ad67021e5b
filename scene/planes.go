package scene

import (
	"math"
	"strings"

	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/region"
)

// minPlaneHeight drops walls that collapse to nothing, e.g. the lower
// texture between two floors of equal height.
const minPlaneHeight = 0.0001

func hasTexture(name string) bool {
	return name != "" && name != "-"
}

// Planes returns one upright quad for every visible wall texture: the
// middle texture of each side, plus the upper and lower textures where a
// two-sided line steps between ceilings or floors. Upper textures facing a
// sky ceiling are left out so the sky shows through.
func Planes(lvl *level.Level, ctx region.Context) []Plane {
	log := region.Logger()

	var planes []Plane
	for i, line := range lvl.LineDefs {
		if !lvl.HasVertex(line.Start) || !lvl.HasVertex(line.End) {
			log.Warn("line references a missing vertex", "line", i, "start", line.Start, "end", line.End)
			continue
		}
		start, end := lvl.Vertices[line.Start], lvl.Vertices[line.End]
		run, rise := end.X-start.X, end.Y-start.Y
		mid := ctx.Point((start.X+end.X)/2, (start.Y+end.Y)/2)

		base := Plane{
			Line:  i,
			Width: ctx.Height(math.Hypot(run, rise)),
			X:     mid.X,
			Z:     mid.Y,
		}

		right, left := sectorAt(lvl, line.Right), sectorAt(lvl, line.Left)
		if left != nil {
			base.Rotation = math.Atan2(-rise, -run)
			planes = appendSide(planes, base, ctx, lvl.SideDefs[line.Left], left, right)
		}
		if right != nil {
			base.Rotation = math.Atan2(rise, run)
			planes = appendSide(planes, base, ctx, lvl.SideDefs[line.Right], right, left)
		}
	}
	return planes
}

func sectorAt(lvl *level.Level, side int) *level.Sector {
	s := lvl.SectorOf(side)
	if s < 0 {
		return nil
	}
	return &lvl.Sectors[s]
}

// appendSide adds the planes drawn by side, which faces front. back is the
// sector behind the line, nil for one-sided lines.
func appendSide(planes []Plane, base Plane, ctx region.Context, side level.SideDef, front, back *level.Sector) []Plane {
	add := func(texture string, bottom, top float64) {
		p := base
		p.Texture = strings.ToUpper(texture)
		p.Y = ctx.Height((bottom + top) / 2)
		p.Height = ctx.Height(top - bottom)
		if p.Height > minPlaneHeight {
			planes = append(planes, p)
		}
	}

	if hasTexture(side.Middle) {
		add(side.Middle, front.FloorHeight, front.CeilingHeight)
	}
	if back == nil {
		return planes
	}
	if hasTexture(side.Upper) && !ctx.IsSky(back.CeilingTexture) {
		add(side.Upper, back.CeilingHeight, front.CeilingHeight)
	}
	if hasTexture(side.Lower) {
		add(side.Lower, front.FloorHeight, back.FloorHeight)
	}
	return planes
}
