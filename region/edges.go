package region

import (
	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/level"
)

// NoRegion marks the absence of a region, e.g. behind a one-sided wall.
const NoRegion = -1

// Edge is one directed wall segment on a region's perimeter, in map units.
type Edge struct {
	Start, End geometry.Point
	// Neighbor is the region on the far side of the originating line, or
	// NoRegion for one-sided lines.
	Neighbor int
	// Line is the originating linedef index.
	Line int
}

// Extractor derives per-region boundary edges from raw level arrays.
type Extractor struct {
	lvl    *level.Level
	owners [][]level.Owner
}

// NewExtractor indexes sidedef ownership once for the whole level.
func NewExtractor(lvl *level.Level) *Extractor {
	return &Extractor{lvl: lvl, owners: lvl.Owners()}
}

// Edges returns the boundary edges of region r in sidedef order.
//
// Lines with r on both sides partition the region internally and are not
// part of its boundary. A sidedef with no owning linedef, or whose linedef
// references a missing vertex, is reported and skipped.
func (e *Extractor) Edges(r int) []Edge {
	log := Logger().With("region", r)

	var edges []Edge
	for side, sd := range e.lvl.SideDefs {
		if sd.Sector != r {
			continue
		}

		owners := e.owners[side]
		if len(owners) == 0 {
			log.Warn("sidedef has no owning linedef", "sidedef", side)
			continue
		}

		for _, owner := range owners {
			line := e.lvl.LineDefs[owner.Line]
			if !e.lvl.HasVertex(line.Start) || !e.lvl.HasVertex(line.End) {
				log.Warn("linedef references a missing vertex", "linedef", owner.Line,
					"start", line.Start, "end", line.End)
				continue
			}

			neighbor := NoRegion
			if other := owner.Other(e.lvl); other != level.NoSide {
				if s := e.lvl.SectorOf(other); s >= 0 {
					neighbor = s
				}
			}
			if neighbor == r {
				continue
			}

			start := e.lvl.Vertices[line.Start]
			end := e.lvl.Vertices[line.End]
			edges = append(edges, Edge{
				Start:    geometry.Point{X: start.X, Y: start.Y},
				End:      geometry.Point{X: end.X, Y: end.Y},
				Neighbor: neighbor,
				Line:     owner.Line,
			})
		}
	}

	if len(edges) == 0 {
		log.Warn("region has no boundary edges")
	}
	return edges
}
