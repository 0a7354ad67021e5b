package region

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/bloodmagesoftware/sectors/geometry"
)

// Carve removes every region enclosed by another region from the enclosing
// region's polygon, so that no two polygons overlap afterwards.
//
// Regions are processed in ascending index order. For a region A, the other
// regions are visited largest outline first, ties by index, so an enclosing
// region is always carved before the regions nested inside it. Each B is
// tested with a vertex of B that is not a vertex of A's current
// polygon: a bounds check, then a containment test. An enclosed B is spliced
// into A through a zero-width bridge between their closest vertices, with B
// traversed in reverse. A's polygon is updated in place before testing the
// next B; B itself is never modified.
//
// Enclosure is always tested against B's outline as assembled, never against
// a polygon already carved earlier in the pass. A region only absorbs
// regions with a strictly smaller outline area, which settles mutual
// containment deterministically.
func Carve(regions []Region, log *slog.Logger) {
	outlines := make([]geometry.Polygon, len(regions))
	areas := make([]float64, len(regions))
	for i := range regions {
		outlines[i] = regions[i].Polygon.Clone()
		areas[i] = outlines[i].Area()
	}
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return cmp.Compare(areas[y], areas[x])
	})

	for a := range regions {
		current := regions[a].Polygon
		if len(current) < 3 {
			continue
		}

		for _, b := range order {
			inner := outlines[b]
			if b == a || len(inner) < 3 {
				continue
			}

			v, ok := inner.ExclusiveVertex(current)
			if !ok {
				continue
			}
			if !regions[a].Bounds.ContainsPoint(v) || !current.Contains(v) {
				continue
			}
			if areas[b] >= areas[a] {
				log.Debug("skipping carve of a region that is not smaller",
					"region", a, "inner", b)
				continue
			}

			current = splice(current, inner)
			log.Debug("carved enclosed region", "region", a, "inner", b, "points", len(current))
		}

		regions[a].Polygon = current
	}
}

// closestPair returns the indices of the closest vertices of a and b. The
// first pair found wins ties.
func closestPair(a, b geometry.Polygon) (int, int) {
	bestA, bestB := 0, 0
	best := geometry.DistanceSq(a[0], b[0])
	for i, va := range a {
		for j, vb := range b {
			if d := geometry.DistanceSq(va, vb); d < best {
				best, bestA, bestB = d, i, j
			}
		}
	}
	return bestA, bestB
}

// splice returns outer with inner cut out through a keyhole bridge between
// their closest vertices a* and b*:
//
//	a*, outer..., a*, b*, reversed inner..., b*
//
// The closing edge b* -> a* completes the bridge. Both bridge vertices
// appear twice, every other vertex once.
func splice(outer, inner geometry.Polygon) geometry.Polygon {
	ia, ib := closestPair(outer, inner)

	out := make(geometry.Polygon, 0, len(outer)+len(inner)+2)
	out = append(out, outer[ia:]...)
	out = append(out, outer[:ia]...)
	out = append(out, outer[ia])
	for k := 0; k < len(inner); k++ {
		out = append(out, inner[(ib-k+len(inner))%len(inner)])
	}
	out = append(out, inner[ib])
	return out
}
