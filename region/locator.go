package region

import "github.com/bloodmagesoftware/sectors/geometry"

// Locator answers which region a point belongs to.
type Locator struct {
	regions []Region
}

// NewLocator indexes carved regions. The slice is not copied and must not be
// modified afterwards.
func NewLocator(regions []Region) *Locator {
	return &Locator{regions: regions}
}

// At returns the region whose polygon contains p, checking bounds before
// the polygon itself. ok is false when p is outside every region.
func (l *Locator) At(p geometry.Point) (r *Region, ok bool) {
	for i := range l.regions {
		candidate := &l.regions[i]
		if !candidate.Bounds.ContainsPoint(p) {
			continue
		}
		if candidate.Polygon.Contains(p) {
			return candidate, true
		}
	}
	return nil, false
}

// FindRegionAt is At for a coordinate pair.
func (l *Locator) FindRegionAt(x, y float64) (*Region, bool) {
	return l.At(geometry.Point{X: x, Y: y})
}

// Regions returns the indexed regions.
func (l *Locator) Regions() []Region {
	return l.regions
}
