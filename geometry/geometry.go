package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2D point in either map units or scene units.
type Point = r2.Point

// Polygon is an implicitly closed sequence of points: the last point connects
// back to the first, which is never repeated at the end.
type Polygon []Point

// DistanceSq returns the squared euclidean distance between a and b.
// Only meant for comparisons, so no square root is taken.
func DistanceSq(a, b Point) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// SignedArea returns the shoelace sum over the closed loop:
//
//	sum((x[i+1]-x[i]) * (y[i+1]+y[i]))
//
// This is twice the enclosed area. The sign fixes the orientation convention
// used by every polygon in the module: positive is the normalized winding.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}

	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += (p[j].X - p[i].X) * (p[j].Y + p[i].Y)
	}
	return sum
}

// Area returns the enclosed area, independent of winding.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea()) / 2
}

// Reverse reverses the point order in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Normalize enforces positive winding, reversing the points in place when
// the signed area is negative. Reports whether a reversal happened.
func (p Polygon) Normalize() bool {
	if p.SignedArea() < 0 {
		p.Reverse()
		return true
	}
	return false
}

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Bounds returns the axis-aligned bounding box of the polygon. An empty
// polygon yields an empty rectangle that contains no point.
func (p Polygon) Bounds() r2.Rect {
	rect := r2.EmptyRect()
	for _, v := range p {
		rect = rect.AddPoint(v)
	}
	return rect
}

// IndexOf returns the index of the first point with the same Key as v, or -1.
func (p Polygon) IndexOf(v Point) int {
	k := KeyOf(v)
	for i, q := range p {
		if KeyOf(q) == k {
			return i
		}
	}
	return -1
}

// keyResolution is the number of key cells per unit. Map coordinates are
// integral in practice, so this only guards against float noise after
// scaling.
const keyResolution = 1 << 20

// Key identifies a point after snapping it to a fine grid. Two points with
// equal keys are treated as the same vertex.
type Key struct {
	X, Y int64
}

// KeyOf returns the snapped key of p.
func KeyOf(p Point) Key {
	return Key{
		X: int64(math.Round(p.X * keyResolution)),
		Y: int64(math.Round(p.Y * keyResolution)),
	}
}

// ExclusiveVertex returns the first point of p that is not also a vertex of
// other. ok is false when every point of p is shared with other.
func (p Polygon) ExclusiveVertex(other Polygon) (v Point, ok bool) {
	shared := make(map[Key]struct{}, len(other))
	for _, q := range other {
		shared[KeyOf(q)] = struct{}{}
	}
	for _, q := range p {
		if _, found := shared[KeyOf(q)]; !found {
			return q, true
		}
	}
	return Point{}, false
}
