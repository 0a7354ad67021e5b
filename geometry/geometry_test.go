package geometry

import (
	"testing"
)

func square(x0, y0, size float64) Polygon {
	return Polygon{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}
}

func TestSignedArea(t *testing.T) {
	sq := square(0, 0, 10)

	// (0,0)->(10,0)->(10,10)->(0,10) is counter-clockwise with y up,
	// which is negative under the shoelace convention used here.
	if got := sq.SignedArea(); got != -200 {
		t.Errorf("SignedArea() = %v, want -200", got)
	}
	if got := sq.Area(); got != 100 {
		t.Errorf("Area() = %v, want 100", got)
	}

	sq.Reverse()
	if got := sq.SignedArea(); got != 200 {
		t.Errorf("reversed SignedArea() = %v, want 200", got)
	}

	if got := (Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}).SignedArea(); got != 0 {
		t.Errorf("degenerate SignedArea() = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	sq := square(0, 0, 10)
	if !sq.Normalize() {
		t.Fatal("expected the counter-clockwise square to be reversed")
	}
	if sq.SignedArea() <= 0 {
		t.Errorf("SignedArea() after Normalize = %v, want > 0", sq.SignedArea())
	}
	if sq.Normalize() {
		t.Error("Normalize on an already normalized polygon should be a no-op")
	}
}

func TestDistanceSq(t *testing.T) {
	if got := DistanceSq(Point{X: 1, Y: 2}, Point{X: 4, Y: 6}); got != 25 {
		t.Errorf("DistanceSq() = %v, want 25", got)
	}
}

func TestBounds(t *testing.T) {
	b := square(-2, 3, 5).Bounds()
	if b.Lo() != (Point{X: -2, Y: 3}) || b.Hi() != (Point{X: 3, Y: 8}) {
		t.Errorf("Bounds() = %v..%v", b.Lo(), b.Hi())
	}
	if !b.ContainsPoint(Point{X: 3, Y: 8}) {
		t.Error("bounds should include their corners")
	}

	var empty Polygon
	if empty.Bounds().ContainsPoint(Point{}) {
		t.Error("empty polygon bounds should contain nothing")
	}
}

func TestExclusiveVertex(t *testing.T) {
	a := square(0, 0, 10)
	b := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}

	v, ok := b.ExclusiveVertex(a)
	if !ok || v != (Point{X: 5, Y: 5}) {
		t.Errorf("ExclusiveVertex() = %v, %v; want (5,5), true", v, ok)
	}

	if _, ok := a.ExclusiveVertex(a.Clone()); ok {
		t.Error("identical polygons should have no exclusive vertex")
	}
}

func TestIndexOf(t *testing.T) {
	sq := square(0, 0, 10)
	if got := sq.IndexOf(Point{X: 10, Y: 10}); got != 2 {
		t.Errorf("IndexOf() = %d, want 2", got)
	}
	if got := sq.IndexOf(Point{X: 3, Y: 3}); got != -1 {
		t.Errorf("IndexOf() = %d, want -1", got)
	}
}
