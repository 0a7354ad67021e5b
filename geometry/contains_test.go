package geometry

import "testing"

func TestContainsSquare(t *testing.T) {
	sq := square(0, 0, 10)

	tests := []struct {
		name   string
		point  Point
		inside bool
	}{
		{"center", Point{X: 5, Y: 5}, true},
		{"right of square", Point{X: 15, Y: 5}, false},
		{"left of square", Point{X: -5, Y: 5}, false},
		{"above square", Point{X: 5, Y: 15}, false},
		{"near corner", Point{X: 0.5, Y: 9.5}, true},
		// On the bottom edge, not a vertex. Resolves to outside.
		{"on bottom edge", Point{X: 5, Y: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sq.Contains(tc.point); got != tc.inside {
				t.Errorf("Contains(%v) = %v, want %v", tc.point, got, tc.inside)
			}
		})
	}

	t.Run("winding does not matter", func(t *testing.T) {
		rev := sq.Clone()
		rev.Reverse()
		if !rev.Contains(Point{X: 5, Y: 5}) || rev.Contains(Point{X: 15, Y: 5}) {
			t.Error("reversed square disagrees with the original")
		}
	})

	t.Run("edge result is stable", func(t *testing.T) {
		first := sq.Contains(Point{X: 5, Y: 0})
		for i := 0; i < 10; i++ {
			if sq.Contains(Point{X: 5, Y: 0}) != first {
				t.Fatal("edge point result changed between calls")
			}
		}
	})
}

func TestContainsVertexOnRay(t *testing.T) {
	// A square with a V-shaped notch cut down from the top edge. The tip of
	// the notch touches y=5 at x=4.
	notch := Polygon{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 6, Y: 10},
		{X: 4, Y: 5},
		{X: 2, Y: 10},
		{X: 0, Y: 10},
	}

	// A diamond whose left and right vertices sit on y=5.
	diamond := Polygon{
		{X: 5, Y: 0},
		{X: 10, Y: 5},
		{X: 5, Y: 10},
		{X: 0, Y: 5},
	}

	// An L shape with a horizontal edge lying on y=5.
	step := Polygon{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 10},
		{X: 0, Y: 10},
	}

	tests := []struct {
		name    string
		polygon Polygon
		point   Point
		inside  bool
	}{
		{"notch: right of tip", notch, Point{X: 8, Y: 5}, true},
		{"notch: left of tip", notch, Point{X: 3, Y: 5}, true},
		{"notch: just right of tip", notch, Point{X: 5, Y: 5}, true},
		{"notch: inside the cut", notch, Point{X: 4, Y: 7}, false},
		{"notch: outside right", notch, Point{X: 12, Y: 5}, false},
		{"diamond: center", diamond, Point{X: 5, Y: 5}, true},
		{"diamond: right of both vertices", diamond, Point{X: 12, Y: 5}, false},
		{"diamond: left of both vertices", diamond, Point{X: -1, Y: 5}, false},
		{"step: inside left of run", step, Point{X: 3, Y: 5}, true},
		{"step: right of run", step, Point{X: 12, Y: 5}, false},
		{"step: above run", step, Point{X: 8, Y: 7}, false},
		{"step: below run", step, Point{X: 8, Y: 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.polygon.Contains(tc.point); got != tc.inside {
				t.Errorf("Contains(%v) = %v, want %v", tc.point, got, tc.inside)
			}
		})
	}
}

func TestContainsFlatPolygon(t *testing.T) {
	// Every vertex on the ray: must terminate and report outside.
	flat := Polygon{{X: 0, Y: 5}, {X: 5, Y: 5}, {X: 10, Y: 5}}
	if flat.Contains(Point{X: 20, Y: 5}) {
		t.Error("a zero-area polygon contains nothing")
	}
}
