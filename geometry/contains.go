package geometry

// Contains reports whether q lies inside the polygon using a crossing-number
// test along a ray from q towards negative x.
//
// A vertex sitting exactly on the ray is not counted as a crossing by
// itself. Instead the polygon is walked in both directions to the nearest
// vertices off the ray and one crossing is counted only if those two lie on
// opposite sides of it. A horizontal run of vertices on the ray is evaluated
// once, at the first vertex of the run.
//
// Points exactly on the boundary resolve deterministically but to no
// particular side; for example a point on a horizontal bottom edge resolves
// to outside.
func (p Polygon) Contains(q Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}

	next := func(i int) int {
		if i == n-1 {
			return 0
		}
		return i + 1
	}
	prev := func(i int) int {
		if i == 0 {
			return n - 1
		}
		return i - 1
	}

	crossings := 0
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[next(i)]

		if (a.Y < q.Y && b.Y > q.Y) || (a.Y > q.Y && b.Y < q.Y) {
			x := (q.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X) + a.X
			if x < q.X {
				crossings++
			}
		}

		if a.X < q.X && a.Y == q.Y && p[prev(i)].Y != q.Y {
			after, before := next(i), prev(i)
			for steps := 0; p[after].Y == q.Y && steps < n; steps++ {
				after = next(after)
			}
			for steps := 0; p[before].Y == q.Y && steps < n; steps++ {
				before = prev(before)
			}
			above, below := p[before].Y > q.Y, p[before].Y < q.Y
			if (below && p[after].Y > q.Y) || (above && p[after].Y < q.Y) {
				crossings++
			}
		}
	}

	return crossings%2 == 1
}
