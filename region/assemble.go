package region

import (
	"container/heap"
	"log/slog"

	"github.com/bloodmagesoftware/sectors/geometry"
)

// adjacency maps a snapped vertex to the edges touching it, in ascending
// edge order.
type adjacency map[geometry.Key][]int

func newAdjacency(edges []Edge) adjacency {
	adj := make(adjacency, len(edges))
	for i, e := range edges {
		ks, ke := geometry.KeyOf(e.Start), geometry.KeyOf(e.End)
		adj[ks] = append(adj[ks], i)
		if ke != ks {
			adj[ke] = append(adj[ke], i)
		}
	}
	return adj
}

// frontier is a min-heap of edge indices.
type frontier []int

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i] < f[j] }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(int)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// buckets groups edges into the connected components of the boundary graph.
// Each bucket is seeded by the lowest edge index not yet grouped and grows by
// the lowest ungrouped edge sharing a vertex with any edge already in it.
// Edges are listed in the order they joined.
func (adj adjacency) buckets(edges []Edge) [][]int {
	grouped := make([]bool, len(edges))
	var out [][]int
	for seed := range edges {
		if grouped[seed] {
			continue
		}
		var bucket []int
		f := &frontier{seed}
		for f.Len() > 0 {
			i := heap.Pop(f).(int)
			if grouped[i] {
				continue
			}
			grouped[i] = true
			bucket = append(bucket, i)
			e := edges[i]
			for _, key := range [2]geometry.Key{geometry.KeyOf(e.Start), geometry.KeyOf(e.End)} {
				for _, j := range adj[key] {
					if !grouped[j] {
						heap.Push(f, j)
					}
				}
			}
		}
		out = append(out, bucket)
	}
	return out
}

// follow picks the next edge leaving at. Edges starting at the point are
// preferred over edges ending there; ties go to the lowest rank, the position
// of the edge in its bucket. Returns -1 when no unused edge touches the point.
func (adj adjacency) follow(edges []Edge, at geometry.Point, used []bool, rank []int) (int, geometry.Point) {
	k := geometry.KeyOf(at)
	pick := func(match func(Edge) bool) int {
		best := -1
		for _, i := range adj[k] {
			if used[i] || !match(edges[i]) {
				continue
			}
			if best < 0 || rank[i] < rank[best] {
				best = i
			}
		}
		return best
	}
	if i := pick(func(e Edge) bool { return geometry.KeyOf(e.Start) == k }); i >= 0 {
		return i, edges[i].End
	}
	if i := pick(func(e Edge) bool { return geometry.KeyOf(e.End) == k }); i >= 0 {
		return i, edges[i].Start
	}
	return -1, geometry.Point{}
}

// chain walks the edges of one bucket into an ordered loop. The far end of
// the last edge is the seed point again and is not repeated. When the walk
// gets stuck before the bucket is exhausted (a figure-eight pinched through
// a shared vertex) the partial loop is returned with the unused edges.
func (adj adjacency) chain(edges []Edge, bucket []int, used []bool, rank []int) (geometry.Polygon, []int) {
	seed := bucket[0]
	used[seed] = true
	loop := geometry.Polygon{edges[seed].Start}
	want := edges[seed].End

	for remaining := len(bucket) - 1; remaining > 0; remaining-- {
		loop = append(loop, want)
		next, far := adj.follow(edges, want, used, rank)
		if next < 0 {
			var left []int
			for _, i := range bucket {
				if !used[i] {
					left = append(left, i)
				}
			}
			return loop, left
		}
		used[next] = true
		want = far
	}
	return loop, nil
}

// Assemble turns an unordered set of boundary edges into a single loop: the
// loop of the connected component enclosing all others. Winding is left as
// found; see geometry.Polygon.Normalize.
func Assemble(edges []Edge, log *slog.Logger) geometry.Polygon {
	if len(edges) == 0 {
		return nil
	}

	adj := newAdjacency(edges)
	used := make([]bool, len(edges))
	buckets := adj.buckets(edges)
	rank := make([]int, len(edges))
	for _, bucket := range buckets {
		for pos, i := range bucket {
			rank[i] = pos
		}
	}

	var loops []geometry.Polygon
	for _, bucket := range buckets {
		loop, left := adj.chain(edges, bucket, used, rank)
		if len(left) > 0 {
			lines := make([]int, len(left))
			for i, e := range left {
				lines[i] = edges[e].Line
			}
			log.Warn("incomplete loop, dropping the rest of the component",
				"points", len(loop), "remaining", len(left), "linedefs", lines)
		}
		loops = append(loops, loop)
	}

	return outerLoop(loops, log)
}

// outerLoop selects the loop that contains an exclusive vertex of every
// other loop. Without exactly one such loop the input is malformed and the
// loop with the largest area is used.
func outerLoop(loops []geometry.Polygon, log *slog.Logger) geometry.Polygon {
	if len(loops) == 1 {
		return loops[0]
	}

	outer, enclosing := -1, 0
	for i := range loops {
		if encloses(loops, i) {
			enclosing++
			if outer < 0 {
				outer = i
			}
		}
	}
	if enclosing == 1 {
		return loops[outer]
	}

	largest := 0
	for i := range loops {
		if loops[i].Area() > loops[largest].Area() {
			largest = i
		}
	}
	log.Warn("ambiguous outer loop, using the largest",
		"loops", len(loops), "enclosing", enclosing, "points", len(loops[largest]))
	return loops[largest]
}

func encloses(loops []geometry.Polygon, candidate int) bool {
	outer := loops[candidate]
	if len(outer) < 3 {
		return false
	}
	for j, other := range loops {
		if j == candidate {
			continue
		}
		v, ok := other.ExclusiveVertex(outer)
		if !ok {
			continue
		}
		if !outer.Contains(v) {
			return false
		}
	}
	return true
}
