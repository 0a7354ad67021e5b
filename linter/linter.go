package linter

import (
	"fmt"
	"strings"

	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/region"
	"github.com/bloodmagesoftware/sectors/scene"
)

// Issue kinds.
const (
	MissingVertex  = "missing-vertex"
	MissingSideDef = "missing-sidedef"
	MissingSector  = "missing-sector"
	NoRightSide    = "no-right-side"
	ZeroLength     = "zero-length"
	OrphanSideDef  = "orphan-sidedef"
	SharedSideDef  = "shared-sidedef"
	EmptySector    = "empty-sector"
	OpenSector     = "open-sector"
	NoPlayerStart  = "no-player-start"
)

// Issue is a single problem found in a level.
type Issue struct {
	Kind    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}

// Check reports every structural problem of lvl. Levels with issues still
// build; the affected regions come out incomplete.
func Check(lvl *level.Level) []Issue {
	var issues []Issue
	add := func(kind, format string, args ...any) {
		issues = append(issues, Issue{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}

	for i, line := range lvl.LineDefs {
		for _, v := range []int{line.Start, line.End} {
			if !lvl.HasVertex(v) {
				add(MissingVertex, "linedef %d references vertex %d of %d", i, v, len(lvl.Vertices))
			}
		}
		if lvl.HasVertex(line.Start) && lvl.HasVertex(line.End) && lvl.Vertices[line.Start] == lvl.Vertices[line.End] {
			add(ZeroLength, "linedef %d starts and ends at (%v, %v)", i, lvl.Vertices[line.Start].X, lvl.Vertices[line.Start].Y)
		}
		if line.Right == level.NoSide {
			add(NoRightSide, "linedef %d has no right side", i)
		}
		for _, side := range []int{line.Right, line.Left} {
			if side != level.NoSide && (side < 0 || side >= len(lvl.SideDefs)) {
				add(MissingSideDef, "linedef %d references sidedef %d of %d", i, side, len(lvl.SideDefs))
			}
		}
	}

	sectorSides := make([]int, len(lvl.Sectors))
	for i, owners := range lvl.Owners() {
		switch len(owners) {
		case 0:
			add(OrphanSideDef, "sidedef %d is not used by any linedef", i)
		case 1:
		default:
			lines := make([]string, len(owners))
			for k, o := range owners {
				lines[k] = fmt.Sprint(o.Line)
			}
			add(SharedSideDef, "sidedef %d is used by linedefs %s", i, strings.Join(lines, ", "))
		}

		if s := lvl.SectorOf(i); s >= 0 {
			sectorSides[s]++
		} else {
			add(MissingSector, "sidedef %d references sector %d of %d", i, lvl.SideDefs[i].Sector, len(lvl.Sectors))
		}
	}

	extractor := region.NewExtractor(lvl)
	for s, n := range sectorSides {
		if n == 0 {
			add(EmptySector, "sector %d has no sidedefs", s)
			continue
		}
		if open := openVertices(extractor.Edges(s)); open > 0 {
			add(OpenSector, "sector %d is not closed: %d vertices end a single boundary edge", s, open)
		}
	}

	if !hasPlayerStart(lvl) {
		add(NoPlayerStart, "no thing of type %d", scene.PlayerStart)
	}

	return issues
}

// openVertices counts boundary vertices touched by an odd number of edges.
// A closed boundary touches every vertex an even number of times.
func openVertices(edges []region.Edge) int {
	degree := make(map[geometry.Key]int)
	for _, e := range edges {
		degree[geometry.KeyOf(e.Start)]++
		degree[geometry.KeyOf(e.End)]++
	}
	open := 0
	for _, d := range degree {
		if d%2 != 0 {
			open++
		}
	}
	return open
}

func hasPlayerStart(lvl *level.Level) bool {
	for _, th := range lvl.Things {
		if th.Type == scene.PlayerStart {
			return true
		}
	}
	return false
}

// Lint loads every level file and prints its issues.
func Lint(paths ...string) error {
	fmt.Println("🔍 Linting levels...")

	violationCount := 0
	for _, path := range paths {
		lvl := level.New("")
		if err := lvl.Load(path); err != nil {
			return fmt.Errorf("loading level %s: %w", path, err)
		}

		for _, issue := range Check(lvl) {
			fmt.Printf(
				"  [ERROR] File: %s\n"+
					"    Kind: %s\n"+
					"    Reason: %s\n",
				path, issue.Kind, issue.Message,
			)
			fmt.Println(strings.Repeat("-", 60))
			violationCount++
		}
	}

	if violationCount > 0 {
		return fmt.Errorf("linter failed: found %d issues", violationCount)
	}

	fmt.Printf("✅ Linter Passed: %d level(s) without issues.\n", len(paths))
	return nil
}
