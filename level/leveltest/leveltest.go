// Package leveltest builds small hand-made levels for tests.
package leveltest

import "github.com/bloodmagesoftware/sectors/level"

// Builder appends map geometry and keeps the index bookkeeping out of tests.
type Builder struct {
	Level *level.Level
}

func NewBuilder(name string) *Builder {
	return &Builder{Level: level.New(name)}
}

// Sector adds a sector and returns its index.
func (b *Builder) Sector(floor, ceiling float64, ceilingTexture string) int {
	b.Level.Sectors = append(b.Level.Sectors, level.Sector{
		FloorHeight:    floor,
		CeilingHeight:  ceiling,
		FloorTexture:   "FLOOR4_8",
		CeilingTexture: ceilingTexture,
		Light:          160,
	})
	return len(b.Level.Sectors) - 1
}

// Vertex adds a vertex and returns its index.
func (b *Builder) Vertex(x, y float64) int {
	b.Level.Vertices = append(b.Level.Vertices, level.Vertex{X: x, Y: y})
	return len(b.Level.Vertices) - 1
}

func (b *Builder) side(sector int, middle string) int {
	b.Level.SideDefs = append(b.Level.SideDefs, level.SideDef{
		Sector: sector,
		Upper:  "STARTAN3",
		Lower:  "STARTAN3",
		Middle: middle,
	})
	return len(b.Level.SideDefs) - 1
}

// Wall adds a one-sided line from v1 to v2 facing sector.
func (b *Builder) Wall(v1, v2, sector int) int {
	b.Level.LineDefs = append(b.Level.LineDefs, level.LineDef{
		Start: v1,
		End:   v2,
		Right: b.side(sector, "STARTAN3"),
		Left:  level.NoSide,
	})
	return len(b.Level.LineDefs) - 1
}

// Portal adds a two-sided line from v1 to v2 between the right and left sectors.
func (b *Builder) Portal(v1, v2, right, left int) int {
	b.Level.LineDefs = append(b.Level.LineDefs, level.LineDef{
		Start: v1,
		End:   v2,
		Right: b.side(right, "-"),
		Left:  b.side(left, "-"),
		Flags: 4,
	})
	return len(b.Level.LineDefs) - 1
}

// Loop adds the corner vertices of a polygon and returns their indices.
func (b *Builder) Loop(points ...[2]float64) []int {
	idx := make([]int, len(points))
	for i, p := range points {
		idx[i] = b.Vertex(p[0], p[1])
	}
	return idx
}

// Thing adds a map object.
func (b *Builder) Thing(x, y, angle float64, typ int) {
	b.Level.Things = append(b.Level.Things, level.Thing{X: x, Y: y, Angle: angle, Type: typ, Flags: 7})
}

// PillarRoom returns a 256x256 room (sector 0) around a raised 64x64 platform
// (sector 1) in its middle, with the player start inside the room and a
// barrel on the platform.
//
// Sector 0 spans (0,0)-(256,256), sector 1 spans (96,96)-(160,160).
func PillarRoom() *level.Level {
	b := NewBuilder("PILLAR")
	room := b.Sector(0, 128, "CEIL3_5")
	platform := b.Sector(24, 128, "F_SKY1")

	outer := b.Loop([2]float64{0, 0}, [2]float64{0, 256}, [2]float64{256, 256}, [2]float64{256, 0})
	for i := range outer {
		b.Wall(outer[i], outer[(i+1)%len(outer)], room)
	}

	inner := b.Loop([2]float64{96, 96}, [2]float64{160, 96}, [2]float64{160, 160}, [2]float64{96, 160})
	for i := range inner {
		b.Portal(inner[i], inner[(i+1)%len(inner)], room, platform)
	}

	b.Thing(32, 32, 90, 1)
	b.Thing(128, 128, 0, 2035)
	return b.Level
}
