package level

// Side selects one side of a linedef.
type Side int

const (
	RightSide Side = iota
	LeftSide
)

// Owner identifies the linedef side that references a sidedef.
type Owner struct {
	Line int
	Side Side
}

// Other returns the sidedef on the opposite side of the owning line, or
// NoSide for one-sided lines.
func (o Owner) Other(l *Level) int {
	line := l.LineDefs[o.Line]
	if o.Side == RightSide {
		return line.Left
	}
	return line.Right
}

// Owners maps every sidedef index to the linedef sides referencing it.
// Well-formed levels have exactly one owner per sidedef; out-of-range side
// references are ignored here and reported by the linter.
func (l *Level) Owners() [][]Owner {
	owners := make([][]Owner, len(l.SideDefs))
	for i, line := range l.LineDefs {
		if line.Right >= 0 && line.Right < len(owners) {
			owners[line.Right] = append(owners[line.Right], Owner{Line: i, Side: RightSide})
		}
		if line.Left >= 0 && line.Left < len(owners) {
			owners[line.Left] = append(owners[line.Left], Owner{Line: i, Side: LeftSide})
		}
	}
	return owners
}

// SectorOf returns the sector faced by the given sidedef, or -1 when the
// sidedef reference or its sector reference is out of range.
func (l *Level) SectorOf(side int) int {
	if side < 0 || side >= len(l.SideDefs) {
		return -1
	}
	sector := l.SideDefs[side].Sector
	if sector < 0 || sector >= len(l.Sectors) {
		return -1
	}
	return sector
}

// HasVertex reports whether i is a valid vertex index.
func (l *Level) HasVertex(i int) bool {
	return i >= 0 && i < len(l.Vertices)
}
