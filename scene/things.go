package scene

import (
	"math"
	"strings"

	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/region"
)

// PlayerStart is the thing type of the player 1 start.
const PlayerStart = 1

// ThingDef describes how a thing type is drawn. Height is the sprite height
// in map units; sprite image lookup happens elsewhere.
type ThingDef struct {
	Sprite   string  `yaml:"sprite"`
	Sequence string  `yaml:"sequence"`
	Size     float64 `yaml:"size"`
	Height   float64 `yaml:"height"`
}

// Catalog maps thing types to their definitions.
type Catalog map[int]ThingDef

// placeholder reports whether sprite stands for an invisible thing.
func placeholder(sprite string) bool {
	return sprite == "" || strings.HasPrefix(strings.ToLower(sprite), "none")
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// StartPosition places the player start on the floor of the region it
// stands in, startHeight above it. Outside every region the height is 0.
// ok is false when the level has no player start.
func StartPosition(lvl *level.Level, ctx region.Context, loc *region.Locator, startHeight float64) (Start, bool) {
	for i, th := range lvl.Things {
		if th.Type != PlayerStart {
			continue
		}

		p := ctx.Point(th.X, th.Y)
		start := Start{X: p.X, Z: p.Y, Angle: radians(th.Angle)}
		if r, ok := loc.At(p); ok {
			start.Y = r.FloorHeight + startHeight
		} else {
			region.Logger().Warn("player start is outside every region", "thing", i, "x", th.X, "y", th.Y)
		}
		return start, true
	}
	return Start{}, false
}

// PlaceThings stands every drawable thing on the floor of its region.
// Things without a catalog entry, invisible things and the player start are
// left out, as are things outside every region.
func PlaceThings(lvl *level.Level, ctx region.Context, loc *region.Locator, catalog Catalog) []Sprite {
	log := region.Logger()

	var sprites []Sprite
	for i, th := range lvl.Things {
		def, ok := catalog[th.Type]
		if !ok || placeholder(def.Sprite) || th.Type == PlayerStart {
			continue
		}

		p := ctx.Point(th.X, th.Y)
		r, ok := loc.At(p)
		if !ok {
			log.Warn("no region found for thing", "thing", i, "type", th.Type, "x", th.X, "y", th.Y)
			continue
		}

		sprites = append(sprites, Sprite{
			Thing:    i,
			Type:     th.Type,
			Sprite:   def.Sprite,
			Sequence: def.Sequence,
			Size:     def.Size,
			Region:   r.ID,
			X:        p.X,
			Y:        r.FloorHeight + ctx.Height(def.Height/2),
			Z:        p.Y,
			Angle:    radians(th.Angle),
		})
	}
	return sprites
}
