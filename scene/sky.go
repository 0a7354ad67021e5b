package scene

import (
	"strings"

	"github.com/bloodmagesoftware/sectors/level"
	"github.com/bloodmagesoftware/sectors/region"
)

// DefaultSky is used when no sector shows the sky.
const DefaultSky = "1"

// SkyNumber returns the number of the last sky ceiling seen along the
// linedefs, so "F_SKY1" and "SKY3" yield "1" and "3".
func SkyNumber(lvl *level.Level, ctx region.Context) string {
	sky := DefaultSky
	for _, line := range lvl.LineDefs {
		for _, side := range []int{line.Left, line.Right} {
			s := lvl.SectorOf(side)
			if s < 0 {
				continue
			}
			texture := strings.ToUpper(lvl.Sectors[s].CeilingTexture)
			if !ctx.IsSky(texture) {
				continue
			}
			texture = strings.TrimPrefix(texture, "F_SKY")
			texture = strings.TrimPrefix(texture, "SKY")
			if texture != "" {
				sky = texture
			}
		}
	}
	return sky
}
