// Package raster draws a debug image of the region map by asking the
// locator about every pixel.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/region"
)

// Config controls the rendering.
type Config struct {
	// Width of the image in pixels. The height follows the aspect ratio of
	// the level.
	Width int
	// Labels draws each region id inside its area.
	Labels bool
}

// MaxDimension bounds both sides of a rendered image.
const MaxDimension = 16384

var labelColor = color.RGBA{A: 255}

// Color returns the fill colour of a region. Colours are never darker than
// 64 per channel so labels stay readable.
func Color(id int) color.RGBA {
	h := uint32(id+1) * 2654435761
	return color.RGBA{
		R: 64 + uint8(h>>24)%192,
		G: 64 + uint8(h>>16)%192,
		B: 64 + uint8(h>>8)%192,
		A: 255,
	}
}

// Render samples the center of every pixel. North is up; pixels outside
// every region stay transparent. A level too tall for the requested width is
// scaled down to MaxDimension rows and the columns right of it stay empty.
func Render(loc *region.Locator, cfg Config) *image.RGBA {
	width := min(max(cfg.Width, 1), MaxDimension)

	bounds := r2.EmptyRect()
	for _, r := range loc.Regions() {
		if !r.Bounds.IsEmpty() {
			bounds = bounds.Union(r.Bounds)
		}
	}
	size := bounds.Size()
	if bounds.IsEmpty() || size.X <= 0 || size.Y <= 0 {
		return image.NewRGBA(image.Rect(0, 0, width, 1))
	}

	scale := float64(width) / size.X
	if size.Y*scale > MaxDimension {
		scale = MaxDimension / size.Y
	}
	height := min(max(int(math.Ceil(size.Y*scale)), 1), MaxDimension)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	owner := make([]int, width*height)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			p := geometry.Point{
				X: bounds.Lo().X + (float64(px)+0.5)/scale,
				Y: bounds.Hi().Y - (float64(py)+0.5)/scale,
			}
			owner[py*width+px] = region.NoRegion
			if r, ok := loc.At(p); ok {
				owner[py*width+px] = r.ID
				img.SetRGBA(px, py, Color(r.ID))
			}
		}
	}

	if cfg.Labels {
		drawLabels(img, owner)
	}
	return img
}

// drawLabels writes each region id at the region pixel nearest to the mean
// of its pixels.
func drawLabels(img *image.RGBA, owner []int) {
	width := img.Bounds().Dx()

	type acc struct {
		sumX, sumY float64
		count      int
	}
	sums := make(map[int]*acc)
	for i, id := range owner {
		if id == region.NoRegion {
			continue
		}
		a := sums[id]
		if a == nil {
			a = &acc{}
			sums[id] = a
		}
		a.sumX += float64(i % width)
		a.sumY += float64(i / width)
		a.count++
	}

	type anchor struct {
		x, y int
		dist float64
	}
	anchors := make(map[int]anchor, len(sums))
	for i, id := range owner {
		a := sums[id]
		if a == nil {
			continue
		}
		x, y := i%width, i/width
		dx, dy := float64(x)-a.sumX/float64(a.count), float64(y)-a.sumY/float64(a.count)
		d := dx*dx + dy*dy
		if best, ok := anchors[id]; !ok || d < best.dist {
			anchors[id] = anchor{x: x, y: y, dist: d}
		}
	}

	face := basicfont.Face7x13
	for id, a := range anchors {
		label := strconv.Itoa(id)
		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColor),
			Face: face,
		}
		w := drawer.MeasureString(label).Round()
		drawer.Dot = fixed.P(a.x-w/2, a.y+face.Ascent/2)
		drawer.DrawString(label)
	}
}

// Encode writes img as QOI.
func Encode(w io.Writer, img image.Image) error {
	if err := qoi.Encode(w, img); err != nil {
		return fmt.Errorf("encoding qoi: %w", err)
	}
	return nil
}
