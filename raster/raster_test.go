package raster

import (
	"bytes"
	"image"
	"testing"

	"github.com/xfmoulet/qoi"

	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/level/leveltest"
	"github.com/bloodmagesoftware/sectors/region"
)

func pillarLocator() *region.Locator {
	ctx := region.Context{Scale: 1, SkyTextures: []string{"F_SKY1"}}
	return region.NewLocator(region.Build(leveltest.PillarRoom(), ctx))
}

func countLabelPixels(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == labelColor {
				n++
			}
		}
	}
	return n
}

func TestRender(t *testing.T) {
	img := Render(pillarLocator(), Config{Width: 256})

	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("image size = %dx%d, want 256x256", b.Dx(), b.Dy())
	}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"platform", 128, 128, 1},
		{"room corner", 10, 10, 0},
		{"room edge", 250, 128, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := img.RGBAAt(tc.x, tc.y); got != Color(tc.want) {
				t.Errorf("pixel (%d,%d) = %v, want colour of region %d", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if n := countLabelPixels(img); n != 0 {
		t.Errorf("found %d label pixels without labels enabled", n)
	}
}

func TestRenderHalfWidth(t *testing.T) {
	img := Render(pillarLocator(), Config{Width: 128})
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("image size = %dx%d, want 128x128", b.Dx(), b.Dy())
	}
	if got := img.RGBAAt(64, 64); got != Color(1) {
		t.Errorf("center pixel = %v, want colour of region 1", got)
	}
}

func TestRenderLabels(t *testing.T) {
	img := Render(pillarLocator(), Config{Width: 256, Labels: true})
	if countLabelPixels(img) == 0 {
		t.Error("no label pixels drawn")
	}
}

func TestRenderEmpty(t *testing.T) {
	img := Render(region.NewLocator(nil), Config{Width: 16})
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 1 {
		t.Errorf("image size = %dx%d, want 16x1", b.Dx(), b.Dy())
	}
}

func TestRenderClampsTallLevel(t *testing.T) {
	p := geometry.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1000}, {X: 0, Y: 1000}}
	p.Normalize()
	loc := region.NewLocator([]region.Region{{ID: 0, Polygon: p, Bounds: p.Bounds()}})

	img := Render(loc, Config{Width: 32})
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != MaxDimension {
		t.Fatalf("image size = %dx%d, want 32x%d", b.Dx(), b.Dy(), MaxDimension)
	}
	if got := img.RGBAAt(0, MaxDimension/2); got != Color(0) {
		t.Errorf("left pixel = %v, want colour of region 0", got)
	}
	if got := img.RGBAAt(31, MaxDimension/2); got.A != 0 {
		t.Errorf("right pixel = %v, want transparent", got)
	}
}

func TestColorDistinct(t *testing.T) {
	seen := make(map[[3]uint8]int)
	for id := 0; id < 32; id++ {
		c := Color(id)
		if c.R < 64 || c.G < 64 || c.B < 64 || c.A != 255 {
			t.Errorf("Color(%d) = %v is too dark", id, c)
		}
		key := [3]uint8{c.R, c.G, c.B}
		if other, ok := seen[key]; ok {
			t.Errorf("Color(%d) == Color(%d)", id, other)
		}
		seen[key] = id
	}
}

func TestEncode(t *testing.T) {
	img := Render(pillarLocator(), Config{Width: 64})

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := qoi.Decode(&buf)
	if err != nil {
		t.Fatalf("qoi.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r1, g1, b1, a1 := decoded.At(32, 32).RGBA()
	r2, g2, b2, a2 := img.At(32, 32).RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
		t.Errorf("decoded center pixel differs")
	}
}
