package region

import (
	"math"
	"testing"

	"github.com/bloodmagesoftware/sectors/level/leveltest"
)

func TestBuildPillarRoom(t *testing.T) {
	lvl := leveltest.PillarRoom()
	ctx := Context{Scale: 1, SkyTextures: []string{"F_SKY1"}}

	regions := Build(lvl, ctx)
	if len(regions) != 2 {
		t.Fatalf("len(regions) = %d, want 2", len(regions))
	}

	tests := []struct {
		id      int
		area    float64
		points  int
		floor   float64
		skyCeil bool
	}{
		{0, 256*256 - 64*64, 10, 0, false},
		{1, 64 * 64, 4, 24, true},
	}
	for _, tc := range tests {
		r := regions[tc.id]
		if r.ID != tc.id {
			t.Errorf("regions[%d].ID = %d", tc.id, r.ID)
		}
		if r.Polygon.SignedArea() <= 0 {
			t.Errorf("region %d is not positively wound", tc.id)
		}
		if got := r.Polygon.SignedArea() / 2; math.Abs(got-tc.area) > 1e-9 {
			t.Errorf("region %d area = %v, want %v", tc.id, got, tc.area)
		}
		if len(r.Polygon) != tc.points {
			t.Errorf("region %d has %d points, want %d", tc.id, len(r.Polygon), tc.points)
		}
		if r.FloorHeight != tc.floor || r.CeilingHeight != 128 {
			t.Errorf("region %d heights = %v/%v", tc.id, r.FloorHeight, r.CeilingHeight)
		}
		if r.IsSkyCeiling != tc.skyCeil {
			t.Errorf("region %d IsSkyCeiling = %v, want %v", tc.id, r.IsSkyCeiling, tc.skyCeil)
		}
	}

	loc := NewLocator(regions)
	if r, ok := loc.FindRegionAt(128, 128); !ok || r.ID != 1 {
		t.Errorf("FindRegionAt(128,128) = %v, %v; want region 1", r, ok)
	}
	if r, ok := loc.FindRegionAt(32, 200); !ok || r.ID != 0 {
		t.Errorf("FindRegionAt(32,200) = %v, %v; want region 0", r, ok)
	}
	if _, ok := loc.FindRegionAt(300, 300); ok {
		t.Error("FindRegionAt(300,300) should find nothing")
	}
}

func TestBuildScaled(t *testing.T) {
	lvl := leveltest.PillarRoom()
	ctx := NewContext(lvl, 0.0625, []string{"F_SKY1"})

	if ctx.Center.X != 128 || ctx.Center.Y != 128 {
		t.Fatalf("Center = %v, want (128,128)", ctx.Center)
	}

	regions := Build(lvl, ctx)

	if got := regions[1].FloorHeight; got != 1.5 {
		t.Errorf("scaled floor = %v, want 1.5", got)
	}
	b := regions[0].Bounds
	if b.Lo().X != -8 || b.Hi().Y != 8 {
		t.Errorf("scaled bounds = %v..%v, want (-8,-8)..(8,8)", b.Lo(), b.Hi())
	}
	if got := regions[0].Polygon.Area(); math.Abs(got-(256-16)) > 1e-9 {
		t.Errorf("scaled area = %v, want 240", got)
	}

	loc := NewLocator(regions)
	if r, ok := loc.At(ctx.Point(128, 128)); !ok || r.ID != 1 {
		t.Errorf("At(center) = %v, %v; want region 1", r, ok)
	}
	if r, ok := loc.At(ctx.Point(16, 240)); !ok || r.ID != 0 {
		t.Errorf("At(corner) = %v, %v; want region 0", r, ok)
	}
}

func TestContextIsSky(t *testing.T) {
	ctx := Context{Scale: 1, SkyTextures: []string{"F_SKY1", "SKY1"}}
	if !ctx.IsSky("f_sky1") || ctx.IsSky("CEIL3_5") {
		t.Error("IsSky mismatch")
	}
	if Identity().IsSky("F_SKY1") {
		t.Error("identity context has no sky textures")
	}
}
