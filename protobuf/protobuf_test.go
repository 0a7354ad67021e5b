package protobuf

import (
	"errors"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bloodmagesoftware/sectors/level/leveltest"
	"github.com/bloodmagesoftware/sectors/region"
	"github.com/bloodmagesoftware/sectors/scene"
)

func pillarScene() scene.Scene {
	ctx := region.Context{Scale: 1, SkyTextures: []string{"F_SKY1"}}
	catalog := scene.Catalog{2035: {Sprite: "BAR1", Sequence: "AB", Size: 1, Height: 32}}
	return scene.Build(leveltest.PillarRoom(), ctx, catalog, 0.1)
}

func TestRoundTrip(t *testing.T) {
	want := pillarScene()

	got, err := Unmarshal(Marshal(want))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestRoundTripWithoutStart(t *testing.T) {
	want := scene.Scene{Name: "EMPTY", Sky: "2"}

	got, err := Unmarshal(Marshal(want))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.HasStart || got.Name != "EMPTY" || got.Sky != "2" {
		t.Errorf("Unmarshal() = %+v", got)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b := Marshal(scene.Scene{Name: "E1M1"})
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)

	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Name != "E1M1" {
		t.Errorf("Name = %q, want E1M1", got.Name)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	full := Marshal(pillarScene())

	var wrongType []byte
	wrongType = protowire.AppendTag(wrongType, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 1)

	var oddPolygon []byte
	oddPolygon = protowire.AppendTag(oddPolygon, 2, protowire.BytesType)
	oddPolygon = protowire.AppendBytes(oddPolygon, []byte{0, 1, 2})
	var wrapped []byte
	wrapped = protowire.AppendTag(wrapped, 2, protowire.BytesType)
	wrapped = protowire.AppendBytes(wrapped, oddPolygon)

	tests := []struct {
		name  string
		input []byte
	}{
		{"truncated", full[:len(full)-4]},
		{"dangling tag", []byte{0x0a}},
		{"wrong wire type", wrongType},
		{"odd polygon", wrapped},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal(tc.input)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Unmarshal() error = %v, want ErrMalformed", err)
			}
		})
	}
}
