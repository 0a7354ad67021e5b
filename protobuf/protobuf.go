// Package protobuf encodes scenes in the wire format described by
// proto/scene.proto.
package protobuf

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bloodmagesoftware/sectors/region"
	"github.com/bloodmagesoftware/sectors/scene"
)

// ErrMalformed is returned for input that is not a valid encoded scene.
var ErrMalformed = errors.New("malformed scene data")

func malformed(n int) error {
	return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
}

// Marshal encodes s. Zero values are omitted, as proto3 does.
func Marshal(s scene.Scene) []byte {
	var b []byte
	b = appendString(b, 1, s.Name)
	for _, r := range s.Regions {
		b = appendMessage(b, 2, marshalRegion(r))
	}
	if s.HasStart {
		b = appendMessage(b, 3, marshalStart(s.Start))
	}
	for _, sp := range s.Sprites {
		b = appendMessage(b, 4, marshalSprite(sp))
	}
	for _, p := range s.Planes {
		b = appendMessage(b, 5, marshalPlane(p))
	}
	b = appendString(b, 6, s.Sky)
	return b
}

func marshalRegion(r region.Region) []byte {
	var b []byte
	b = appendInt(b, 1, r.ID)
	if len(r.Polygon) > 0 {
		packed := make([]byte, 0, len(r.Polygon)*16)
		for _, p := range r.Polygon {
			packed = protowire.AppendFixed64(packed, math.Float64bits(p.X))
			packed = protowire.AppendFixed64(packed, math.Float64bits(p.Y))
		}
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	b = appendDouble(b, 3, r.FloorHeight)
	b = appendDouble(b, 4, r.CeilingHeight)
	b = appendString(b, 5, r.FloorTexture)
	b = appendString(b, 6, r.CeilingTexture)
	b = appendInt(b, 7, r.Light)
	b = appendBool(b, 8, r.IsSkyCeiling)
	return b
}

func marshalStart(s scene.Start) []byte {
	var b []byte
	b = appendDouble(b, 1, s.X)
	b = appendDouble(b, 2, s.Y)
	b = appendDouble(b, 3, s.Z)
	b = appendDouble(b, 4, s.Angle)
	return b
}

func marshalSprite(s scene.Sprite) []byte {
	var b []byte
	b = appendInt(b, 1, s.Thing)
	b = appendInt(b, 2, s.Type)
	b = appendString(b, 3, s.Sprite)
	b = appendString(b, 4, s.Sequence)
	b = appendDouble(b, 5, s.Size)
	b = appendInt(b, 6, s.Region)
	b = appendDouble(b, 7, s.X)
	b = appendDouble(b, 8, s.Y)
	b = appendDouble(b, 9, s.Z)
	b = appendDouble(b, 10, s.Angle)
	return b
}

func marshalPlane(p scene.Plane) []byte {
	var b []byte
	b = appendInt(b, 1, p.Line)
	b = appendString(b, 2, p.Texture)
	b = appendDouble(b, 3, p.Width)
	b = appendDouble(b, 4, p.Height)
	b = appendDouble(b, 5, p.X)
	b = appendDouble(b, 6, p.Y)
	b = appendDouble(b, 7, p.Z)
	b = appendDouble(b, 8, p.Rotation)
	return b
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendInt(b []byte, num protowire.Number, v int) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}
