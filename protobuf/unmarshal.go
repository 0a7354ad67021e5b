package protobuf

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bloodmagesoftware/sectors/geometry"
	"github.com/bloodmagesoftware/sectors/region"
	"github.com/bloodmagesoftware/sectors/scene"
)

// Unmarshal decodes a scene written by Marshal. Unknown fields are skipped.
func Unmarshal(b []byte) (scene.Scene, error) {
	var s scene.Scene
	var d decoder
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		switch num {
		case 1:
			s.Name = d.readString(typ, v)
		case 2:
			r, err := unmarshalRegion(d.readBytes(typ, v))
			if err != nil {
				return fmt.Errorf("region %d: %w", len(s.Regions), err)
			}
			s.Regions = append(s.Regions, r)
		case 3:
			start, err := unmarshalStart(d.readBytes(typ, v))
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			s.Start, s.HasStart = start, true
		case 4:
			sp, err := unmarshalSprite(d.readBytes(typ, v))
			if err != nil {
				return fmt.Errorf("sprite %d: %w", len(s.Sprites), err)
			}
			s.Sprites = append(s.Sprites, sp)
		case 5:
			p, err := unmarshalPlane(d.readBytes(typ, v))
			if err != nil {
				return fmt.Errorf("plane %d: %w", len(s.Planes), err)
			}
			s.Planes = append(s.Planes, p)
		case 6:
			s.Sky = d.readString(typ, v)
		}
		return d.err
	})
	if err != nil {
		return scene.Scene{}, err
	}
	return s, nil
}

func unmarshalRegion(b []byte) (region.Region, error) {
	var r region.Region
	var d decoder
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		switch num {
		case 1:
			r.ID = d.readInt(typ, v)
		case 2:
			r.Polygon = d.readPoints(typ, v)
		case 3:
			r.FloorHeight = d.readDouble(typ, v)
		case 4:
			r.CeilingHeight = d.readDouble(typ, v)
		case 5:
			r.FloorTexture = d.readString(typ, v)
		case 6:
			r.CeilingTexture = d.readString(typ, v)
		case 7:
			r.Light = d.readInt(typ, v)
		case 8:
			r.IsSkyCeiling = d.readBool(typ, v)
		}
		return d.err
	})
	r.Bounds = r.Polygon.Bounds()
	return r, err
}

func unmarshalStart(b []byte) (scene.Start, error) {
	var s scene.Start
	var d decoder
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		switch num {
		case 1:
			s.X = d.readDouble(typ, v)
		case 2:
			s.Y = d.readDouble(typ, v)
		case 3:
			s.Z = d.readDouble(typ, v)
		case 4:
			s.Angle = d.readDouble(typ, v)
		}
		return d.err
	})
	return s, err
}

func unmarshalSprite(b []byte) (scene.Sprite, error) {
	var s scene.Sprite
	var d decoder
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		switch num {
		case 1:
			s.Thing = d.readInt(typ, v)
		case 2:
			s.Type = d.readInt(typ, v)
		case 3:
			s.Sprite = d.readString(typ, v)
		case 4:
			s.Sequence = d.readString(typ, v)
		case 5:
			s.Size = d.readDouble(typ, v)
		case 6:
			s.Region = d.readInt(typ, v)
		case 7:
			s.X = d.readDouble(typ, v)
		case 8:
			s.Y = d.readDouble(typ, v)
		case 9:
			s.Z = d.readDouble(typ, v)
		case 10:
			s.Angle = d.readDouble(typ, v)
		}
		return d.err
	})
	return s, err
}

func unmarshalPlane(b []byte) (scene.Plane, error) {
	var p scene.Plane
	var d decoder
	err := walk(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		switch num {
		case 1:
			p.Line = d.readInt(typ, v)
		case 2:
			p.Texture = d.readString(typ, v)
		case 3:
			p.Width = d.readDouble(typ, v)
		case 4:
			p.Height = d.readDouble(typ, v)
		case 5:
			p.X = d.readDouble(typ, v)
		case 6:
			p.Y = d.readDouble(typ, v)
		case 7:
			p.Z = d.readDouble(typ, v)
		case 8:
			p.Rotation = d.readDouble(typ, v)
		}
		return d.err
	})
	return p, err
}

// walk calls fn with the raw value of every field in b, tag excluded.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed(n)
		}
		b = b[n:]

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return malformed(n)
		}
		if err := fn(num, typ, b[:n]); err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// decoder reads field values already bounded by walk and keeps the first
// wire type mismatch.
type decoder struct {
	err error
}

func (d *decoder) expect(got, want protowire.Type) bool {
	if got != want && d.err == nil {
		d.err = fmt.Errorf("%w: wire type %d, want %d", ErrMalformed, got, want)
	}
	return d.err == nil
}

func (d *decoder) readInt(typ protowire.Type, v []byte) int {
	if !d.expect(typ, protowire.VarintType) {
		return 0
	}
	x, _ := protowire.ConsumeVarint(v)
	return int(int64(x))
}

func (d *decoder) readBool(typ protowire.Type, v []byte) bool {
	if !d.expect(typ, protowire.VarintType) {
		return false
	}
	x, _ := protowire.ConsumeVarint(v)
	return protowire.DecodeBool(x)
}

func (d *decoder) readDouble(typ protowire.Type, v []byte) float64 {
	if !d.expect(typ, protowire.Fixed64Type) {
		return 0
	}
	x, _ := protowire.ConsumeFixed64(v)
	return math.Float64frombits(x)
}

func (d *decoder) readBytes(typ protowire.Type, v []byte) []byte {
	if !d.expect(typ, protowire.BytesType) {
		return nil
	}
	x, _ := protowire.ConsumeBytes(v)
	return x
}

func (d *decoder) readString(typ protowire.Type, v []byte) string {
	return string(d.readBytes(typ, v))
}

func (d *decoder) readPoints(typ protowire.Type, v []byte) geometry.Polygon {
	packed := d.readBytes(typ, v)
	if d.err != nil {
		return nil
	}
	if len(packed)%16 != 0 {
		d.err = fmt.Errorf("%w: polygon of %d bytes", ErrMalformed, len(packed))
		return nil
	}

	polygon := make(geometry.Polygon, 0, len(packed)/16)
	for len(packed) > 0 {
		x, _ := protowire.ConsumeFixed64(packed)
		y, _ := protowire.ConsumeFixed64(packed[8:])
		polygon = append(polygon, geometry.Point{X: math.Float64frombits(x), Y: math.Float64frombits(y)})
		packed = packed[16:]
	}
	return polygon
}
