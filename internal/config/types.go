package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"scene-demo/internal/transform"
)

// Vec3 is written as a YAML sequence [x, y, z].
type Vec3 [3]float32

// Vec returns v as a transform vector.
func (v Vec3) Vec() transform.Vec3 {
	return transform.V(v[0], v[1], v[2])
}

// Color accepts "#rrggbb", "#rgb", or an integer such as 0x1da2d8.
type Color struct {
	colorful.Color
}

// ParseColor parses a hex string or an integer literal (decimal or 0x-prefixed).
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		return Color{c}, nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil || n > 0xffffff {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or 0xrrggbb", s)
	}
	return FromInt(uint32(n)), nil
}

// FromInt converts 0xRRGGBB.
func FromInt(n uint32) Color {
	return Color{colorful.Color{
		R: float64(n>>16&0xff) / 255,
		G: float64(n>>8&0xff) / 255,
		B: float64(n&0xff) / 255,
	}}
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB255 returns the 8-bit channels, clamped.
func (c Color) RGB255() (r, g, b uint8) {
	return c.Clamped().RGB255()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", n.Line)
	}
	parsed, err := ParseColor(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Clamped().Hex(), nil
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func dirOf(path string) string {
	return filepath.Dir(path)
}
