package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with components in [0, 1]. In YAML it is either a
// sequence of 3 or 4 floats or a "#rrggbb" / "#rrggbbaa" string.
type Color struct {
	R, G, B, A float64
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 3 && len(parts) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", node.Line, len(parts))
		}
		c.R, c.G, c.B, c.A = parts[0], parts[1], parts[2], 1
		if len(parts) == 4 {
			c.A = parts[3]
		}
		return nil
	case yaml.ScalarNode:
		parsed, err := parseHexColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("line %d: color must be a list or a hex string", node.Line)
}

func parseHexColor(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return Color{}, fmt.Errorf("hex color %q must be #rrggbb or #rrggbbaa", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	c := Color{R: float64(b[0]) / 255, G: float64(b[1]) / 255, B: float64(b[2]) / 255, A: 1}
	if len(b) == 4 {
		c.A = float64(b[3]) / 255
	}
	return c, nil
}

// NRGBA converts to a non-premultiplied 8-bit color for drawing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

func (c Color) inRange() bool {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}
