package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netalgo/core"
)

// RGB is a core.Color that decodes from "#rrggbb", "rgb(r,g,b)" or a
// three-element YAML sequence, and encodes as "rgb(r,g,b)".
type RGB core.Color

// String renders the color as rgb(r,g,b).
func (c RGB) String() string { return core.Color(c).String() }

// ParseRGB parses "#rrggbb" or "rgb(r,g,b)".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", s, ErrInvalid)
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseTriple(strings.Split(s[4:len(s)-1], ","))
	default:
		return RGB{}, fmt.Errorf("color %q: %w", s, ErrInvalid)
	}
}

func parseTriple(parts []string) (RGB, error) {
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("color needs 3 channels, got %d: %w", len(parts), ErrInvalid)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("channel %q: %w", p, ErrInvalid)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *RGB) UnmarshalYAML(n *yaml.Node) error {
	var (
		out RGB
		err error
	)
	switch n.Kind {
	case yaml.ScalarNode:
		out, err = ParseRGB(n.Value)
	case yaml.SequenceNode:
		parts := make([]string, len(n.Content))
		for i, item := range n.Content {
			parts[i] = item.Value
		}
		out, err = parseTriple(parts)
	default:
		err = fmt.Errorf("line %d: color must be a string or a list: %w", n.Line, ErrInvalid)
	}
	if err != nil {
		return err
	}
	*c = out

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c RGB) MarshalYAML() (interface{}, error) { return c.String(), nil }
