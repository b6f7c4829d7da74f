package math

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NamedColor returns the CSS/SVG color with the given name, converted to
// linear space. Names are case-insensitive.
func NamedColor(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return NewColorGammaByte(c.R, c.G, c.B, c.A), nil
}

// MustNamedColor is like NamedColor but panics on unknown names.
func MustNamedColor(name string) Color {
	c, err := NamedColor(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorNames returns all known color names in sorted order.
func ColorNames() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

/**
 * @brief Parses a color name or a gamma-space hex code in the form #rgb,
 * #rrggbb or #rrggbbaa.
 */
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return NamedColor(s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
	}
	return NewColorGammaByte(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
