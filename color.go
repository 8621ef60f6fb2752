package pixelmatch

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is returned by ParseRGB for malformed hex color strings.
var ErrInvalidColor = errors.New("pixelmatch: invalid color")

// RGB is an opaque 8-bit color used when painting the diff output.
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses a hex color string.
// Supported forms: "RGB" and "RRGGBB", with or without a leading '#'.
func ParseRGB(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 3: // RGB
		r, okR := parseHex(s[0:1])
		g, okG := parseHex(s[1:2])
		b, okB := parseHex(s[2:3])
		if !okR || !okG || !okB {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		return RGB{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6: // RRGGBB
		r, okR := parseHex(s[0:2])
		g, okG := parseHex(s[2:4])
		b, okB := parseHex(s[4:6])
		if !okR || !okG || !okB {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		return RGB{R: r, G: g, B: b}, nil
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
}

// rgba returns the color as four channel bytes at full opacity.
func (c RGB) rgba() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, 255}
}

// parseHex decodes up to two hex digits.
func parseHex(s string) (uint8, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return uint8(v), true
}
