package reshape

import (
	"strings"

	"github.com/JonMunkholm/pilexchange/internal/core"
)

// Soil layer colors are stored as RRGGBB or RRGGBBAA in projects and sent
// as AARRGGBB on the wire.

const opaque = "FF"

// NormalizeColor turns "#RRGGBB", "RRGGBB" or "RRGGBBAA" into RRGGBBAA.
// Colors without alpha become opaque.
func NormalizeColor(s string) (string, error) {
	c := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(c) {
	case 6:
		c += opaque
	case 8:
	default:
		return "", core.FormatError(s, "color must have 6 or 8 hex digits")
	}
	if !isHex(c) {
		return "", core.FormatError(s, "color must have 6 or 8 hex digits")
	}
	return c, nil
}

// ColorToWire reorders RRGGBBAA into AARRGGBB.
func ColorToWire(s string) (string, error) {
	if err := checkColor(s); err != nil {
		return "", err
	}
	return s[6:] + s[:6], nil
}

// ColorToModel reorders AARRGGBB into RRGGBBAA.
func ColorToModel(s string) (string, error) {
	if err := checkColor(s); err != nil {
		return "", err
	}
	return s[2:] + s[:2], nil
}

// ColorForWire normalizes a project color and reorders it for the wire.
func ColorForWire(model string) (string, error) {
	c, err := NormalizeColor(model)
	if err != nil {
		return "", err
	}
	return ColorToWire(c)
}

// ColorForModel reorders a wire color for the project. Opaque colors are
// stored without the alpha digits.
func ColorForModel(wire string) (string, error) {
	c, err := ColorToModel(strings.TrimSpace(wire))
	if err != nil {
		return "", err
	}
	if strings.EqualFold(c[6:], opaque) {
		return c[:6], nil
	}
	return c, nil
}

func checkColor(s string) error {
	if len(s) != 8 || !isHex(s) {
		return core.FormatError(s, "color must be 8 hex digits")
	}
	return nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
