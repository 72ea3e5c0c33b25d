package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color spec: an ANSI 256-color index ("1", "208")
// or a hex value ("#e74c3c"). The empty Color means the terminal default.
type Color string

// ColorDefault leaves the terminal's foreground untouched.
const ColorDefault Color = ""

// Named colors accepted in configs and flags.
var palette = map[string]Color{
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
	"orange":         "208",
	"pink":           "205",
	"purple":         "93",
	"gray":           "245",
}

// Fixed UI colors.
const (
	ColorFrame     Color = "4"
	ColorDim       Color = "245"
	ColorHighlight Color = "15"
)

// ParseColor resolves a color name, ANSI index, or hex value.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorDefault, fmt.Errorf("empty color")
	}
	if c, ok := palette[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return ColorDefault, fmt.Errorf("invalid hex color %q", s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return ColorDefault, fmt.Errorf("invalid hex color %q", s)
		}
		return Color(s), nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return Color(s), nil
	}
	return ColorDefault, fmt.Errorf("unknown color %q", s)
}

// ColorNames returns the accepted color names.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}
