package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":  {A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"blue":   {R: 31, G: 119, B: 180, A: 255},
	"red":    {R: 214, G: 39, B: 40, A: 255},
	"green":  {R: 44, G: 160, B: 44, A: 255},
	"orange": {R: 255, G: 127, B: 14, A: 255},
	"purple": {R: 148, G: 103, B: 189, A: 255},
	"brown":  {R: 140, G: 86, B: 75, A: 255},
	"pink":   {R: 227, G: 119, B: 194, A: 255},
	"gray":   {R: 127, G: 127, B: 127, A: 255},
	"grey":   {R: 127, G: 127, B: 127, A: 255},
	"olive":  {R: 188, G: 189, B: 34, A: 255},
	"cyan":   {R: 23, G: 190, B: 207, A: 255},
}

// parseColor accepts a name from namedColors or #rrggbb / #rrggbbaa.
func parseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			if len(s) == 7 {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
			}
			return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// mustColor falls back to black for unknown colors; specs are validated before rendering.
func mustColor(s string) color.RGBA {
	c, err := parseColor(s)
	if err != nil {
		return namedColors["black"]
	}
	return c
}

// knownMarkers lists the accepted marker codes (matplotlib-style).
var knownMarkers = map[string]bool{"o": true, "O": true, "s": true, "D": true, "^": true, "x": true, "+": true, ".": true}
