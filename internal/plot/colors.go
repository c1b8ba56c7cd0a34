package plot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// palette holds the named colors accepted by --color.
var palette = map[string]drawing.Color{
	"black":   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"blue":    {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"brown":   {R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff},
	"cyan":    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"green":   {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"lime":    {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	"magenta": {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	"maroon":  {R: 0x80, G: 0x00, B: 0x00, A: 0xff},
	"navy":    {R: 0x00, G: 0x00, B: 0x80, A: 0xff},
	"olive":   {R: 0x80, G: 0x80, B: 0x00, A: 0xff},
	"orange":  {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"pink":    {R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
	"purple":  {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
	"red":     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"teal":    {R: 0x00, G: 0x80, B: 0x80, A: 0xff},
	"white":   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"yellow":  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
}

// ColorNames returns the accepted color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor resolves a named color or a "#rrggbb" hex value.
func ParseColor(s string) (drawing.Color, error) {
	if c, ok := palette[strings.ToLower(s)]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && isHexColor(hex) {
		return drawing.ColorFromHex(hex), nil
	}
	return drawing.Color{}, fmt.Errorf("plot: %q is not a valid color; use #rrggbb or one of: %s",
		s, strings.Join(ColorNames(), ", "))
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
